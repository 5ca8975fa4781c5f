package main

import "github.com/frahmantamala/tunjangan-pas/cmd"

func main() {
	cmd.Execute()
}
