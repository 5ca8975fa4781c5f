package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	"github.com/frahmantamala/tunjangan-pas/internal/screen"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <screen>",
	Short: "Browse a screen in the terminal",
	Long: `Open an interactive table over one screen (pegawai, tunjangan, jabatan, unitkerja, notifikasi).
Perintah: cari <teks>, urut <kolom> [asc|desc], hal <n>, prev, next, lihat <id>, hapus <id>, bantuan, keluar.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := setup()
		if err != nil {
			return err
		}
		// Keep the terminal for the table.
		logger.Init("error", cfg.Observability.Logging.Format)

		app, err := newApp(ctx, cfg, logger.L())
		if err != nil {
			return err
		}
		defer app.Close()

		s, err := app.Registry.Get(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		ctx = internal.ContextWithUser(ctx, &internal.CurrentUser{ID: "cli", Nama: "Operator CLI", Role: "admin"})
		return newBrowser(s, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	},
}

var (
	browseTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	browseMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	browseError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	browseHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	browseCell   = lipgloss.NewStyle().Padding(0, 1)
	browseActive = lipgloss.NewStyle().Bold(true).Underline(true)
)

type browser struct {
	screen  screen.Screen
	session screen.Session
	in      *bufio.Scanner
	out     io.Writer
}

func newBrowser(s screen.Screen, in io.Reader, out io.Writer) *browser {
	if out == nil {
		out = os.Stdout
	}
	return &browser{screen: s, session: s.NewSession(), in: bufio.NewScanner(in), out: out}
}

// Run renders the first page and executes commands until keluar or EOF.
func (b *browser) Run(ctx context.Context) error {
	page, err := b.session.Current(ctx)
	if err != nil {
		return err
	}
	b.render(page)

	for {
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			fmt.Fprintln(b.out)
			return b.in.Err()
		}
		line := strings.TrimSpace(b.in.Text())
		if line == "" {
			continue
		}
		if quit := b.exec(ctx, line); quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (b *browser) exec(ctx context.Context, line string) bool {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	var intent *screen.Intent
	switch strings.ToLower(command) {
	case "keluar", "exit", "quit":
		return true
	case "bantuan", "help":
		fmt.Fprintln(b.out, browseMuted.Render("cari <teks> | urut <kolom> [asc|desc] | hal <n> | prev | next | lihat <id> | hapus <id> | keluar"))
		return false
	case "cari":
		intent = &screen.Intent{Action: screen.ActionFilter, Value: rest}
	case "urut":
		if len(args) == 0 {
			b.fail(fmt.Errorf("urut membutuhkan nama kolom"))
			return false
		}
		intent = &screen.Intent{Action: screen.ActionSort, Value: args[0]}
		if len(args) > 1 {
			intent.Direction = args[1]
		}
	case "hal":
		n, err := strconv.Atoi(rest)
		if err != nil {
			b.fail(fmt.Errorf("hal membutuhkan nomor halaman"))
			return false
		}
		intent = &screen.Intent{Action: screen.ActionPage, Page: n}
	case "prev":
		intent = &screen.Intent{Action: screen.ActionPrevious}
	case "next":
		intent = &screen.Intent{Action: screen.ActionNext}
	case "lihat":
		b.view(ctx, rest)
		return false
	case "hapus":
		b.remove(ctx, rest)
		intent = &screen.Intent{Action: screen.ActionRefresh}
	default:
		b.fail(fmt.Errorf("perintah tidak dikenal: %s (ketik bantuan)", command))
		return false
	}

	page, err := b.session.Apply(ctx, *intent)
	if err != nil {
		b.fail(err)
		return false
	}
	b.render(page)
	return false
}

func (b *browser) view(ctx context.Context, id string) {
	form := b.screen.NewForm()
	rec, err := form.BeginView(ctx, id)
	if err != nil {
		b.fail(err)
		return
	}
	defer form.Cancel()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		b.fail(err)
		return
	}
	fmt.Fprintln(b.out, string(data))
}

func (b *browser) remove(ctx context.Context, id string) {
	form := b.screen.NewForm()
	if _, err := form.BeginDelete(ctx, id); err != nil {
		b.fail(err)
		return
	}

	fmt.Fprintf(b.out, "Hapus %s? (ya/tidak) ", id)
	if !b.in.Scan() || !strings.EqualFold(strings.TrimSpace(b.in.Text()), "ya") {
		form.Cancel()
		fmt.Fprintln(b.out, browseMuted.Render("dibatalkan"))
		return
	}
	if err := form.Confirm(ctx); err != nil {
		b.fail(err)
		return
	}
	fmt.Fprintln(b.out, browseMuted.Render("data dihapus"))
}

func (b *browser) fail(err error) {
	msg := err.Error()
	if appErr, ok := internal.IsAppError(err); ok {
		msg = appErr.GetDetailedMessage()
	}
	fmt.Fprintln(b.out, browseError.Render(msg))
}

func (b *browser) render(page screen.Page) {
	cols := b.screen.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Label
		if page.Sort.Column == c.Key {
			arrow := "▲"
			if page.Sort.Direction == tabular.Descending {
				arrow = "▼"
			}
			headers[i] += " " + arrow
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(browseMuted).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return browseHeader
			}
			return browseCell
		})
	for _, item := range page.Items {
		t.Row(b.screen.Cells(item)...)
	}

	fmt.Fprintln(b.out, browseTitle.Render(b.screen.Title()))
	if page.Filter != "" {
		fmt.Fprintln(b.out, browseMuted.Render("Pencarian: "+page.Filter))
	}
	fmt.Fprintln(b.out, t.Render())
	fmt.Fprintln(b.out, browseMuted.Render(summary(page)))
	fmt.Fprintln(b.out, pageBar(page))
}

func summary(page screen.Page) string {
	if page.TotalItems == 0 {
		return "Tidak ada data"
	}
	return fmt.Sprintf("Menampilkan %d-%d dari %d data", page.StartIndex+1, page.EndIndex, page.TotalItems)
}

func pageBar(page screen.Page) string {
	parts := make([]string, 0, len(page.PageNumbers)+2)
	if page.HasPrevious {
		parts = append(parts, "‹ prev")
	}
	for _, item := range page.PageNumbers {
		if !item.Ellipsis && item.Number == page.Page {
			parts = append(parts, browseActive.Render(item.String()))
			continue
		}
		parts = append(parts, item.String())
	}
	if page.HasNext {
		parts = append(parts, "next ›")
	}
	return strings.Join(parts, " ")
}
