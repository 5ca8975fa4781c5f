package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	authPostgres "github.com/frahmantamala/tunjangan-pas/internal/auth/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/jabatan"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	"github.com/frahmantamala/tunjangan-pas/internal/unitkerja"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the demo accounts and sample records for development and testing purposes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := setup()
		if err != nil {
			return err
		}
		if !cfg.Database.IsSQL() {
			fmt.Println("memory driver seeds itself on start; nothing to do")
			return nil
		}

		db, sqlDB, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		users, err := auth.HashAccounts(auth.DefaultAccounts(), cfg.Security.BCryptCost)
		if err != nil {
			return fmt.Errorf("hash accounts: %w", err)
		}
		return seedDatabase(ctx, db, users, clearData, time.Now())
	},
}

func seedDatabase(ctx context.Context, db *gorm.DB, users []auth.User, clear bool, now time.Time) error {
	lg := logger.L()

	userRepo := authPostgres.NewRepository(db)
	for _, u := range users {
		if err := userRepo.Upsert(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		lg.Info("seeded user", "email", u.Email, "role", u.Role)
	}

	repos := sqlRepositories(db, nil)
	steps := []func() (int, error){
		func() (int, error) { return seedTable(ctx, repos.pegawai, pegawai.Seed(), clear) },
		func() (int, error) { return seedTable(ctx, repos.tunjangan, tunjangan.Seed(), clear) },
		func() (int, error) { return seedTable(ctx, repos.jabatan, jabatan.Seed(), clear) },
		func() (int, error) { return seedTable(ctx, repos.unitkerja, unitkerja.Seed(), clear) },
		func() (int, error) { return seedTable(ctx, repos.notifikasi, notifikasi.Seed(now), clear) },
	}
	for i, step := range steps {
		n, err := step()
		if err != nil {
			return err
		}
		lg.Info("seeded table", "screen", screenTitles[i].Screen, "rows", n)
	}
	return nil
}

// seedTable inserts rows into an empty table. With clear it empties the
// table first; without it a populated table is left alone.
func seedTable[T record.Entity[T]](ctx context.Context, repo record.Repository[T], rows []T, clear bool) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		if !clear {
			return 0, nil
		}
		for _, item := range existing {
			if err := repo.Delete(ctx, item.RecordID()); err != nil {
				return 0, err
			}
		}
	}

	for _, row := range rows {
		if _, err := repo.Create(ctx, row); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
