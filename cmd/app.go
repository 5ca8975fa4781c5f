package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	authPostgres "github.com/frahmantamala/tunjangan-pas/internal/auth/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/core/events"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	"github.com/frahmantamala/tunjangan-pas/internal/dashboard"
	"github.com/frahmantamala/tunjangan-pas/internal/jabatan"
	jabatanPostgres "github.com/frahmantamala/tunjangan-pas/internal/jabatan/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	notifikasiPostgres "github.com/frahmantamala/tunjangan-pas/internal/notifikasi/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	pegawaiPostgres "github.com/frahmantamala/tunjangan-pas/internal/pegawai/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/screen"
	"github.com/frahmantamala/tunjangan-pas/internal/transport/rest"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	tunjanganPostgres "github.com/frahmantamala/tunjangan-pas/internal/tunjangan/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/unitkerja"
	unitkerjaPostgres "github.com/frahmantamala/tunjangan-pas/internal/unitkerja/postgres"
	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"golang.org/x/text/language"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Screen titles in menu order.
var screenTitles = []auth.MenuItem{
	{Screen: pegawai.Screen, Title: "Data Pegawai"},
	{Screen: tunjangan.Screen, Title: "Tunjangan PAS"},
	{Screen: jabatan.Screen, Title: "Jabatan"},
	{Screen: unitkerja.Screen, Title: "Unit Kerja"},
	{Screen: notifikasi.Screen, Title: "Notifikasi"},
}

// feedNouns name each screen inside generated notifications.
var feedNouns = map[string]string{
	pegawai.Screen:   "pegawai",
	tunjangan.Screen: "tunjangan",
	jabatan.Screen:   "jabatan",
	unitkerja.Screen: "unit kerja",
}

type repositories struct {
	pegawai    record.Repository[pegawai.Pegawai]
	tunjangan  record.Repository[tunjangan.Tunjangan]
	jabatan    record.Repository[jabatan.Jabatan]
	unitkerja  record.Repository[unitkerja.UnitKerja]
	notifikasi record.Repository[notifikasi.Notifikasi]
	rekap      tunjangan.RekapAPI
	users      auth.RepositoryAPI
}

// App holds every wired component of one process.
type App struct {
	Config *internal.Config
	Logger *slog.Logger
	DB     *gorm.DB
	SQL    *sqlx.DB

	Bus      *events.EventBus
	Feed     *notifikasi.Feed
	Registry *screen.Registry
	Sessions *screen.Sessions
	Policy   *auth.ScreenPolicy
	Auth     *auth.Service

	Pegawai    *record.Service[pegawai.Pegawai]
	Tunjangan  *record.Service[tunjangan.Tunjangan]
	Jabatan    *record.Service[jabatan.Jabatan]
	UnitKerja  *record.Service[unitkerja.UnitKerja]
	Notifikasi *record.Service[notifikasi.Notifikasi]
	Rekap      tunjangan.RekapAPI
}

func newApp(ctx context.Context, cfg *internal.Config, lg *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: lg}

	var repos repositories
	if cfg.Database.IsSQL() {
		db, sqlDB, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		app.DB, app.SQL = db, sqlDB
		repos = sqlRepositories(db, sqlDB)
	} else {
		users, err := auth.HashAccounts(auth.DefaultAccounts(), cfg.Security.BCryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo accounts: %w", err)
		}
		repos = memoryRepositories(time.Now(), users)
		lg.Info("using in-memory storage with demo data")
	}

	app.Bus = events.NewEventBus(lg)
	app.Feed = notifikasi.NewFeed(repos.notifikasi, lg, feedNouns)
	app.Feed.Register(app.Bus)

	app.Pegawai = record.NewService(pegawai.Screen, repos.pegawai, lg,
		record.WithPublisher[pegawai.Pegawai](app.Bus), record.WithLabel(pegawai.Label))
	app.Tunjangan = record.NewService(tunjangan.Screen, repos.tunjangan, lg,
		record.WithPublisher[tunjangan.Tunjangan](app.Bus), record.WithLabel(tunjangan.Label))
	app.Jabatan = record.NewService(jabatan.Screen, repos.jabatan, lg,
		record.WithPublisher[jabatan.Jabatan](app.Bus), record.WithLabel(jabatan.Label))
	app.UnitKerja = record.NewService(unitkerja.Screen, repos.unitkerja, lg,
		record.WithPublisher[unitkerja.UnitKerja](app.Bus), record.WithLabel(unitkerja.Label))
	app.Notifikasi = record.NewService(notifikasi.Screen, repos.notifikasi, lg,
		record.WithPublisher[notifikasi.Notifikasi](app.Bus), record.WithLabel(notifikasi.Label))
	app.Rekap = repos.rekap

	registry, err := buildRegistry(app, cfg.Table)
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}
	app.Registry = registry
	app.Sessions = screen.NewSessions(registry)

	policy, err := auth.NewScreenPolicy(auth.DefaultPolicies())
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}
	app.Policy = policy

	generator := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.AccessTokenDuration)
	app.Auth = auth.NewService(repos.users, generator, cfg.Security.BCryptCost, lg)

	return app, nil
}

func buildRegistry(app *App, table internal.TableConfig) (*screen.Registry, error) {
	locale := language.Make(table.Locale)
	title := func(name string) string {
		for _, item := range screenTitles {
			if item.Screen == name {
				return item.Title
			}
		}
		return name
	}

	registry := screen.NewRegistry()
	errs := []error{
		register(registry, pegawai.Screen, title(pegawai.Screen), app.Pegawai, pegawai.Hooks(),
			tabular.Config[pegawai.Pegawai]{Columns: pegawai.Columns(), PageSize: table.PageSize, Locale: locale}),
		register(registry, tunjangan.Screen, title(tunjangan.Screen), app.Tunjangan, tunjangan.Hooks(time.Now),
			tabular.Config[tunjangan.Tunjangan]{Columns: tunjangan.Columns(), PageSize: table.PageSize, Locale: locale}),
		register(registry, jabatan.Screen, title(jabatan.Screen), app.Jabatan, jabatan.Hooks(),
			tabular.Config[jabatan.Jabatan]{Columns: jabatan.Columns(), PageSize: table.PageSize, Locale: locale}),
		register(registry, unitkerja.Screen, title(unitkerja.Screen), app.UnitKerja, unitkerja.Hooks(),
			tabular.Config[unitkerja.UnitKerja]{Columns: unitkerja.Columns(), PageSize: table.PageSize, Locale: locale}),
		register(registry, notifikasi.Screen, title(notifikasi.Screen), app.Notifikasi, notifikasi.Hooks(time.Now),
			tabular.Config[notifikasi.Notifikasi]{Columns: notifikasi.Columns(), PageSize: table.PageSize, Locale: locale}),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return registry, nil
}

func register[T record.Entity[T]](registry *screen.Registry, name, title string, repo record.Repository[T], hooks record.Hooks[T], cfg tabular.Config[T]) error {
	adapter, err := screen.NewAdapter(name, title, repo, hooks, cfg)
	if err != nil {
		return fmt.Errorf("screen %s: %w", name, err)
	}
	registry.Register(adapter)
	return nil
}

// Router builds the HTTP surface over the app.
func (a *App) Router() *chi.Mux {
	authHandler := auth.NewHandler(a.Auth, a.Policy, screenTitles)
	authHandler.OnLogout = a.Sessions.Reset

	var health *rest.HealthHandler
	if a.SQL != nil {
		health = rest.NewHealthHandler(a.SQL.DB, a.Config.Database.Driver)
	} else {
		health = rest.NewHealthHandler(nil, internal.DriverMemory)
	}

	metricsPath := ""
	if a.Config.Observability.Metrics.Enabled {
		metricsPath = a.Config.Observability.Metrics.Path
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, rest.Handlers{
		Health:    health,
		Auth:      authHandler,
		Screens:   screen.NewHandler(a.Registry, a.Sessions),
		Feed:      notifikasi.NewHandler(a.Feed),
		Rekap:     tunjangan.NewHandler(a.Rekap),
		Dashboard: dashboard.NewHandler(dashboard.NewService(a.Pegawai, a.Tunjangan, a.Feed)),
	}, rest.Options{
		AllowedOrigins: a.Config.Server.AllowedOrigins,
		MetricsPath:    metricsPath,
	}, a.Logger)
	return router
}

// Close waits for in-flight event handlers and releases the database.
func (a *App) Close() error {
	if a.Bus != nil {
		a.Bus.Wait()
	}
	if a.SQL != nil {
		return a.SQL.Close()
	}
	return nil
}

func memoryRepositories(now time.Time, users []auth.User) repositories {
	ledger := record.NewMemoryRepository(tunjangan.Seed()...)
	return repositories{
		pegawai:    record.NewMemoryRepository(pegawai.Seed()...),
		tunjangan:  ledger,
		jabatan:    record.NewMemoryRepository(jabatan.Seed()...),
		unitkerja:  record.NewMemoryRepository(unitkerja.Seed()...),
		notifikasi: record.NewMemoryRepository(notifikasi.Seed(now)...),
		rekap:      tunjangan.NewMemoryRekap(ledger),
		users:      auth.NewMemoryUserRepository(users...),
	}
}

func sqlRepositories(db *gorm.DB, sqlDB *sqlx.DB) repositories {
	return repositories{
		pegawai:    pegawaiPostgres.NewPegawaiRepository(db),
		tunjangan:  tunjanganPostgres.NewTunjanganRepository(db),
		jabatan:    jabatanPostgres.NewJabatanRepository(db),
		unitkerja:  unitkerjaPostgres.NewUnitKerjaRepository(db),
		notifikasi: notifikasiPostgres.NewNotifikasiRepository(db),
		rekap:      tunjanganPostgres.NewRekapRepository(sqlDB),
		users:      authPostgres.NewRepository(db),
	}
}

// openDatabase opens gorm for the record repositories and shares its pool
// with sqlx for aggregate queries.
func openDatabase(ctx context.Context, cfg internal.DatabaseConfig) (*gorm.DB, *sqlx.DB, error) {
	var (
		dialector gorm.Dialector
		driver    string
	)
	switch cfg.Driver {
	case internal.DriverSQLite:
		dialector, driver = sqlite.Open(cfg.Source), "sqlite3"
	case internal.DriverPostgres:
		dialector, driver = postgres.Open(cfg.Source), "pgx"
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := internal.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, sqlx.NewDb(sqlDB, driver), nil
}
