package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/apikey"
	"github.com/osse101/MakeServer_Go/internal/config"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
	"github.com/osse101/MakeServer_Go/internal/scheduler"
	"github.com/osse101/MakeServer_Go/internal/seed"
	"github.com/osse101/MakeServer_Go/internal/server"
	"github.com/osse101/MakeServer_Go/internal/store"
	"github.com/osse101/MakeServer_Go/internal/worker"
)

// ErrNoAdminKey is returned when neither the environment nor the seed file
// provides a key with the admin role
var ErrNoAdminKey = errors.New(ErrMsgNoAdminKey)

// App is the assembled application
type App struct {
	Store     *store.Store
	Keys      *apikey.Registry
	Service   makerspace.Service
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Server    *server.Server
}

// Build assembles every component from cfg. Background workers are started;
// the HTTP server is not.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	return build(ctx, cfg, nil)
}

func build(ctx context.Context, cfg *config.Config, alerter alert.Alerter) (*App, error) {
	st := store.New(store.Options{LockTimeout: cfg.StoreLockTimeout})
	keys := apikey.NewRegistry()

	adminKeys, err := grantEnvKeys(keys, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgSeedFailed, err)
		}
		sum, err := fixture.Populate(ctx, st, keys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgSeedFailed, err)
		}
		adminKeys += sum.AdminKeys
		slog.Info(LogMsgStateSeeded,
			"file", cfg.SeedFile,
			"users", sum.Users,
			"items", sum.Items,
			"quizzes", sum.Quizzes,
			"slots", sum.Slots,
			"printers", sum.Printers,
			"keys", sum.Keys)
	} else {
		slog.Warn(LogMsgNoSeedFile)
	}

	if adminKeys == 0 {
		return nil, ErrNoAdminKey
	}

	if alerter == nil {
		alerter, err = newAlerter(cfg)
		if err != nil {
			return nil, err
		}
	}
	alerter = alert.NewThrottled(alerter, cfg.AlertCooldown, alert.DefaultThrottleSize)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.SetJobTimeout(WorkerJobTimeout)
	pool.Start()
	dispatcher := worker.NewAlertDispatcher(pool, alerter)

	svc := makerspace.NewService(st, keys, dispatcher, makerspace.Options{
		RentalPeriod:     cfg.StorageRentalPeriod,
		GateRenewRelease: cfg.StorageGateRenewRelease,
	})

	sched := scheduler.New(pool)
	sched.Schedule(JobStorageExpiry, cfg.StorageSweepInterval, worker.NewStorageExpiryJob(svc, dispatcher))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		Notifier:       dispatcher,
	}, svc, st)

	slog.Info(LogMsgApplicationAssembled, "addr", cfg.Addr(), "api_keys", keys.Len())
	return &App{
		Store:     st,
		Keys:      keys,
		Service:   svc,
		Pool:      pool,
		Scheduler: sched,
		Server:    srv,
	}, nil
}

// Shutdown stops the app's components in order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:    a.Server,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
	})
}

// grantEnvKeys registers the keys listed in the environment and returns how
// many carry the admin role
func grantEnvKeys(keys *apikey.Registry, cfg *config.Config) (int, error) {
	groups := []struct {
		keys  []string
		label string
		role  domain.Role
	}{
		{cfg.AdminAPIKeys, KeyLabelAdminEnv, domain.RoleAdmin},
		{cfg.CheckoutAPIKeys, KeyLabelCheckoutEnv, domain.RoleCheckoutStaff},
		{cfg.StorageAPIKeys, KeyLabelStorageEnv, domain.RoleStudentStorageStaff},
	}
	for _, g := range groups {
		for _, k := range g.keys {
			if err := keys.GrantRoles(k, g.label, g.role); err != nil {
				return 0, fmt.Errorf("%s (%s): %w", ErrMsgGrantEnvKey, g.label, err)
			}
		}
	}
	return len(cfg.AdminAPIKeys), nil
}

func newAlerter(cfg *config.Config) (alert.Alerter, error) {
	logAlerter := alert.NewLogAlerter()
	if !cfg.DiscordEnabled() {
		slog.Info(LogMsgAlertsLogOnly)
		return logAlerter, nil
	}
	discord, err := alert.NewDiscordAlerter(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDiscordAlerter, err)
	}
	slog.Info(LogMsgAlertsDiscord)
	return alert.Multi{logAlerter, discord}, nil
}
