package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/config"
	"github.com/saadistik/Bashir.inc/internal/middleware"
	"github.com/saadistik/Bashir.inc/internal/objectstore"
	"github.com/saadistik/Bashir.inc/internal/service"
	"github.com/saadistik/Bashir.inc/internal/storage/sqlite"
	"github.com/saadistik/Bashir.inc/pkg/logging"
)

func main() {
	// .env values become defaults for the env-backed flags below.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup()

	root := &cli.Command{
		Name:  "bashir",
		Usage: "Bashir.inc order tracking server",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			navigateCommand(),
			dashboardCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			fmt.Fprintf(os.Stderr, "\nBashir.inc cannot start: %v\n\nSet %s and %s in the environment or in a .env file.\n\n",
				err, config.EnvDBPath, config.EnvJWTSecret)
			os.Exit(2)
		}
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// serverFlags map one-to-one onto the config environment variables.
var serverFlags = map[string]string{
	"db-path":        config.EnvDBPath,
	"jwt-secret":     config.EnvJWTSecret,
	"token-ttl":      config.EnvTokenTTL,
	"port":           config.EnvPort,
	"storage-dir":    config.EnvStorageDir,
	"public-url":     config.EnvPublicURL,
	"owner-username": config.EnvOwnerUsername,
	"owner-password": config.EnvOwnerPassword,
	"owner-name":     config.EnvOwnerName,
}

func configFlags() []cli.Flag {
	usage := map[string]string{
		"db-path":        "SQLite database path",
		"jwt-secret":     "secret used to sign session tokens",
		"token-ttl":      "session token lifetime, e.g. 24h",
		"port":           "HTTP listen port",
		"storage-dir":    "directory holding uploaded images",
		"public-url":     "origin prefixed to object URLs",
		"owner-username": "owner account created on first start",
		"owner-password": "password of the first-start owner account",
		"owner-name":     "full name of the first-start owner account",
	}
	var flags []cli.Flag
	for _, name := range []string{
		"db-path", "jwt-secret", "token-ttl", "port", "storage-dir",
		"public-url", "owner-username", "owner-password", "owner-name",
	} {
		flags = append(flags, &cli.StringFlag{
			Name:    name,
			Usage:   usage[name],
			Sources: cli.EnvVars(serverFlags[name]),
		})
	}
	return flags
}

// loadConfig builds the config from flags, falling back to the environment.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	byEnv := make(map[string]string, len(serverFlags))
	for flag, env := range serverFlags {
		byEnv[env] = flag
	}
	return config.FromEnv(func(key string) string {
		if flag, ok := byEnv[key]; ok && cmd.IsSet(flag) {
			return cmd.String(flag)
		}
		return os.Getenv(key)
	})
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the RPC server",
		Flags: configFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServer(ctx, cfg)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit",
		Flags: configFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s is at schema version %d\n", cfg.DBPath, version)
			return nil
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	objects, err := objectstore.New(cfg.StorageDir, cfg.PublicURL)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}
	slog.Info("Object storage initialized", "dir", cfg.StorageDir)

	authenticator := auth.NewPasswordAuthenticator(store)
	if _, err := auth.EnsureOwner(ctx, store, authenticator, auth.Account{
		Username: cfg.Owner.Username,
		Password: cfg.Owner.Password,
		FullName: cfg.Owner.FullName,
	}); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()
	service.Register(mux, service.Deps{
		Store:         store,
		Authenticator: authenticator,
		JWT:           auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		Objects:       objects,
		Metrics:       middleware.NewMetrics(registry),
	})
	mux.Handle(objectstore.PublicPrefix, objects.Handler())
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.RequestLogging(middleware.CORS(mux)), &http2.Server{})
	srv := &http.Server{Addr: cfg.Addr(), Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
