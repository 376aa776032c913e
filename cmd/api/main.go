package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/paularlott/cli"

	_ "github.com/Flarenzy/simple-ipam/docs"
	"github.com/Flarenzy/simple-ipam/internal/app"
)

//	@title			Simple IPAM API
//	@version		1.0
//	@description	Subnet and IP address management.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

var version = "dev"

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().Execute(ctx); err != nil {
		slog.Error("server exited", "err", err)
		stop()
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	defaults := app.DefaultConfig()

	return &cli.Command{
		Name:        "ipam",
		Version:     version,
		Usage:       "IP address management server",
		Description: "Serves the subnet and IP address REST API, the dashboard and the OpenAPI docs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:         "port",
				Usage:        "HTTP listen port",
				DefaultValue: defaults.Port,
				EnvVars:      []string{"PORT"},
			},
			&cli.StringFlag{
				Name:         "database-url",
				Usage:        "PostgreSQL URL, or sqlite:<path> for a local file",
				DefaultValue: defaults.DatabaseURL,
				EnvVars:      []string{"DATABASE_URL"},
			},
			&cli.IntFlag{
				Name:         "read-timeout",
				Usage:        "Request read timeout in seconds",
				DefaultValue: int(defaults.ReadTimeout / time.Second),
				EnvVars:      []string{"READ_TIMEOUT"},
			},
			&cli.IntFlag{
				Name:         "write-timeout",
				Usage:        "Response write timeout in seconds",
				DefaultValue: int(defaults.WriteTimeout / time.Second),
				EnvVars:      []string{"WRITE_TIMEOUT"},
			},
			&cli.IntFlag{
				Name:         "db-max-conns",
				Usage:        "Maximum pooled database connections",
				DefaultValue: defaults.DBMaxConns,
				EnvVars:      []string{"DB_MAX_CONNS"},
			},
			&cli.IntFlag{
				Name:         "db-min-conns",
				Usage:        "Minimum idle database connections",
				DefaultValue: defaults.DBMinConns,
				EnvVars:      []string{"DB_MIN_CONNS"},
			},
			&cli.StringFlag{
				Name:         "db-connect-timeout",
				Usage:        "Timeout for a single database dial (Go duration)",
				DefaultValue: defaults.DBConnectTimeout.String(),
				EnvVars:      []string{"DB_CONNECT_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:         "db-max-conn-idle",
				Usage:        "Close pooled connections idle for longer than this (Go duration)",
				DefaultValue: defaults.DBMaxConnIdle.String(),
				EnvVars:      []string{"DB_MAX_CONN_IDLE"},
			},
			&cli.IntFlag{
				Name:         "db-connect-retries",
				Usage:        "Extra startup connection attempts before giving up",
				DefaultValue: defaults.DBConnectRetries,
				EnvVars:      []string{"DB_CONNECT_RETRIES"},
			},
			&cli.StringFlag{
				Name:         "db-connect-retry-delay",
				Usage:        "Delay between startup connection attempts (Go duration)",
				DefaultValue: defaults.DBConnectRetryDelay.String(),
				EnvVars:      []string{"DB_CONNECT_RETRY_DELAY"},
			},
			&cli.StringFlag{
				Name:         "log-level",
				Usage:        "Log level (debug, info, warn, error)",
				DefaultValue: defaults.LogLevel,
				EnvVars:      []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:         "log-format",
				Usage:        "Log format (text, json)",
				DefaultValue: defaults.LogFormat,
				EnvVars:      []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:         "cors-allowed-origins",
				Usage:        "Comma separated list of allowed origins, * for any",
				DefaultValue: "*",
				EnvVars:      []string{"CORS_ALLOWED_ORIGINS"},
			},
			&cli.BoolFlag{
				Name:    "auth-enabled",
				Usage:   "Require bearer tokens on /api routes",
				EnvVars: []string{"AUTH_ENABLED"},
			},
			&cli.StringFlag{
				Name:    "auth-issuer",
				Usage:   "Expected token issuer, e.g. https://keycloak/realms/ipam",
				EnvVars: []string{"AUTH_ISSUER"},
			},
			&cli.StringFlag{
				Name:    "auth-audience",
				Usage:   "Expected token audience",
				EnvVars: []string{"AUTH_AUDIENCE"},
			},
			&cli.StringFlag{
				Name:    "auth-jwks-url",
				Usage:   "JWKS endpoint; defaults to the Keycloak certs URL under the issuer",
				EnvVars: []string{"AUTH_JWKS_URL"},
			},
		},
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg)
		},
	}
}

func configFromCommand(cmd *cli.Command) (app.Config, error) {
	cfg := app.DefaultConfig()
	cfg.Version = version

	cfg.Port = cmd.GetInt("port")
	cfg.DatabaseURL = cmd.GetString("database-url")
	cfg.ReadTimeout = time.Duration(cmd.GetInt("read-timeout")) * time.Second
	cfg.WriteTimeout = time.Duration(cmd.GetInt("write-timeout")) * time.Second
	cfg.DBMaxConns = cmd.GetInt("db-max-conns")
	cfg.DBMinConns = cmd.GetInt("db-min-conns")
	cfg.DBConnectRetries = cmd.GetInt("db-connect-retries")
	cfg.LogLevel = cmd.GetString("log-level")
	cfg.LogFormat = cmd.GetString("log-format")
	cfg.CORSAllowedOrigins = app.SplitOrigins(cmd.GetString("cors-allowed-origins"))
	cfg.AuthEnabled = cmd.GetBool("auth-enabled")
	cfg.AuthIssuer = cmd.GetString("auth-issuer")
	cfg.AuthAudience = cmd.GetString("auth-audience")
	cfg.AuthJWKSURL = cmd.GetString("auth-jwks-url")

	durations := []struct {
		flag string
		dst  *time.Duration
	}{
		{"db-connect-timeout", &cfg.DBConnectTimeout},
		{"db-max-conn-idle", &cfg.DBMaxConnIdle},
		{"db-connect-retry-delay", &cfg.DBConnectRetryDelay},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(cmd.GetString(d.flag))
		if err != nil {
			return app.Config{}, fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.dst = v
	}

	return cfg, cfg.Validate()
}
