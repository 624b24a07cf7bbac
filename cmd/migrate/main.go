// Command migrate runs the embedded goose migrations against DB_* settings.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate -verbose status
//	go run ./cmd/migrate down
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/logger"
)

var errUsage = errors.New("usage: migrate [-verbose] <up|up-by-one|down|redo|reset|status|version> [args]")

type options struct {
	command string
	args    []string
	verbose bool
}

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() == 0 {
		return nil, errUsage
	}
	opts := &options{command: fs.Arg(0), args: fs.Args()[1:], verbose: *verbose}
	if !database.IsMigrateCommand(opts.command) {
		return nil, fmt.Errorf("unknown command %q: %w", opts.command, errUsage)
	}
	return opts, nil
}

func main() {
	_ = godotenv.Load()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := config.GetEnv("LOG_LEVEL", "info")
	if opts.verbose {
		level = "debug"
	}
	logger.Init(config.GetEnv("APP_ENV", "development"), level)

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Str("command", opts.command).Msg("migration failed")
	}
}

func run(opts *options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	db, err := database.OpenSQL(dbConfig.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return database.Migrate(ctx, db, opts.command, opts.args...)
}
