package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/club-brackets/internal/app"
	"github.com/riskibarqy/club-brackets/internal/config"
	"github.com/riskibarqy/club-brackets/internal/platform/logging"
)

var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

type commandKind string

const (
	commandUp      commandKind = "up"
	commandDown    commandKind = "down"
	commandVersion commandKind = "version"
	commandForce   commandKind = "force"
	commandGoto    commandKind = "goto"
)

type command struct {
	kind    commandKind
	steps   int
	version int
	target  uint
}

var errUsage = errors.New("usage")

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Service: "club-brackets-migration", Env: cfg.AppEnv})
	defer func() { _ = logger.Sync() }()

	if err := run(cmd, cfg, logger); err != nil {
		logger.Error("migration failed", "command", string(cmd.kind), "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cmd command, cfg config.Config, logger *logging.Logger) error {
	dbURL := strings.TrimSpace(app.PostgresDSN(cfg))
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}

	dir, err := findMigrationsDir(os.Getenv("MIGRATIONS_DIR"), os.Getenv("MIGRATIONS_PATH"))
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("close migrator failed", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	switch cmd.kind {
	case commandUp:
		return report(logger, m.Up(), "migrations applied", "source", sourceURL)
	case commandDown:
		return report(logger, m.Steps(-cmd.steps), "migrations rolled back", "steps", cmd.steps)
	case commandGoto:
		return report(logger, m.Migrate(cmd.target), "migrated to version", "version", cmd.target)
	case commandForce:
		if err := m.Force(cmd.version); err != nil {
			return fmt.Errorf("force version %d: %w", cmd.version, err)
		}
		logger.Info("forced migration version", "version", cmd.version)
		return nil
	case commandVersion:
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
		return nil
	default:
		return fmt.Errorf("unsupported command %q", cmd.kind)
	}
}

func report(logger *logging.Logger, err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, args...)
	return nil
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	kind := commandKind(strings.ToLower(strings.TrimSpace(args[0])))
	rest := args[1:]
	switch kind {
	case commandUp, commandVersion:
		return command{kind: kind}, nil
	case commandDown:
		steps := 1
		if len(rest) > 0 {
			value, err := strconv.Atoi(strings.TrimSpace(rest[0]))
			if err != nil {
				return command{}, fmt.Errorf("invalid down steps %q: %w", rest[0], err)
			}
			if value <= 0 {
				return command{}, fmt.Errorf("down steps must be > 0")
			}
			steps = value
		}
		return command{kind: kind, steps: steps}, nil
	case commandForce:
		if len(rest) == 0 {
			return command{}, fmt.Errorf("force requires a version argument")
		}
		value, err := strconv.ParseInt(strings.TrimSpace(rest[0]), 10, 0)
		if err != nil {
			return command{}, fmt.Errorf("invalid version %q: %w", rest[0], err)
		}
		if value < 0 {
			return command{}, fmt.Errorf("version must be >= 0")
		}
		return command{kind: kind, version: int(value)}, nil
	case commandGoto, "migrate":
		if len(rest) == 0 {
			return command{}, fmt.Errorf("goto requires a target version argument")
		}
		value, err := strconv.ParseUint(strings.TrimSpace(rest[0]), 10, 0)
		if err != nil {
			return command{}, fmt.Errorf("invalid target version %q: %w", rest[0], err)
		}
		return command{kind: commandGoto, target: uint(value)}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", args[0])
	}
}

// findMigrationsDir returns the first existing directory among the overrides and the defaults.
func findMigrationsDir(overrides ...string) (string, error) {
	candidates := append(append([]string{}, overrides...), defaultMigrationDirs...)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, MIGRATIONS_PATH, %s)", strings.Join(defaultMigrationDirs, ", "))
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down [steps]|version|force <version>|goto <version>>\n", name)
}
