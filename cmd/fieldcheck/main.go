// Command fieldcheck validates field values against a YAML field schema.
//
//	FIELDCHECK_SCHEMA=signup.yaml fieldcheck email=a@b.co username=ab
//
// Each argument commits a value to the named field. One line is printed per
// field in schema order. The exit code is 1 when any field is invalid and 2
// for usage or configuration errors.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/schema"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// runIDKey stores the run identifier attached to every log record.
type runIDKey struct{}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

type Config struct {
	Schema    string `env:"SCHEMA,required"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Env       string `env:"ENV" envDefault:"development"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	ctx = withRunID(ctx, uuid.NewString())
	os.Exit(run(ctx, cfg, log, os.Args[1:], os.Stdout))
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	// Explicit level and format override the environment defaults.
	return logger.New(
		logger.WithEnvironment(cfg.Env, "fieldcheck"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

func run(ctx context.Context, cfg Config, log *slog.Logger, args []string, out io.Writer) int {
	values, err := parseArgs(args)
	if err != nil {
		log.ErrorContext(ctx, "invalid arguments", logger.Error(err))
		return exitUsage
	}

	doc, err := schema.Load(cfg.Schema)
	if err != nil {
		log.ErrorContext(ctx, "failed to load schema", logger.Schema(cfg.Schema), logger.Error(err))
		return exitUsage
	}
	log.InfoContext(ctx, "schema loaded", logger.Schema(cfg.Schema), slog.Int("fields", len(doc.Fields)))

	for name := range values {
		if _, ok := doc.Field(name); !ok {
			log.ErrorContext(ctx, "unknown field", logger.Field(name))
			return exitUsage
		}
	}

	controllers, err := doc.Controllers(field.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to build fields", logger.Error(err))
		return exitUsage
	}

	code := exitOK
	for _, c := range controllers {
		if text, ok := values[c.Name()]; ok {
			c.Commit(ctx, text)
		}
		if !c.IsValid() {
			code = exitInvalid
		}
		fmt.Fprintln(out, report(c))
	}
	return code
}

// report formats one result line: ok, error or untouched, plus helper text.
func report(c *field.Controller) string {
	switch c.State().Phase() {
	case field.Invalid:
		msg, _ := c.CurrentError()
		return fmt.Sprintf("%s: error: %s", c.Name(), msg)
	case field.Valid:
		return withHelper(c.Name()+": ok", c)
	default:
		return withHelper(c.Name()+": untouched", c)
	}
}

func withHelper(line string, c *field.Controller) string {
	if helper, isErr := c.Message(); helper != "" && !isErr {
		return line + " (" + helper + ")"
	}
	return line
}

func parseArgs(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", arg)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("field %q given more than once", name)
		}
		values[name] = value
	}
	return values, nil
}
