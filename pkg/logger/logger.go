package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Options controls how a logger is built
type Options struct {
	Level string
	JSON  bool
}

// OptionsFromEnv reads LOG_LEVEL and JSON_LOG
func OptionsFromEnv() Options {
	return Options{
		Level: os.Getenv("LOG_LEVEL"),
		JSON:  os.Getenv("JSON_LOG") != "",
	}
}

// Get initializes a zap.SugaredLogger from the environment if it has not been
// initialized already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		logger = New(OptionsFromEnv())
	})

	return logger
}

// New builds a logger writing to stdout. An invalid level falls back to INFO.
func New(opts Options) *zap.SugaredLogger {
	level := zap.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			log.Println(fmt.Errorf("invalid level, defaulting to INFO: %w", err))
		} else {
			level = parsed
		}
	}

	encoder := zapcore.NewConsoleEncoder(developmentEncoderConfig())
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(productionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))
	core = core.With(buildFields())

	return zap.New(core).Sugar().With(zap.String("service", "mediastat"))
}

func productionEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func developmentEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

func buildFields() []zapcore.Field {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
	for _, v := range buildInfo.Settings {
		if v.Key == "vcs.revision" && len(v.Value) >= 7 {
			fields = append(fields, zap.String("git_revision", v.Value[0:7]))
			break
		}
	}

	return fields
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}

	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
