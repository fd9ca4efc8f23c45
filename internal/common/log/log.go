package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogOptionConsole = "console"
	LogOptionJSON    = "json"
)

type Field = zap.Field

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	logOption  string
	env        string
	level      zapcore.Level
	caller     bool
	callerSkip int
	out        io.Writer
}

type Option func(*options)

// WithLogToOption selects the encoder, "console" (colored levels) or "json".
func WithLogToOption(opt string) Option {
	return func(o *options) {
		o.logOption = strings.ToLower(opt)
	}
}

func WithLogEnvOption(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func WithLogLevel(level string) Option {
	return func(o *options) {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		o.level = lvl
	}
}

func WithCaller(caller bool) Option {
	return func(o *options) {
		o.caller = caller
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// Init replaces the package logger. Safe to call more than once.
func Init(name string, opts ...Option) {
	o := &options{
		logOption: LogOptionConsole,
		level:     zapcore.InfoLevel,
		out:       os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.logOption == LogOptionJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(o.out)), o.level)

	zapOpts := []zap.Option{zap.AddCallerSkip(o.callerSkip)}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	l := zap.New(core, zapOpts...).Named(name)
	if o.env != "" {
		l = l.With(zap.String("env", o.env))
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// InitForTest discards every entry.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

// Logger returns the underlying zap logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() {
	_ = Logger().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String("correlationId", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	Logger().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	Logger().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	Logger().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	Logger().Error(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	Error(ctx, fmt.Sprintf(format, args...))
}

// Fatalf logs and exits the process with status 1.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	Logger().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Err(err error) Field { return zap.Error(err) }
