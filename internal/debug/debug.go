package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	mu     sync.Mutex
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

// Init initializes debug logging to the specified file path at the given
// level ("debug", "info", "warn", "error"). An empty path disables logging.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, level)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path, level string) error {
	if path == "" {
		setLocked(zap.NewNop())
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	setLocked(l)
	return nil
}

func setLocked(l *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
	logger = l
	sugar = l.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

// Logger returns the underlying zap logger, initializing it from TUI_DEBUG
// on first use.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return logger
}

func ensureLocked() {
	if logger == nil {
		if err := initLocked(os.Getenv(EnvVar), ""); err != nil {
			setLocked(zap.NewNop())
		}
	}
}

// Enabled reports whether debug-level messages are being recorded.
// Callers use it to skip building expensive log arguments.
func Enabled() bool {
	return Logger().Core().Enabled(zapcore.DebugLevel)
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	mu.Lock()
	ensureLocked()
	s := sugar
	mu.Unlock()
	s.Debugf(format, args...)
}

// Close flushes and disables the debug log.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return nil
	}
	err := logger.Sync()
	logger = zap.NewNop()
	sugar = logger.Sugar()
	return err
}
