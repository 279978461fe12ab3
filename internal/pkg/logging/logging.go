package logging

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogFilePerm = 0o644
	defaultLogDirPerm  = 0o755
)

// DailyFilename returns the log file name for the given day.
func DailyFilename(now time.Time) string {
	return "folio_" + now.Format("2006-01-02") + ".log"
}

// Writer appends to one log file per day inside dir.
type Writer struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewWriter creates dir if needed and returns a writer into it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, defaultLogDirPerm); err != nil {
		return nil, err
	}
	return &Writer{dir: dir, now: time.Now}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := filepath.Join(w.dir, DailyFilename(w.now()))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultLogFilePerm)
	if err != nil {
		return 0, err
	}

	n, writeErr := file.Write(p)
	closeErr := file.Close()
	if writeErr != nil {
		return n, writeErr
	}
	return n, closeErr
}

func (w *Writer) Sync() error {
	return nil
}

// ParseLevel maps a config level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// New creates a zap logger writing to stdout and to the daily file in dir.
func New(dir, level string) (*zap.Logger, error) {
	writer, err := NewWriter(dir)
	if err != nil {
		return nil, err
	}
	return newLogger(zapcore.Lock(os.Stdout), writer, ParseLevel(level)), nil
}

func newLogger(console zapcore.WriteSyncer, file zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	atom := zap.NewAtomicLevelAt(level)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, console, atom),
		zapcore.NewCore(encoder, file, atom),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
