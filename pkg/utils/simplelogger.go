// Package utils предоставляет процессный логгер для CLI.
//
// Stdout занят ответом агента, поэтому логи идут в stderr или в файл.
// Каждая строка помечена run_id текущего запуска.
// Thread-safe через sync.Mutex.
package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	logger   *log.Logger = log.New(io.Discard)
	logFile  *os.File
	logMutex sync.Mutex
	runID    string
)

// LogOptions — куда и насколько подробно писать.
type LogOptions struct {
	// File — путь к лог-файлу (append). Пусто — stderr.
	File string
	// Debug включает уровень DEBUG, иначе пишутся только WARN и выше.
	Debug bool
	// Output заменяет stderr, если File пуст. Нужен в тестах.
	Output io.Writer
}

// InitLogger настраивает логгер и выдаёт новый run_id.
//
// Повторный вызов закрывает предыдущий файл.
func InitLogger(opts LogOptions) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	closeFileLocked()

	var w io.Writer = os.Stderr
	if opts.Output != nil {
		w = opts.Output
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		w = f
	}

	level := log.WarnLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	runID = uuid.NewString()
	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "agent-cli",
	}).With("run_id", runID)

	return nil
}

// RunID возвращает идентификатор текущего запуска.
func RunID() string {
	logMutex.Lock()
	defer logMutex.Unlock()
	return runID
}

// Info - информационное сообщение.
func Info(msg string, keyvals ...any) {
	current().Info(msg, keyvals...)
}

// Error - сообщение об ошибке.
func Error(msg string, keyvals ...any) {
	current().Error(msg, keyvals...)
}

// Debug - отладочное сообщение.
func Debug(msg string, keyvals ...any) {
	current().Debug(msg, keyvals...)
}

// Warn - предупреждение.
func Warn(msg string, keyvals ...any) {
	current().Warn(msg, keyvals...)
}

func current() *log.Logger {
	logMutex.Lock()
	defer logMutex.Unlock()
	return logger
}

// Close закрывает лог-файл и выключает логгер.
//
// Вызывается через defer в main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	closeFileLocked()
	logger = log.New(io.Discard)
}

func closeFileLocked() {
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			// Логгер уже закрывается, только stderr
			fmt.Fprintf(os.Stderr, "[LOGGER WARNING: Close failed: %v]\n", err)
		}
		logFile = nil
	}
}
