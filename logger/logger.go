// Package logger provides a configurable logger that can write to multiple
// outputs. Init must be called early in the application lifecycle; functions
// like AddOutput and SetEnabled return errors if called before Init.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger is a configurable logger that can write to multiple outputs.
type Logger struct {
	mu      sync.Mutex
	outputs []io.Writer
	enabled bool
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger. With writeToStdout false only writers
// added later (e.g. the TUI log buffer) receive output.
func Init(writeToStdout bool) {
	once.Do(func() {
		outputs := []io.Writer{}
		if writeToStdout {
			outputs = append(outputs, os.Stdout)
		}
		globalLogger = &Logger{
			outputs: outputs,
			enabled: true,
		}
	})
}

// AddOutput adds an additional output writer (e.g. the TUI log buffer).
func AddOutput(w io.Writer) error {
	if globalLogger == nil {
		return errors.New("logger not initialized: call logger.Init() first")
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.outputs = append(globalLogger.outputs, w)
	return nil
}

// SetEnabled enables or disables logging.
func SetEnabled(enabled bool) error {
	if globalLogger == nil {
		return errors.New("logger not initialized: call logger.Init() first")
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.enabled = enabled
	return nil
}

// Printf logs a formatted message to every output.
func Printf(format string, v ...interface{}) {
	if globalLogger == nil {
		// Fallback to standard log if not initialized
		log.Printf(format, v...)
		return
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	if !globalLogger.enabled {
		return
	}

	msg := strings.TrimSuffix(fmt.Sprintf(format, v...), "\n") + "\n"
	for _, output := range globalLogger.outputs {
		output.Write([]byte(msg))
	}
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	Printf("[INFO] "+format, v...)
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	Printf("[WARN] "+format, v...)
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	Printf("[ERROR] "+format, v...)
}
