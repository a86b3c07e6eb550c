package logger

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"
)

// LogEntry represents a single log entry.
type LogEntry struct {
	Timestamp time.Time
	Source    string
	Message   string
}

// LogBuffer is a thread-safe ring buffer of log entries, feeding the
// interactive console.
type LogBuffer struct {
	entries []LogEntry
	maxSize int
	mu      sync.RWMutex
}

// NewLogBuffer creates a buffer keeping the last maxSize entries.
func NewLogBuffer(maxSize int) *LogBuffer {
	return &LogBuffer{
		entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entry, evicting the oldest past maxSize.
func (lb *LogBuffer) Add(source, message string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries = append(lb.entries, LogEntry{
		Timestamp: time.Now(),
		Source:    source,
		Message:   message,
	})
	if len(lb.entries) > lb.maxSize {
		lb.entries = lb.entries[len(lb.entries)-lb.maxSize:]
	}
}

// GetAll returns a copy of all buffered entries.
func (lb *LogBuffer) GetAll() []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	result := make([]LogEntry, len(lb.entries))
	copy(result, lb.entries)
	return result
}

// Clear removes all entries.
func (lb *LogBuffer) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries = make([]LogEntry, 0, lb.maxSize)
}

// FormatLogEntry formats an entry for display.
func FormatLogEntry(entry LogEntry) string {
	return fmt.Sprintf("[%s] %s: %s",
		entry.Timestamp.Format("15:04:05"),
		entry.Source,
		entry.Message,
	)
}

var globalLogBuffer *LogBuffer
var bufferOnce sync.Once

// GetGlobalLogBuffer returns the buffer shared by the interactive console.
func GetGlobalLogBuffer() *LogBuffer {
	bufferOnce.Do(func() {
		globalLogBuffer = NewLogBuffer(1000) // keep last 1000 log entries
	})
	return globalLogBuffer
}

var sourceRegex = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)

// LogBufferWriter is an io.Writer feeding a LogBuffer. It extracts the
// source from lines in the format "[source] message".
type LogBufferWriter struct {
	buffer *LogBuffer
	buf    bytes.Buffer
	mu     sync.Mutex
}

// NewLogBufferWriter creates a writer that writes to the log buffer.
func NewLogBufferWriter(buffer *LogBuffer) *LogBufferWriter {
	return &LogBufferWriter{buffer: buffer}
}

// Write implements io.Writer, buffering until complete lines arrive.
func (lw *LogBufferWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf.Write(p)
	for {
		line, err := lw.buf.ReadString('\n')
		if err == io.EOF {
			// Partial line: keep it buffered for the next Write.
			lw.buf.WriteString(line)
			break
		}
		if err != nil {
			return len(p), err
		}

		line = strings.TrimSuffix(line, "\n")
		if len(line) == 0 {
			continue
		}

		source := "system"
		message := line
		if matches := sourceRegex.FindStringSubmatch(line); len(matches) == 3 {
			source = matches[1]
			message = matches[2]
		}
		lw.buffer.Add(source, message)
	}

	return len(p), nil
}
