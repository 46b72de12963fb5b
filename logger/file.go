package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Log file defaults
const (
	DefaultDir      = "logs"
	DefaultFileName = "vi-rogue.log"
	MaxSize         = 10 * 1024 * 1024 // 10MB
)

// OpenRotating opens dir/name for appending
// An existing file larger than maxSize is renamed with a timestamp suffix first
func OpenRotating(dir, name string, maxSize int64) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		ext := filepath.Ext(name)
		base := name[:len(name)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s.%s%s", base, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
