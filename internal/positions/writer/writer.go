package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vbb-change-positions/internal/common/logger"
	"github.com/vbb-change-positions/pkg/positions/models"
)

// Sink persists the entries of one wizard run.
type Sink interface {
	Write(ctx context.Context, entries []models.Entry) error
}

// Encode renders entries as newline-delimited JSON, one object per line.
func Encode(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			return nil, fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// NDJSONFile appends entries to a data file. Existing content is never
// truncated or rewritten.
type NDJSONFile struct {
	path   string
	logger logger.Logger
}

func NewNDJSONFile(path string, logger logger.Logger) *NDJSONFile {
	return &NDJSONFile{path: path, logger: logger}
}

func (f *NDJSONFile) Path() string {
	return f.path
}

func (f *NDJSONFile) Write(ctx context.Context, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening data file: %w", err)
	}

	// single write so the lines of one run stay contiguous
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("appending to data file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}

	f.logger.Info("Entries appended", "path", f.path, "count", len(entries), "bytes", len(data))
	return nil
}

// Multi writes to every sink in order and stops at the first failure.
type Multi []Sink

// Sinks puts the mirrors ahead of the data file, so a failing mirror
// leaves the file untouched. Nil mirrors are skipped.
func Sinks(file *NDJSONFile, mirrors ...Sink) Multi {
	m := make(Multi, 0, len(mirrors)+1)
	for _, s := range mirrors {
		if s != nil {
			m = append(m, s)
		}
	}
	return append(m, file)
}

func (m Multi) Write(ctx context.Context, entries []models.Entry) error {
	for _, s := range m {
		if err := s.Write(ctx, entries); err != nil {
			return err
		}
	}
	return nil
}
