package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSink сохраняет меню в <Dir>/menu_<organizationID>.json.
type FileSink struct {
	Dir string
}

// NewFileSink создаёт FileSink. Пустой dir — текущий каталог.
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

// Name реализует session.MenuSink.
func (s *FileSink) Name() string { return "файл" }

// MenuFileName возвращает имя файла меню организации.
func MenuFileName(organizationID string) string {
	return fmt.Sprintf("menu_%s.json", organizationID)
}

// SaveMenu пишет меню с отступом в 2 пробела и возвращает путь к файлу.
func (s *FileSink) SaveMenu(_ context.Context, organizationID string, raw []byte) (string, error) {
	if organizationID == "" {
		return "", fmt.Errorf("organization id is empty")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return "", fmt.Errorf("indent menu: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create menu dir: %w", err)
	}

	path := filepath.Join(s.Dir, MenuFileName(organizationID))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write menu: %w", err)
	}
	return path, nil
}

// LoadMenu читает сохранённое меню организации.
// Нет файла — ErrMenuNotCached.
func (s *FileSink) LoadMenu(_ context.Context, organizationID string) ([]byte, error) {
	path := filepath.Join(s.Dir, MenuFileName(organizationID))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMenuNotCached, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return data, nil
}
