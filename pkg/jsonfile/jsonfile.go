package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrStorage marks any failure of the underlying filesystem.
	ErrStorage = errors.New("storage unavailable")
	// ErrCorrupt marks a document that exists but does not decode.
	ErrCorrupt = errors.New("document corrupt")
)

// Read decodes the JSON document at path into v. A missing file is
// reported as fs.ErrNotExist so callers can start from an empty
// collection; an undecodable file is reported as ErrCorrupt.
func Read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("%w: read %s: %v", ErrStorage, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return nil
}

// Write stages the document next to its destination and renames it into
// place, so readers never observe a half-written file.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", ErrStorage, dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: stage %s: %v", ErrStorage, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: commit %s: %v", ErrStorage, path, err)
	}
	return nil
}
