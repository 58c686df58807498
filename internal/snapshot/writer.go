package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	sonic "github.com/bytedance/sonic"
)

// Writer persists raw provider payloads to timestamped files under a local
// directory, one subdirectory per payload kind.
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// Write stores raw under dir/kind/kind_YYYYMMDD_HHMMSS.json, pretty-printed
// when the payload is valid JSON, and returns the file path.
func (w *Writer) Write(kind string, raw []byte) (string, error) {
	folder := filepath.Join(w.dir, kind)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	body := raw
	var decoded any
	if err := sonic.Unmarshal(raw, &decoded); err == nil {
		if pretty, err := sonic.MarshalIndent(decoded, "", "  "); err == nil {
			body = pretty
		}
	}

	name := fmt.Sprintf("%s_%s.json", kind, w.now().UTC().Format("20060102_150405"))
	path := filepath.Join(folder, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
