package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Gateway stores each collection as one JSON file under dir, mirroring the
// original deployment's per-key browser storage.
type Gateway struct {
	dir string
}

func NewGateway(dir string) *Gateway {
	return &Gateway{dir: dir}
}

func (g *Gateway) Load(_ context.Context, slot string) ([]byte, bool, error) {
	data, err := os.ReadFile(g.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", slot, err)
	}
	return data, true, nil
}

func (g *Gateway) Save(_ context.Context, slot string, data []byte) error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	// Write-then-rename keeps the slot readable if the process dies mid-write.
	tmp := g.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	if err := os.Rename(tmp, g.path(slot)); err != nil {
		return fmt.Errorf("replace %s: %w", slot, err)
	}
	return nil
}

func (g *Gateway) path(slot string) string {
	return filepath.Join(g.dir, slot+".json")
}
