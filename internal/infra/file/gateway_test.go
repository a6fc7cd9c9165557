package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(filepath.Join(t.TempDir(), "data"))

	if _, ok, err := gateway.Load(ctx, "submissions"); err != nil || ok {
		t.Fatalf("expected absent slot, got ok=%v err=%v", ok, err)
	}

	if err := gateway.Save(ctx, "submissions", []byte(`[1,2]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, ok, err := gateway.Load(ctx, "submissions")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if string(data) != `[1,2]` {
		t.Fatalf("unexpected data %q", data)
	}

	if err := gateway.Save(ctx, "submissions", []byte(`[3]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _, _ = gateway.Load(ctx, "submissions")
	if string(data) != `[3]` {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestGatewayWritesOneFilePerSlot(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	gateway := NewGateway(dir)

	if err := gateway.Save(ctx, "quizzes", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "quizzes.json")); err != nil {
		t.Fatalf("expected quizzes.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "quizzes.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file should have been renamed away")
	}
}
