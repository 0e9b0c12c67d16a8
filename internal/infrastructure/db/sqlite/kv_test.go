package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "data", "test.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	kv, err := NewKV(ctx, db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	return kv
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestKV_Upsert(t *testing.T) {
	ctx := context.Background()
	kv := openTestKV(t)

	if _, found, err := kv.Get(ctx, "@shipments"); found || err != nil {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := kv.Set(ctx, "@shipments", []byte(`[]`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := kv.Set(ctx, "@shipments", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, found, err := kv.Get(ctx, "@shipments")
	if err != nil || !found || string(got) != `[{"id":"a"}]` {
		t.Errorf("got %q found=%v err=%v", got, found, err)
	}

	if err := kv.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestNewKV_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "twice.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := NewKV(ctx, db); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewKV(ctx, db); err != nil {
		t.Errorf("second NewKV on the same db must succeed: %v", err)
	}
}
