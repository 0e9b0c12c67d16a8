package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_EmptyDir(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestKV_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := Open(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, found, err := kv.Get(ctx, "@shipments"); found || err != nil {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := kv.Set(ctx, "@shipments", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "@shipments", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, found, err := kv.Get(ctx, "@shipments")
	if err != nil || !found || string(got) != `[1,2]` {
		t.Errorf("got %q found=%v err=%v", got, found, err)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "nested"))
	if len(entries) != 1 || entries[0].Name() != "%40shipments.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only %%40shipments.json, got %v", names)
	}
}

func TestKV_SetLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := kv.Set(ctx, "k", []byte("v")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected a single file after repeated sets, got %d", len(entries))
	}

	broken := &KV{dir: filepath.Join(dir, "missing")}
	if err := broken.Set(ctx, "k", []byte("new")); err == nil {
		t.Error("expected set into a missing directory to fail")
	}
}

func TestKV_Ping(t *testing.T) {
	dir := t.TempDir()
	kv, _ := Open(dir)
	if err := kv.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}

	gone := &KV{dir: filepath.Join(dir, "gone")}
	if err := gone.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail for a missing directory")
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"@shipments":  "%40shipments",
		"_shipments":  "_shipments",
		"a/../b":      "a%2F..%2Fb",
		"100%":        "100%25",
		"plain-key_1": "plain-key_1",
	}
	for in, want := range cases {
		if got := fileName(in); got != want {
			t.Errorf("fileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKV_DistinctKeysDoNotCollide(t *testing.T) {
	ctx := context.Background()
	kv, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	keys := []string{"@shipments", "_shipments", "%40shipments"}
	for _, key := range keys {
		if err := kv.Set(ctx, key, []byte(key)); err != nil {
			t.Fatalf("set %q: %v", key, err)
		}
	}
	for _, key := range keys {
		got, found, err := kv.Get(ctx, key)
		if err != nil || !found || string(got) != key {
			t.Errorf("%q: got %q found=%v err=%v", key, got, found, err)
		}
	}
}
