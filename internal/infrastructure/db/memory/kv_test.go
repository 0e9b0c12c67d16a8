package memory

import (
	"context"
	"testing"
)

func TestKV_GetSet(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	if _, found, err := kv.Get(ctx, "k"); found || err != nil {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	value := []byte("v1")
	if err := kv.Set(ctx, "k", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x' // caller mutation must not leak in

	got, found, err := kv.Get(ctx, "k")
	if err != nil || !found || string(got) != "v1" {
		t.Errorf("got %q found=%v err=%v", got, found, err)
	}
}

func TestKV_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewKV().Set(ctx, "k", nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
