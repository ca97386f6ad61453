package kv_repo

import (
	"context"
	"testing"
)

func TestMemoryKeyValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()

	if _, ok, err := kv.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("empty store returned ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "k", "[true]"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || v != "[true]" {
		t.Fatalf("got %q ok=%v err=%v", v, ok, err)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatal("key should be deleted")
	}
}
