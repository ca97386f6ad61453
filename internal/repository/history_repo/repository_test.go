package history_repo

import (
	"context"
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository/kv_repo"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func newRepo() (*repo, context.Context) {
	kv := kv_repo.NewMemoryKeyValue()
	return NewHistoryRepository(kv, "roulette_history", zap.NewNop()).(*repo), context.Background()
}

func TestReadAllEmpty(t *testing.T) {
	r, ctx := newRepo()

	h, err := r.ReadAll(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if h == nil || len(h) != 0 {
		t.Fatalf("expected empty history, got %v", h)
	}
}

func TestAppendEvictsOldest(t *testing.T) {
	r, ctx := newRepo()

	var want model.History
	for i := 0; i < 25; i++ {
		b := i%3 == 0
		if i >= 5 {
			want = append(want, b)
		}
		h, err := r.Append(ctx, "s", b)
		if err != nil {
			t.Fatal(err)
		}
		if len(h) > model.HistoryCapacity {
			t.Fatalf("history grew to %d", len(h))
		}
	}

	got, err := r.ReadAll(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestCorruptedHistoryIsEmpty(t *testing.T) {
	r, ctx := newRepo()

	for _, raw := range []string{"not json", `{"a":1}`, `[1,2]`, `null`} {
		if err := r.kv.Set(ctx, r.key("s"), raw); err != nil {
			t.Fatal(err)
		}
		h, err := r.ReadAll(ctx, "s")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if len(h) != 0 {
			t.Fatalf("%q: expected empty history, got %v", raw, h)
		}
	}

	h, err := r.Append(ctx, "s", true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(h, model.History{true}) {
		t.Fatalf("append after corruption: %v", h)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	r, ctx := newRepo()

	if _, err := r.Append(ctx, "a", true); err != nil {
		t.Fatal(err)
	}
	h, _ := r.ReadAll(ctx, "b")
	if len(h) != 0 {
		t.Fatalf("session b sees %v", h)
	}

	if err := r.Clear(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	h, _ = r.ReadAll(ctx, "a")
	if len(h) != 0 {
		t.Fatalf("cleared history still has %v", h)
	}
}

func TestDecodeTrimsOversizedHistory(t *testing.T) {
	raw := "[" + "true,"
	for i := 0; i < 29; i++ {
		raw += "false,"
	}
	raw += "true]"

	h, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != model.HistoryCapacity {
		t.Fatalf("len = %d", len(h))
	}
	if !h[len(h)-1] {
		t.Fatal("newest entry must be kept")
	}
}
