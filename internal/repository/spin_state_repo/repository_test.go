package spin_state_repo

import (
	"fortune_wheel/internal/model"
	"testing"
	"time"
)

func TestBeginRejectsSecondSpin(t *testing.T) {
	r := NewSpinStateRepository()
	now := time.Now()

	if !r.Begin("s1", model.Decision{SpinID: "a"}, now) {
		t.Fatal("first spin should begin")
	}
	if r.Begin("s1", model.Decision{SpinID: "b"}, now) {
		t.Fatal("second spin must be rejected while first is pending")
	}

	p, ok := r.Pending("s1")
	if !ok || p.Decision.SpinID != "a" {
		t.Fatalf("pending spin changed: %+v", p)
	}

	if !r.Begin("s2", model.Decision{SpinID: "c"}, now) {
		t.Fatal("other session must not be blocked")
	}
}

func TestClaimFinish(t *testing.T) {
	r := NewSpinStateRepository()
	r.Begin("s1", model.Decision{SpinID: "a", Won: true}, time.Now())

	if _, ok := r.Claim("s1", "other"); ok {
		t.Fatal("claim with wrong spin id must fail")
	}

	p, ok := r.Claim("s1", "a")
	if !ok || !p.Decision.Won || !p.Committing {
		t.Fatalf("unexpected claim result: %+v %v", p, ok)
	}
	if _, ok := r.Claim("s1", "a"); ok {
		t.Fatal("spin must not be claimed twice")
	}
	if r.Begin("s1", model.Decision{SpinID: "b"}, time.Now()) {
		t.Fatal("session must stay busy while the outcome is written")
	}

	if r.Finish("s1", "other") {
		t.Fatal("finish with wrong spin id must fail")
	}
	if !r.Finish("s1", "a") {
		t.Fatal("finish failed")
	}
	if r.Finish("s1", "a") {
		t.Fatal("spin must not be finished twice")
	}
	if _, ok := r.Pending("s1"); ok {
		t.Fatal("session should be idle after finish")
	}
}

func TestReleaseAllowsRetry(t *testing.T) {
	r := NewSpinStateRepository()
	r.Begin("s1", model.Decision{SpinID: "a"}, time.Now())

	r.Claim("s1", "a")
	r.Release("s1", "other")
	if p, _ := r.Pending("s1"); !p.Committing {
		t.Fatal("release with wrong spin id must not clear the mark")
	}

	r.Release("s1", "a")
	if p, ok := r.Pending("s1"); !ok || p.Committing {
		t.Fatalf("spin should be pending again: %+v %v", p, ok)
	}
	if _, ok := r.Claim("s1", "a"); !ok {
		t.Fatal("released spin must be claimable")
	}
}
