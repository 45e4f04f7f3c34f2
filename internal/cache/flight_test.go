package cache

import (
	"errors"
	"testing"

	"prezo/internal/core/domain"
)

func TestGuard_RejectsDuplicates(t *testing.T) {
	g := NewGuard()

	release, err := g.Begin("video:merge")
	if err != nil {
		t.Fatalf("first Begin: %v", err)
	}

	if _, err := g.Begin("video:merge"); !errors.Is(err, domain.ErrDuplicateAction) {
		t.Errorf("duplicate Begin: got %v, want ErrDuplicateAction", err)
	}

	// A different key is unaffected.
	other, err := g.Begin("video:finish")
	if err != nil {
		t.Errorf("unrelated key blocked: %v", err)
	}
	other()

	release()
	if g.InFlight("video:merge") {
		t.Error("key still claimed after release")
	}

	// The same action can be re-invoked once the first resolved.
	release2, err := g.Begin("video:merge")
	if err != nil {
		t.Errorf("Begin after release: %v", err)
	}
	release2()
}

func TestGuard_ReleaseIsIdempotent(t *testing.T) {
	g := NewGuard()

	release, _ := g.Begin("k")
	release()
	release() // second call must not panic or unclaim someone else

	r2, err := g.Begin("k")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	release() // stale release must not free the new claim
	if !g.InFlight("k") {
		t.Error("stale release freed an active claim")
	}
	r2()
}
