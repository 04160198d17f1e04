package epoch

import "testing"

// TestSlotToggle_WarmupTiming exercises the scenario from spec §8 seed test 1:
// epoch_length=150; created at slot 100; at slot 100 WarmUp; at slot 250
// (epoch 1) WarmUp; at slot 301 (epoch 2) Active.
func TestSlotToggle_WarmupTiming(t *testing.T) {
	l := Length(150)
	tog := NewSlotToggle(100)

	if got := tog.State(100, l); got != WarmUp {
		t.Fatalf("at slot 100: expected WarmUp, got %v", got)
	}
	if got := tog.State(250, l); got != WarmUp {
		t.Fatalf("at slot 250: expected WarmUp, got %v", got)
	}
	if got := tog.State(301, l); got != Active {
		t.Fatalf("at slot 301: expected Active, got %v", got)
	}
}

func TestSlotToggle_SlotZero(t *testing.T) {
	l := Length(10)
	tog := NewSlotToggle(0)
	if got := tog.State(0, l); got != WarmUp {
		t.Fatalf("expected WarmUp at creation slot 0, got %v", got)
	}
	if got := tog.State(21, l); got != Active {
		t.Fatalf("expected Active by slot 21, got %v", got)
	}
}

func TestSlotToggle_ActivateDeactivateRoundTrip(t *testing.T) {
	l := Length(10)
	tog := NewSlotToggle(0)

	// Not yet active: deactivate must fail.
	if err := tog.Deactivate(5, l); err != ErrNotActive {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}

	// Jump past warm-up so it reads Active, then deactivate.
	if err := tog.Deactivate(25, l); err != nil {
		t.Fatalf("deactivate from Active: %v", err)
	}
	if got := tog.State(25, l); got != Cooldown {
		t.Fatalf("expected Cooldown immediately after deactivate, got %v", got)
	}

	// Deactivating again must fail: no longer Active.
	if err := tog.Deactivate(26, l); err != ErrNotActive {
		t.Fatalf("expected ErrNotActive on second deactivate, got %v", err)
	}

	// Still in cool-down/grace window: activate must fail until Inactive.
	if err := tog.Activate(26, l); err != ErrNotInactive {
		t.Fatalf("expected ErrNotInactive while cooling down, got %v", err)
	}

	// Past two full epochs from slot_removed=25: Inactive, activation works.
	if err := tog.Activate(60, l); err != nil {
		t.Fatalf("activate from Inactive: %v", err)
	}
	if got := tog.State(60, l); got != WarmUp {
		t.Fatalf("expected WarmUp immediately after re-activation, got %v", got)
	}
}

func TestSlotToggle_ActivateThenImmediatelyDeactivate(t *testing.T) {
	l := Length(10)
	tog := NewSlotToggle(0)
	// Still WarmUp, never reached Active: deactivate must fail.
	if err := tog.Deactivate(1, l); err != ErrNotActive {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
}

func TestClock(t *testing.T) {
	c := NewClock(150)
	if got := c.EpochAt(301); got != 2 {
		t.Fatalf("expected epoch 2, got %d", got)
	}
	if got := c.StartOfEpoch(2); got != 300 {
		t.Fatalf("expected slot 300, got %d", got)
	}
}

func TestIsActiveOrCooldown(t *testing.T) {
	l := Length(10)
	tog := NewSlotToggle(0)
	if tog.IsActiveOrCooldown(0, l) {
		t.Fatalf("warm-up should not count as active-or-cooldown")
	}
	if err := tog.Deactivate(25, l); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if !tog.IsActiveOrCooldown(25, l) {
		t.Fatalf("expected cooldown to count as active-or-cooldown")
	}
}
