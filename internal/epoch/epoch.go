// Package epoch implements the integer epoch clock shared by both programs
// (spec §3.1) and the SlotToggle state machine (spec §3.2) that gates every
// opt-in relationship. It is grounded on the teacher's consensus package:
// Epoch/Slot/SlotToEpoch come from pkg/consensus/types.go, and the
// wall-clock-free "pure function of slot" style comes from
// pkg/consensus/quick_slots.go's SlotAt.
package epoch

import "errors"

// Epoch is the unit every state transition in this module is expressed
// against: epoch = slot / epoch_length (spec §3.1).
type Epoch uint64

// Slot is a monotonically advancing integer clock tick.
type Slot uint64

// Length is the per-program epoch_length configuration constant.
type Length uint64

// At returns the epoch containing the given slot, e(x) = x/L.
func (l Length) At(s Slot) Epoch {
	if l == 0 {
		return 0
	}
	return Epoch(uint64(s) / uint64(l))
}

// State is the four-state machine every SlotToggle derives.
type State uint8

const (
	Inactive State = iota
	WarmUp
	Active
	Cooldown
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case WarmUp:
		return "warm_up"
	case Active:
		return "active"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// IsActiveOrCooldown reports whether s is one of the two states that grace
// some operations (slashing, cooldown initiation) even though the strict
// "connected" gate otherwise requires Active.
func (s State) IsActiveOrCooldown() bool { return s == Active || s == Cooldown }

var (
	// ErrNotInactive is returned by Activate when the toggle is not
	// currently Inactive.
	ErrNotInactive = errors.New("slottoggle: activate requires Inactive state")
	// ErrNotActive is returned by Deactivate when the toggle is not
	// currently Active.
	ErrNotActive = errors.New("slottoggle: deactivate requires Active state")
)

// SlotToggle is the two-field epoch-gated activation primitive underlying
// every opt-in relationship record (spec §3.2). The raw slot fields are
// intentionally unexported: callers must go through State/Activate/Deactivate.
type SlotToggle struct {
	slotAdded   Slot
	slotRemoved Slot
}

// NewSlotToggle creates a toggle freshly activated (WarmUp) at the given
// slot — the state every relationship record starts in at Initialize.
func NewSlotToggle(now Slot) SlotToggle {
	return SlotToggle{slotAdded: now, slotRemoved: 0}
}

// SlotAdded returns the raw slot_added field, for persistence/serialization.
func (t SlotToggle) SlotAdded() Slot { return t.slotAdded }

// SlotRemoved returns the raw slot_removed field, for persistence/serialization.
func (t SlotToggle) SlotRemoved() Slot { return t.slotRemoved }

// FromRaw reconstructs a SlotToggle from its two persisted fields — used by
// account deserialization, which must not re-derive WarmUp state.
func FromRaw(slotAdded, slotRemoved Slot) SlotToggle {
	return SlotToggle{slotAdded: slotAdded, slotRemoved: slotRemoved}
}

// State computes the toggle's derived state at query slot s for epoch
// length l, per spec §3.2:
//
//	slot_added >= slot_removed:
//	  e(s) > e(slot_added)+1 -> Active
//	  else                   -> WarmUp
//	slot_added < slot_removed:
//	  e(s) > e(slot_removed)+1 -> Inactive
//	  else                     -> Cooldown
func (t SlotToggle) State(s Slot, l Length) State {
	if t.slotAdded >= t.slotRemoved {
		if l.At(s) > l.At(t.slotAdded)+1 {
			return Active
		}
		return WarmUp
	}
	if l.At(s) > l.At(t.slotRemoved)+1 {
		return Inactive
	}
	return Cooldown
}

// IsActive reports whether the toggle is Active at slot s.
func (t SlotToggle) IsActive(s Slot, l Length) bool { return t.State(s, l) == Active }

// IsActiveOrCooldown reports whether the toggle is Active or Cooldown at s.
func (t SlotToggle) IsActiveOrCooldown(s Slot, l Length) bool {
	return t.State(s, l).IsActiveOrCooldown()
}

// Activate transitions Inactive -> WarmUp at slot now. Fails with
// ErrNotInactive unless the toggle is currently Inactive.
func (t *SlotToggle) Activate(now Slot, l Length) error {
	if t.State(now, l) != Inactive {
		return ErrNotInactive
	}
	t.slotAdded = now
	return nil
}

// Deactivate transitions Active -> Cooldown at slot now. Fails with
// ErrNotActive unless the toggle is currently Active.
func (t *SlotToggle) Deactivate(now Slot, l Length) error {
	if t.State(now, l) != Active {
		return ErrNotActive
	}
	t.slotRemoved = now
	return nil
}
