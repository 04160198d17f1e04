package epoch

// Clock turns a caller-supplied current slot into the derived epoch used
// throughout this module. The host runtime is the authority on "what slot is
// it now" (spec §1, out of scope); Clock exists only so packages that need
// both slot and epoch together don't repeat the division inline, mirroring
// the teacher's SlotClock in pkg/consensus/slots.go (minus the wall-clock
// genesis-time plumbing, which has no analogue here: every operation in this
// spec receives its current slot explicitly from the caller).
type Clock struct {
	EpochLength Length
}

// NewClock creates a Clock for the given per-program epoch length.
func NewClock(epochLength uint64) Clock {
	return Clock{EpochLength: Length(epochLength)}
}

// EpochAt returns the epoch containing slot s.
func (c Clock) EpochAt(s Slot) Epoch { return c.EpochLength.At(s) }

// StartOfEpoch returns the first slot of the given epoch.
func (c Clock) StartOfEpoch(e Epoch) Slot {
	return Slot(uint64(e) * uint64(c.EpochLength))
}
