package invasion

import "errors"

// Sentinel errors returned by Run and Result.Select. Match with
// errors.Is; wrapped variants carry the offending ids or counts.
var (
	// ErrNilNetwork is returned when the network pointer is nil.
	ErrNilNetwork = errors.New("invasion: nil network")

	// ErrEntryLength is returned when the entry pressure slice does not
	// provide exactly one value per throat.
	ErrEntryLength = errors.New("invasion: entry pressure length mismatch")

	// ErrEntryNaN is returned when an entry pressure is NaN. NaN has no
	// place in a total order; ±Inf are accepted.
	ErrEntryNaN = errors.New("invasion: entry pressure is NaN")

	// ErrNoInlets is returned when no inlet pores are given.
	ErrNoInlets = errors.New("invasion: no inlet pores")

	// ErrInletRange is returned when an inlet pore id lies outside
	// [0, Pores()).
	ErrInletRange = errors.New("invasion: inlet pore out of range")

	// ErrPoreRange is returned by Result.Select for a pore id outside
	// [0, len(PoreSequence)).
	ErrPoreRange = errors.New("invasion: pore id out of range")

	// ErrThroatRange is returned by Result.Select for a throat id outside
	// [0, len(ThroatSequence)).
	ErrThroatRange = errors.New("invasion: throat id out of range")
)

// Options configures a single Run. Construct with DefaultOptions and
// adjust via functional options.
type Options struct {
	// OnThroatInvaded fires immediately after a throat is invaded,
	// carrying the throat id and its sequence number. Must not mutate
	// the network.
	OnThroatInvaded func(throat, seq int)

	// OnPoreInvaded fires immediately after a pore is first reached,
	// carrying the pore id and its event number. Inlet pores are seeded,
	// not reached, and never fire. Must not mutate the network.
	OnPoreInvaded func(pore, seq int)
}

// Option adjusts Options in functional-option style.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnThroatInvaded: func(int, int) {},
		OnPoreInvaded:   func(int, int) {},
	}
}

// WithOnThroatInvaded installs fn as the throat event hook.
// A nil fn keeps the current hook.
func WithOnThroatInvaded(fn func(throat, seq int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnThroatInvaded = fn
		}
	}
}

// WithOnPoreInvaded installs fn as the pore event hook.
// A nil fn keeps the current hook.
func WithOnPoreInvaded(fn func(pore, seq int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPoreInvaded = fn
		}
	}
}
