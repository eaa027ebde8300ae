package invasion

import "fmt"

// Result is the complete history of one invasion run. Both slices are
// owned by the Result; Run never retains or reuses them.
type Result struct {
	// PoreSequence maps each pore id to the event that reached it:
	// 0 for inlet pores, counting from 1 for every later event, -1 if
	// the front never arrived. Two pores reached by the same throat
	// share one event number.
	PoreSequence []int

	// ThroatSequence maps each throat id to its invasion order, counting
	// from 0, -1 if the throat was never invaded.
	ThroatSequence []int
}

// Select returns the invasion sequences gathered over the requested id
// subsets, in request order. A nil or empty subset selects everything
// in id order. The returned slices are fresh copies.
//
// Returns ErrPoreRange or ErrThroatRange (wrapped with the offending
// id) when a subset entry does not name an existing pore or throat.
func (res *Result) Select(pores, throats []int) ([]int, []int, error) {
	poreSeq, err := gather(res.PoreSequence, pores, ErrPoreRange)
	if err != nil {
		return nil, nil, err
	}
	throatSeq, err := gather(res.ThroatSequence, throats, ErrThroatRange)
	if err != nil {
		return nil, nil, err
	}

	return poreSeq, throatSeq, nil
}

// InvadedPores returns how many pores the front reached, inlets
// included.
func (res *Result) InvadedPores() int { return countInvaded(res.PoreSequence) }

// InvadedThroats returns how many throats the front passed through.
func (res *Result) InvadedThroats() int { return countInvaded(res.ThroatSequence) }

// gather copies src whole when ids is empty, otherwise src[id] for each
// requested id in order.
func gather(src, ids []int, rangeErr error) ([]int, error) {
	if len(ids) == 0 {
		out := make([]int, len(src))
		copy(out, src)

		return out, nil
	}

	out := make([]int, len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(src) {
			return nil, fmt.Errorf("%w: %d (have %d)", rangeErr, id, len(src))
		}
		out[i] = src[id]
	}

	return out, nil
}

// countInvaded tallies entries that left the -1 sentinel behind.
func countInvaded(seq []int) int {
	c := 0
	for _, s := range seq {
		if s >= 0 {
			c++
		}
	}

	return c
}
