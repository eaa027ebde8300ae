package invasion

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/porelab/percolate/pnet"
)

// Run simulates quasi-static invasion percolation on net, starting from
// the inlet pores, with entry[t] the capillary entry pressure of throat
// t. It returns the full invasion history as a Result; net is never
// mutated and successive calls with equal inputs return equal Results.
//
// Preconditions (checked in order):
//  1. net is non-nil, else ErrNilNetwork.
//  2. len(entry) == net.Throats(), else ErrEntryLength.
//  3. No entry pressure is NaN, else ErrEntryNaN; ±Inf are legal.
//  4. len(inlets) > 0, else ErrNoInlets.
//  5. Every inlet is a valid pore id, else ErrInletRange. Duplicate
//     inlets are harmless.
//
// Complexity: O(T log T) time, O(P + T) memory.
func Run(net *pnet.Network, entry []float64, inlets []int, opts ...Option) (*Result, error) {
	// 1) Assemble Options from functional arguments.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the network pointer.
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 3) Entry pressures must cover every throat, no more, no fewer.
	if len(entry) != net.Throats() {
		return nil, fmt.Errorf("%w: %d values for %d throats", ErrEntryLength, len(entry), net.Throats())
	}

	// 4) Reject NaN before any ordering is derived from the pressures.
	for t, v := range entry {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: throat %d", ErrEntryNaN, t)
		}
	}

	// 5) Validate the inlet set.
	if len(inlets) == 0 {
		return nil, ErrNoInlets
	}
	for _, p := range inlets {
		if p < 0 || p >= net.Pores() {
			return nil, fmt.Errorf("%w: %d (network has %d pores)", ErrInletRange, p, net.Pores())
		}
	}

	// 6) Rank throats once, seed the frontier, drain it to exhaustion.
	r := &runner{
		net:       net,
		opts:      cfg,
		rank:      rankByEntry(entry),
		poreSeq:   make([]int, net.Pores()),
		throatSeq: make([]int, net.Throats()),
	}
	r.seed(inlets)
	r.drain()

	return &Result{PoreSequence: r.poreSeq, ThroatSequence: r.throatSeq}, nil
}

// runner holds the mutable state of one invasion. Run creates it, uses
// it once, and hands its sequences to the Result.
type runner struct {
	net  *pnet.Network
	opts Options
	rank entryRank
	fr   frontier

	poreSeq   []int // pore id → event number, -1 while dry
	throatSeq []int // throat id → invasion order, -1 while dry
	tcount    int   // next throat sequence number to hand out
	pcount    int   // last pore event number handed out; inlets hold 0
}

// seed marks every pore and throat dry, stamps each inlet with event 0,
// and queues the ranks of all throats touching an inlet. A throat
// between two inlets enters twice; drain collapses the duplicate.
func (r *runner) seed(inlets []int) {
	for p := range r.poreSeq {
		r.poreSeq[p] = -1
	}
	for t := range r.throatSeq {
		r.throatSeq[t] = -1
	}
	for _, p := range inlets {
		r.poreSeq[p] = 0
	}

	r.fr = make(frontier, 0, r.net.Throats())
	heap.Init(&r.fr)
	for _, p := range inlets {
		for _, t := range r.net.PoreThroats(p) {
			heap.Push(&r.fr, r.rank.rankOf[t])
		}
	}
}

// drain pops the frontier to exhaustion, invading one throat per
// iteration. Each pop yields the minimum rank over every throat
// currently adjacent to the invaded region, so throats fill in
// ascending (entry pressure, id) order among the eligible.
func (r *runner) drain() {
	for r.fr.Len() > 0 {
		// a) Take the smallest queued rank.
		rk := heap.Pop(&r.fr).(int)

		// b) Collapse duplicates of the same rank now that they are adjacent
		//    at the top of the heap.
		for r.fr.Len() > 0 && r.fr[0] == rk {
			_ = heap.Pop(&r.fr)
		}

		// c) Resolve the rank back to its throat and record the invasion.
		th := r.rank.byRank[rk]
		if r.throatSeq[th] >= 0 {
			// Ranks map 1:1 onto throats and invaded throats are never
			// re-queued, so this state is unreachable.
			panic(fmt.Sprintf("invasion: rank %d maps to throat %d already invaded at %d", rk, th, r.throatSeq[th]))
		}
		r.throatSeq[th] = r.tcount
		r.opts.OnThroatInvaded(th, r.tcount)

		// d) Reaching one or two dry pores is a single event: both share
		//    one event number.
		a, b := r.net.Ends(th)
		dryA := r.poreSeq[a] < 0
		dryB := b != a && r.poreSeq[b] < 0
		if dryA || dryB {
			r.pcount++
			if dryA {
				r.invadePore(a)
			}
			if dryB {
				r.invadePore(b)
			}
		}

		r.tcount++
	}
}

// invadePore stamps pore p with the current event number and queues the
// ranks of its still-dry throats.
func (r *runner) invadePore(p int) {
	r.poreSeq[p] = r.pcount
	r.opts.OnPoreInvaded(p, r.pcount)
	for _, t := range r.net.PoreThroats(p) {
		if r.throatSeq[t] < 0 {
			heap.Push(&r.fr, r.rank.rankOf[t])
		}
	}
}
