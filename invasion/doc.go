// Package invasion implements quasi-static invasion percolation over a
// pnet.Network, reporting the order in which throats and pores fill.
//
// What
//
//   - Run floods a network from a set of inlet pores: at every step the
//     invading fluid takes, among all throats adjacent to the invaded
//     region, the one with the lowest capillary entry pressure.
//   - Returns a Result holding two dense sequences:
//   - ThroatSequence: throat id → invasion order (0,1,2,...)
//   - PoreSequence: pore id → invasion event (0 for inlets, then 1,2,...)
//   - Unreached ids keep the sentinel -1.
//   - Supports functional hooks at both event kinds:
//   - OnThroatInvaded (a throat has just been invaded)
//   - OnPoreInvaded   (a pore has just been reached; inlets never fire)
//   - Result.Select projects the sequences onto caller-chosen id subsets.
//
// Why
//
//   - Capillary-dominated drainage in porous media follows exactly this
//     rule: the widest available constriction yields first.
//   - The full event history (not just the final invaded set) is what
//     downstream analyses consume: saturation curves, breakthrough
//     detection, front visualisation.
//
// Algorithm
//
//	Throats are ranked once by (entry pressure, throat id) ascending;
//	the frontier is a min-heap of ranks. Popping the heap yields the
//	next throat to invade; ranks pushed twice (one per endpoint) are
//	collapsed lazily at pop time. Invading a throat may reach one or
//	two new pores; every such event increments the pore counter once,
//	and both pores of a double reach share that event number. Newly
//	reached pores push the ranks of their uninvaded throats.
//
// Determinism
//
//	Equal entry pressures are broken by ascending throat id, so equal
//	inputs reproduce the identical Result, event for event.
//
// Complexity (P = pores, T = throats)
//
//   - Time:   O(T log T)   (ranking sort + at most 2T heap operations)
//   - Memory: O(P + T)     (sequences, rank tables, frontier)
//
// Usage
//
//	net, _ := pnet.FromThroats(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	res, err := invasion.Run(net, []float64{0.2, 0.5, 0.1, 0.4}, []int{0})
//	if err != nil {
//	    // handle one of:
//	    // ErrNilNetwork, ErrEntryLength, ErrEntryNaN, ErrNoInlets, ErrInletRange
//	}
//	fmt.Println(res.ThroatSequence) // [0 3 2 1]
//
// Options
//
//   - DefaultOptions(): no-op hooks.
//   - WithOnThroatInvaded(fn): observe each throat event as it happens.
//   - WithOnPoreInvaded(fn):   observe each pore event as it happens.
//
// Errors
//
//   - ErrNilNetwork  if the network pointer is nil.
//   - ErrEntryLength if len(entry) differs from net.Throats().
//   - ErrEntryNaN    if any entry pressure is NaN (±Inf are legal).
//   - ErrNoInlets    if the inlet slice is empty.
//   - ErrInletRange  if an inlet id lies outside [0, Pores()).
//   - ErrPoreRange, ErrThroatRange from Result.Select for bad subset ids.
package invasion
