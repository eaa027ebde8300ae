package pnet

import "fmt"

// ReachableFrom reports, for every pore, whether it is connected to at
// least one of the given seed pores through some chain of throats.
// Seeds themselves are reported reachable. With no seeds every pore is
// unreachable and the call still succeeds.
//
// Returns ErrPoreRange (wrapped with the offending id) if any seed is
// outside [0, Pores()).
//
// Complexity: O(P + T), Memory: O(P).
func (n *Network) ReachableFrom(pores ...int) ([]bool, error) {
	reached := make([]bool, len(n.incident))

	// 1) Validate and enqueue each seed exactly once.
	queue := make([]int, 0, len(pores))
	for _, p := range pores {
		if p < 0 || p >= len(n.incident) {
			return nil, fmt.Errorf("%w: %d (network has %d pores)", ErrPoreRange, p, len(n.incident))
		}
		if !reached[p] {
			reached[p] = true
			queue = append(queue, p)
		}
	}

	// 2) Standard BFS over incidence lists; the queue is an append-only
	//    slice walked by index.
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, t := range n.incident[p] {
			e := n.ends[t]
			o := e[0]
			if o == p {
				o = e[1]
			}
			if !reached[o] {
				reached[o] = true
				queue = append(queue, o)
			}
		}
	}

	return reached, nil
}
