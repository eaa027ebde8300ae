package invasion

import "sort"

// entryRank is the global total order of throats by capillary entry
// pressure, ascending, ties broken by ascending throat id. Both views
// are fixed for the whole run: byRank and rankOf are inverse
// permutations of each other.
type entryRank struct {
	byRank []int // byRank[r] = throat occupying rank r
	rankOf []int // rankOf[t] = rank of throat t
}

// rankByEntry derives the entryRank of the given entry pressures.
// sort.SliceStable keeps equal pressures in ascending id order, which is
// what makes the whole engine deterministic.
//
// Complexity: O(T log T).
func rankByEntry(entry []float64) entryRank {
	byRank := make([]int, len(entry))
	for t := range byRank {
		byRank[t] = t
	}
	sort.SliceStable(byRank, func(i, j int) bool {
		return entry[byRank[i]] < entry[byRank[j]]
	})

	rankOf := make([]int, len(entry))
	for r, t := range byRank {
		rankOf[t] = r
	}

	return entryRank{byRank: byRank, rankOf: rankOf}
}
