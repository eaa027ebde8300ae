package invasion

// frontier is a min-heap of throat ranks implementing heap.Interface.
// The same rank may be pushed once per endpoint of its throat; the
// duplicate is cheaper to discard at pop time than to filter on insert,
// so the heap holds a multiset and pops collapse runs of equal ranks.
type frontier []int

// Len reports the number of queued ranks.
func (f frontier) Len() int { return len(f) }

// Less orders ranks ascending, so frontier[0] is always the minimum.
func (f frontier) Less(i, j int) bool { return f[i] < f[j] }

// Swap exchanges two queued ranks.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x to the heap; called by heap.Push with an int rank.
func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(int))
}

// Pop removes and returns the last element; called by heap.Pop after it
// has swapped the minimum to the end.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	r := old[n-1]
	*f = old[:n-1]

	return r
}
