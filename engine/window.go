// window.go contains the bounded queue of pending n-gram start offsets used
// by the FindAllMatches sweep.

package engine

// window is a fixed-capacity ring of query offsets, oldest first. The sweep
// sizes it to the smaller of maxNgramSize and the query's token count and
// evicts the oldest start once maxNgramSize starts are pending, which bounds
// every n-gram to maxNgramSize words without letting maxNgramSize alone
// drive an allocation.
type window struct {
	starts []int
	head   int
	size   int
}

func newWindow(capacity int) window {
	return window{starts: make([]int, capacity)}
}

func (w *window) len() int {
	return w.size
}

// at returns the i-th pending start, 0 being the oldest.
func (w *window) at(i int) int {
	return w.starts[(w.head+i)%len(w.starts)]
}

func (w *window) push(start int) {
	w.starts[(w.head+w.size)%len(w.starts)] = start
	w.size++
}

func (w *window) popFront() {
	w.head = (w.head + 1) % len(w.starts)
	w.size--
}
