package sortable

// IndexOf returns e's zero-based position among its siblings: the number of
// elements strictly before it.
//
// e must be attached; a detached element has no siblings and reports 0.
func IndexOf(e *Element) int {
	n := 0
	for p := e.Prev(); p != nil; p = p.Prev() {
		n++
	}
	return n
}
