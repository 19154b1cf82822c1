package photoview

// The slider keeps two indexes. The public index is what hosts see: always
// in [0, count). The virtual index is an unbounded counter that the screen
// offset is computed from, so that paging across a loop boundary scrolls
// continuously instead of jumping back to offset zero. Under non-loop mode
// the two coincide.

// advance maps a navigation request onto the next (virtual, public) index
// pair.
//
// Non-loop: the request is clamped to [0, count-1] and both indexes equal it.
//
// Loop: the virtual index moves by the requested delta and the public index
// wraps one step — a request of -1 lands on count-1 and a request of count
// lands on 0. Requests more than one step past either boundary are outside
// the contract (navigation is always ±1 or an absolute in-bounds jump) and
// are not given a multi-wrap meaning.
func advance(virtual, current, requested, count int, loop bool) (nextVirtual, nextPublic int) {
	if !loop {
		next := clampInt(requested, 0, count-1)
		return next, next
	}
	nextVirtual = virtual + (requested - current)
	switch {
	case requested < 0:
		nextPublic = count - 1
	case requested >= count:
		nextPublic = 0
	default:
		nextPublic = requested
	}
	return nextVirtual, nextPublic
}

// wrapIndex reduces any integer into [0, count) by true modulo. Used when a
// window position needs the photo at an out-of-range neighbor index.
func wrapIndex(i, count int) int {
	m := i % count
	if m < 0 {
		m += count
	}
	return m
}
