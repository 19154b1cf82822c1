package photoview

// WindowItem is one photo mounted by the adjacency window, with the slot it
// occupies on the virtual strip. Its screen offset is slot width times
// Position; the slot width is viewport width plus the page gutter.
type WindowItem struct {
	Photo    Photo
	Index    int // public index of the photo
	Position int // virtual-strip slot the photo is laid out at
}

// adjacencyWindow returns the photos that must be mounted around the current
// index: previous, current, next. Only this constant-size window exists at a
// time, however long the photo list is.
//
// Positions derive from the virtual index so that crossing a loop boundary
// recycles the neighbor into the slot directly adjacent on screen. In
// non-loop mode the window shrinks at the ends, and at photo 0 positions
// start at the current index so no phantom slot sits left of the first
// photo.
func adjacencyWindow(photos []Photo, publicIndex, virtualIndex int, loop bool) []WindowItem {
	count := len(photos)
	if count == 0 {
		return nil
	}

	items := make([]WindowItem, 0, 3)
	if loop {
		for offset := -1; offset <= 1; offset++ {
			idx := wrapIndex(publicIndex+offset, count)
			items = append(items, WindowItem{
				Photo:    photos[idx],
				Index:    idx,
				Position: virtualIndex + offset,
			})
		}
		return items
	}

	lo := publicIndex - 1
	if lo < 0 {
		lo = 0
	}
	hi := publicIndex + 1
	if hi > count-1 {
		hi = count - 1
	}
	for idx := lo; idx <= hi; idx++ {
		items = append(items, WindowItem{
			Photo:    photos[idx],
			Index:    idx,
			Position: idx,
		})
	}
	return items
}
