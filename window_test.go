package photoview

import "testing"

func testPhotos(n int) []Photo {
	photos := make([]Photo, n)
	for i := range photos {
		photos[i] = Photo{Key: string(rune('a' + i))}
	}
	return photos
}

// --- Loop mode ---

func TestAdjacencyWindowLoopMiddle(t *testing.T) {
	photos := testPhotos(5)
	items := adjacencyWindow(photos, 2, 2, true)

	wantKeys := []string{"b", "c", "d"}
	wantPos := []int{1, 2, 3}
	checkWindow(t, items, wantKeys, wantPos)
}

func TestAdjacencyWindowLoopAtStart(t *testing.T) {
	// At photo 0 the previous neighbor is the last photo, recycled into the
	// slot directly left of the current one.
	photos := testPhotos(5)
	items := adjacencyWindow(photos, 0, 0, true)

	checkWindow(t, items, []string{"e", "a", "b"}, []int{-1, 0, 1})
}

func TestAdjacencyWindowLoopAtEnd(t *testing.T) {
	photos := testPhotos(5)
	items := adjacencyWindow(photos, 4, 4, true)

	checkWindow(t, items, []string{"d", "e", "a"}, []int{3, 4, 5})
}

func TestAdjacencyWindowLoopVirtualOffset(t *testing.T) {
	// After paging forward across the boundary the virtual index is ahead of
	// the public index; slots keep following the virtual counter.
	photos := testPhotos(5)
	items := adjacencyWindow(photos, 1, 6, true)

	checkWindow(t, items, []string{"a", "b", "c"}, []int{5, 6, 7})
}

// --- Non-loop mode ---

func TestAdjacencyWindowNonLoop(t *testing.T) {
	photos := testPhotos(5)

	tests := []struct {
		name     string
		index    int
		wantKeys []string
		wantPos  []int
	}{
		{"middle", 2, []string{"b", "c", "d"}, []int{1, 2, 3}},
		{"first", 0, []string{"a", "b"}, []int{0, 1}},
		{"last", 4, []string{"d", "e"}, []int{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := adjacencyWindow(photos, tt.index, tt.index, false)
			checkWindow(t, items, tt.wantKeys, tt.wantPos)
		})
	}
}

func TestAdjacencyWindowNoPhantomSlot(t *testing.T) {
	// Non-loop at photo 0: no slot may sit left of position 0.
	items := adjacencyWindow(testPhotos(5), 0, 0, false)
	for _, item := range items {
		if item.Position < 0 {
			t.Errorf("item %q at position %d, want >= 0", item.Photo.Key, item.Position)
		}
	}
}

// --- Degenerate sizes ---

func TestAdjacencyWindowSmallLists(t *testing.T) {
	if items := adjacencyWindow(nil, 0, 0, false); items != nil {
		t.Errorf("empty list: got %d items, want none", len(items))
	}
	if items := adjacencyWindow(testPhotos(1), 0, 0, false); len(items) != 1 {
		t.Errorf("single photo: got %d items, want 1", len(items))
	}
	if items := adjacencyWindow(testPhotos(2), 0, 0, false); len(items) != 2 {
		t.Errorf("two photos: got %d items, want 2", len(items))
	}
}

func checkWindow(t *testing.T, items []WindowItem, wantKeys []string, wantPos []int) {
	t.Helper()
	if len(items) != len(wantKeys) {
		t.Fatalf("got %d items, want %d", len(items), len(wantKeys))
	}
	for i, item := range items {
		if item.Photo.Key != wantKeys[i] {
			t.Errorf("item %d key = %q, want %q", i, item.Photo.Key, wantKeys[i])
		}
		if item.Position != wantPos[i] {
			t.Errorf("item %d position = %d, want %d", i, item.Position, wantPos[i])
		}
	}
}
