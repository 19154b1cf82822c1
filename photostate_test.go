package photoview

import "testing"

func TestPhotoStoreDefault(t *testing.T) {
	store := newPhotoStore()
	st := store.get("untouched")
	if st.scale != 1 || st.rotate != 0 {
		t.Errorf("default state = %+v, want scale 1 rotate 0", st)
	}
	if len(store.snapshot()) != 0 {
		t.Error("reading a key must not create an entry")
	}
}

func TestPhotoStoreSetScaleClamps(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  float64
	}{
		{"within range", 2, 2},
		{"above max", 10, 3},
		{"below min", 0.1, 1},
		{"at max", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newPhotoStore()
			store.setScale("a", tt.scale, 1, 3)
			if got := store.get("a").scale; got != tt.want {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhotoStoreSetRotateUnclamped(t *testing.T) {
	store := newPhotoStore()
	store.setRotate("a", 450)
	if got := store.get("a").rotate; got != 450 {
		t.Errorf("rotate = %v, want 450 (stored unbounded)", got)
	}
	store.setRotate("a", -90)
	if got := store.get("a").rotate; got != -90 {
		t.Errorf("rotate = %v, want -90 (unconditional overwrite)", got)
	}
}

func TestPhotoStoreRotatePreservesScale(t *testing.T) {
	store := newPhotoStore()
	store.setScale("a", 2, 1, 6)
	store.setRotate("a", 90)
	st := store.get("a")
	if st.scale != 2 || st.rotate != 90 {
		t.Errorf("state = %+v, want scale 2 rotate 90", st)
	}
}

func TestPhotoStoreCopyOnWrite(t *testing.T) {
	store := newPhotoStore()
	store.setScale("a", 2, 1, 6)

	before := store.snapshot()
	store.setScale("a", 3, 1, 6)

	if before["a"].scale != 2 {
		t.Error("held snapshot was mutated in place")
	}
	if store.get("a").scale != 3 {
		t.Error("new snapshot missing the update")
	}
}

func TestPhotoStoreReset(t *testing.T) {
	store := newPhotoStore()
	store.setScale("a", 2, 1, 6)
	store.setRotate("b", 90)
	store.reset()
	if len(store.snapshot()) != 0 {
		t.Errorf("got %d entries after reset, want 0", len(store.snapshot()))
	}
}
