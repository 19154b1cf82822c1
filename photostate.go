package photoview

// photoState is the per-photo transform state: zoom scale and rotation in
// degrees. Rotation is stored unbounded; it only wraps visually.
type photoState struct {
	rotate float64
	scale  float64
}

// defaultPhotoState is the state of a photo that was never touched.
var defaultPhotoState = photoState{rotate: 0, scale: 1}

// photoStore holds photoState keyed by photo key. Entries are created lazily
// on first mutation and never deleted individually; a full reset replaces the
// map. Mutations are copy-on-write: the previous snapshot map is never
// written to again, so a held snapshot stays stable.
type photoStore struct {
	m map[string]photoState
}

func newPhotoStore() *photoStore {
	return &photoStore{m: map[string]photoState{}}
}

// get returns the state for key, or the untouched default.
func (p *photoStore) get(key string) photoState {
	if st, ok := p.m[key]; ok {
		return st
	}
	return defaultPhotoState
}

// setRotate overwrites the rotation for key, unclamped.
func (p *photoStore) setRotate(key string, degrees float64) {
	st := p.get(key)
	st.rotate = degrees
	p.put(key, st)
}

// setScale stores the scale for key clamped to [minScale, maxScale].
func (p *photoStore) setScale(key string, scale, minScale, maxScale float64) {
	st := p.get(key)
	st.scale = clamp(scale, minScale, maxScale)
	p.put(key, st)
}

// put installs a new snapshot map containing the updated entry.
func (p *photoStore) put(key string, st photoState) {
	next := make(map[string]photoState, len(p.m)+1)
	for k, v := range p.m {
		next[k] = v
	}
	next[key] = st
	p.m = next
}

// snapshot returns the current map. The returned map is never mutated after
// this call; later mutations install a fresh map.
func (p *photoStore) snapshot() map[string]photoState {
	return p.m
}

// reset drops all entries.
func (p *photoStore) reset() {
	p.m = map[string]photoState{}
}
