package colorspace

import "sync/atomic"

// Handle holds the current Profile for an editing session. Pipeline runs
// take a Snapshot and work from that; edits build a new Profile and swap
// it in, so a run never sees a profile change underneath it.
type Handle struct {
	current atomic.Pointer[versionedProfile]
}

type versionedProfile struct {
	profile Profile
	version uint64
}

func NewHandle(p Profile) *Handle {
	h := &Handle{}
	h.current.Store(&versionedProfile{profile: p})
	return h
}

// Snapshot returns the current profile, and its version. The version
// starts at zero and goes up by one with each Update.
func (h *Handle) Snapshot() (Profile, uint64) {
	vp := h.current.Load()
	return vp.profile, vp.version
}

// Update applies `edit` to the current profile and publishes the result.
// If another Update got in first, `edit` is run again on the newer
// profile. Returns the new version.
func (h *Handle) Update(edit func(Profile) Profile) uint64 {
	for {
		old := h.current.Load()
		next := &versionedProfile{profile: edit(old.profile), version: old.version + 1}
		if h.current.CompareAndSwap(old, next) {
			return next.version
		}
	}
}

// SetTemp publishes a copy of the current profile with a new white balance.
func (h *Handle) SetTemp(temp, tint float64) uint64 {
	return h.Update(func(p Profile) Profile { return p.WithTemp(temp, tint) })
}
