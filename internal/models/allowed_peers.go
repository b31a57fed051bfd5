package models

// AllowedPeers is the set of user ids a viewer may exchange messages with.
// Unrestricted is a sentinel for admin viewers: callers must branch on it and
// never try to enumerate "everyone".
type AllowedPeers struct {
	Unrestricted bool
	IDs          map[uint]struct{}
}

func NewAllowedPeers() *AllowedPeers {
	return &AllowedPeers{IDs: make(map[uint]struct{})}
}

func UnrestrictedPeers() *AllowedPeers {
	return &AllowedPeers{Unrestricted: true}
}

func (ap *AllowedPeers) Add(id uint) {
	ap.IDs[id] = struct{}{}
}

func (ap *AllowedPeers) Remove(id uint) {
	delete(ap.IDs, id)
}

func (ap *AllowedPeers) Contains(id uint) bool {
	if ap.Unrestricted {
		return true
	}
	_, ok := ap.IDs[id]
	return ok
}
