package models

import "strconv"

// Identity tells whether a form mirrors a remote record or describes a new one.
type Identity struct {
	id        int64
	persisted bool
}

// Unsaved is the identity of a form that has never been submitted.
func Unsaved() Identity {
	return Identity{}
}

// Persisted is the identity of a form mirroring the remote record id.
func Persisted(id int64) Identity {
	return Identity{id: id, persisted: true}
}

// ID returns the remote id and whether the identity is persisted.
func (i Identity) ID() (int64, bool) {
	return i.id, i.persisted
}

// IsPersisted reports whether the identity points at a remote record.
func (i Identity) IsPersisted() bool {
	return i.persisted
}

// Is reports whether the identity is persisted as the given id.
func (i Identity) Is(id int64) bool {
	return i.persisted && i.id == id
}

func (i Identity) String() string {
	if !i.persisted {
		return "unsaved"
	}
	return "persisted(" + strconv.FormatInt(i.id, 10) + ")"
}
