// Package trace mints short diagnostic identifiers for verbose logging
// of page faults and page replacements. Mirrors akita's use
// of rs/xid to mint request IDs in req.go; these ids are a presentation
// detail only, never used as a lookup key by core state.
package trace

import "github.com/rs/xid"

// ID is a short opaque identifier tagging one logged event.
type ID string

// New mints a fresh ID.
func New() ID {
	return ID(xid.New().String())
}

func (id ID) String() string {
	return string(id)
}
