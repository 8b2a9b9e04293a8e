package lines

import (
	"fmt"
	"maps"
	"slices"
)

// ChangeSet records the identities of lines affected by an edit.
//
// A line which has been removed is reported as removed only, even if the
// same edit inserted or edited it before. The zero value is an empty change
// set ready to use.
type ChangeSet struct {
	inserted map[LineID]struct{}
	removed  map[LineID]struct{}
	edited   map[LineID]struct{}
}

// NewChangeSet creates an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// MarkInserted records id as a newly inserted line.
func (cs *ChangeSet) MarkInserted(id LineID) {
	if _, gone := cs.removed[id]; gone {
		return
	}
	cs.inserted = add(cs.inserted, id)
}

// MarkEdited records id as a line whose length or content changed.
func (cs *ChangeSet) MarkEdited(id LineID) {
	if _, gone := cs.removed[id]; gone {
		return
	}
	cs.edited = add(cs.edited, id)
}

// MarkRemoved records id as a removed line.
func (cs *ChangeSet) MarkRemoved(id LineID) {
	delete(cs.inserted, id)
	delete(cs.edited, id)
	cs.removed = add(cs.removed, id)
}

// Union adds all changes of other to cs. Changes of other are considered
// to happen after the changes already in cs.
func (cs *ChangeSet) Union(other *ChangeSet) {
	if other == nil {
		return
	}
	for id := range other.removed {
		cs.MarkRemoved(id)
	}
	for id := range other.inserted {
		cs.MarkInserted(id)
	}
	for id := range other.edited {
		cs.MarkEdited(id)
	}
}

// IsEmpty is true if no line has been touched.
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.inserted) == 0 && len(cs.removed) == 0 && len(cs.edited) == 0
}

// Inserted returns the inserted lines in ascending ID order.
func (cs *ChangeSet) Inserted() []LineID { return sorted(cs.inserted) }

// Removed returns the removed lines in ascending ID order.
func (cs *ChangeSet) Removed() []LineID { return sorted(cs.removed) }

// Edited returns the edited lines in ascending ID order.
func (cs *ChangeSet) Edited() []LineID { return sorted(cs.edited) }

// WasInserted is true if id has been inserted.
func (cs *ChangeSet) WasInserted(id LineID) bool {
	_, ok := cs.inserted[id]
	return ok
}

// WasRemoved is true if id has been removed.
func (cs *ChangeSet) WasRemoved(id LineID) bool {
	_, ok := cs.removed[id]
	return ok
}

// WasEdited is true if id has been edited.
func (cs *ChangeSet) WasEdited(id LineID) bool {
	_, ok := cs.edited[id]
	return ok
}

func (cs *ChangeSet) String() string {
	return fmt.Sprintf("{inserted=%v removed=%v edited=%v}", cs.Inserted(), cs.Removed(), cs.Edited())
}

func add(set map[LineID]struct{}, id LineID) map[LineID]struct{} {
	if set == nil {
		set = make(map[LineID]struct{})
	}
	set[id] = struct{}{}
	return set
}

func sorted(set map[LineID]struct{}) []LineID {
	return slices.Sorted(maps.Keys(set))
}
