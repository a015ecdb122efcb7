package cacroix

import "slices"

// ContactSet is the contact cache of a World. It is keyed by body pair and
// iterates in the order pairs were first detected, so solver sweeps are
// reproducible from run to run.
type ContactSet struct {
	entries []*Contact
	index   map[ContactKey]int
}

func NewContactSet() *ContactSet {
	return &ContactSet{
		entries: []*Contact{},
		index:   map[ContactKey]int{},
	}
}

func (set *ContactSet) Count() int {
	return len(set.entries)
}

func (set *ContactSet) Find(key ContactKey) *Contact {
	if i, ok := set.index[key]; ok {
		return set.entries[i]
	}
	return nil
}

// Insert stores con under its key. A contact already stored for the same pair
// is replaced in place and keeps its position in the iteration order.
func (set *ContactSet) Insert(con *Contact) *Contact {
	key := con.Key()
	if i, ok := set.index[key]; ok {
		set.entries[i] = con
		return con
	}

	set.index[key] = len(set.entries)
	set.entries = append(set.entries, con)
	return con
}

// Remove deletes the contact for key and returns it, or nil if there was none.
func (set *ContactSet) Remove(key ContactKey) *Contact {
	i, ok := set.index[key]
	if !ok {
		return nil
	}

	con := set.entries[i]
	set.entries = slices.Delete(set.entries, i, i+1)
	delete(set.index, key)
	set.reindex(i)
	return con
}

func (set *ContactSet) Each(f func(*Contact)) {
	for _, con := range set.entries {
		f(con)
	}
}

// Filter keeps the contacts for which f returns true.
func (set *ContactSet) Filter(f func(*Contact) bool) {
	kept := set.entries[:0]
	for _, con := range set.entries {
		if f(con) {
			kept = append(kept, con)
		} else {
			delete(set.index, con.Key())
		}
	}
	clear(set.entries[len(kept):])
	set.entries = kept
	set.reindex(0)
}

func (set *ContactSet) reindex(from int) {
	for i := from; i < len(set.entries); i++ {
		set.index[set.entries[i].Key()] = i
	}
}
