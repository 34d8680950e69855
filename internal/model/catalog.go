package model

// Catalog is the ordered, load-once list of entries.
type Catalog struct {
	entries []Entry
}

// NewCatalog creates a Catalog from entries. Later duplicates of a code are
// dropped so that Code stays unique.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, 0, len(entries))}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Code] {
			continue
		}
		seen[e.Code] = true
		c.entries = append(c.entries, e)
	}
	return c
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
