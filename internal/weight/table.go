// Package weight estimates the weight of classified produce from a static profile table.
package weight

import (
	"fmt"
	"sort"
)

// Profile is the weight range of one product, in grams.
type Profile struct {
	ID           string
	MinGrams     float64
	TypicalGrams float64
	MaxGrams     float64
}

func (p Profile) validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile id is empty")
	}
	if p.MinGrams <= 0 {
		return fmt.Errorf("profile %q: min_grams must be positive", p.ID)
	}
	if p.MinGrams > p.TypicalGrams || p.TypicalGrams > p.MaxGrams {
		return fmt.Errorf("profile %q: expected min <= typical <= max, got %v/%v/%v",
			p.ID, p.MinGrams, p.TypicalGrams, p.MaxGrams)
	}
	return nil
}

// Table is an immutable product id to profile mapping. It has no writers after
// construction, so concurrent lookups need no locking.
type Table struct {
	profiles map[string]Profile
}

// NewTable validates profiles and builds a table keyed by exact product id.
func NewTable(profiles []Profile) (*Table, error) {
	t := &Table{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.profiles[p.ID]; dup {
			return nil, fmt.Errorf("duplicate profile %q", p.ID)
		}
		t.profiles[p.ID] = p
	}
	return t, nil
}

// DefaultTable returns the built-in produce table.
func DefaultTable() *Table {
	t, err := NewTable(defaultProfiles)
	if err != nil {
		panic(fmt.Sprintf("weight: invalid built-in table: %v", err))
	}
	return t
}

// Lookup returns the profile for productID. A missing key is not an error.
func (t *Table) Lookup(productID string) (Profile, bool) {
	p, ok := t.profiles[productID]
	return p, ok
}

// Len reports the number of profiles.
func (t *Table) Len() int {
	return len(t.profiles)
}

// IDs returns the product ids in lexical order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.profiles))
	for id := range t.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
