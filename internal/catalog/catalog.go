// Package catalog holds the compiled-in global stock database and the
// read-only lookups over it. The catalog is loaded once at process start,
// never changes, and is safe to share across any number of readers.
package catalog

import (
	"strings"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// Catalog is the immutable in-memory list of security records. Duplicate
// symbols are tolerated and preserved: lookups match over the full list, not
// a unique index, and return every matching record.
type Catalog struct {
	records []model.SecurityRecord
}

// Load returns the compiled-in catalog. It is total: no I/O, no error
// conditions, always non-empty.
func Load() *Catalog {
	return &Catalog{records: globalStockDatabase}
}

// New creates a catalog over the given records. Load is the production entry
// point; New exists for hosts and tests that supply their own universe.
func New(records []model.SecurityRecord) *Catalog {
	return &Catalog{records: records}
}

// Records returns a copy of all catalog records in load order.
func (c *Catalog) Records() []model.SecurityRecord {
	out := make([]model.SecurityRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ByRegion returns all records whose region matches exactly.
func (c *Catalog) ByRegion(region string) []model.SecurityRecord {
	return c.filter(func(r model.SecurityRecord) bool {
		return r.Region == region
	})
}

// ByCountry returns all records whose country matches exactly.
func (c *Catalog) ByCountry(country string) []model.SecurityRecord {
	return c.filter(func(r model.SecurityRecord) bool {
		return r.Country == country
	})
}

// BySector returns all records whose sector matches exactly.
func (c *Catalog) BySector(sector string) []model.SecurityRecord {
	return c.filter(func(r model.SecurityRecord) bool {
		return r.Sector == sector
	})
}

// Search returns all records whose symbol or name contains the query,
// case-insensitively.
func (c *Catalog) Search(query string) []model.SecurityRecord {
	q := strings.ToLower(query)
	return c.filter(func(r model.SecurityRecord) bool {
		return strings.Contains(strings.ToLower(r.Symbol), q) ||
			strings.Contains(strings.ToLower(r.Name), q)
	})
}

// filter returns the records satisfying pred, preserving load order.
// An empty result is a valid, non-error outcome.
func (c *Catalog) filter(pred func(model.SecurityRecord) bool) []model.SecurityRecord {
	matches := []model.SecurityRecord{}
	for _, r := range c.records {
		if pred(r) {
			matches = append(matches, r)
		}
	}
	return matches
}
