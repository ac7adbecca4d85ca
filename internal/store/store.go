// Package store provides the persistence abstraction: each catalog
// collection is exposed through the same Collection contract whether it is
// backed by a flat JSON file or a relational table. Call sites never branch
// on which backend is active.
package store

import (
	"context"
	"errors"
	"reflect"

	"mercadito/internal/domain"
)

// Record is one row/document of a collection as raw JSON-shaped data.
type Record map[string]any

// Filters selects records whose field equals the filter value, or, when
// the value is a slice, whose field is a member of it. An empty map
// matches everything.
type Filters map[string]any

// ErrNotFound is returned by Update and Delete when no record has the
// requested id. Lookups (Get) signal absence with a nil record instead.
var ErrNotFound = errors.New("record not found")

type Collection interface {
	All(ctx context.Context) ([]Record, error)
	// Get returns nil, nil when no record matches; absence is not an error.
	Get(ctx context.Context, id any) (Record, error)
	Find(ctx context.Context, filters Filters) ([]Record, error)
	// Insert assigns a new id (1 + max existing) unless the record already
	// carries one, stamps createdAt/updatedAt, persists and returns the
	// stored record.
	Insert(ctx context.Context, rec Record) (Record, error)
	// Update merges patch over the existing record, stamps updatedAt and
	// persists. Fails with ErrNotFound when the id is absent.
	Update(ctx context.Context, id any, patch Record) (Record, error)
	Delete(ctx context.Context, id any) error
}

// looseEqual compares two scalar values the way the seed data demands:
// numeric and string forms of the same value are equal.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return domain.IDString(a) == domain.IDString(b)
}

// matches implements the Filters contract against an in-memory record.
func matches(rec Record, filters Filters) bool {
	for field, want := range filters {
		got := rec[field]
		rv := reflect.ValueOf(want)
		if want != nil && rv.Kind() == reflect.Slice {
			member := false
			for i := 0; i < rv.Len(); i++ {
				if looseEqual(got, rv.Index(i).Interface()) {
					member = true
					break
				}
			}
			if !member {
				return false
			}
			continue
		}
		if !looseEqual(got, want) {
			return false
		}
	}
	return true
}

// nextID computes the identity for a freshly inserted record: one more
// than the highest numeric id present, or 1 for an empty collection.
func nextID(recs []Record) int64 {
	var max int64
	for _, rec := range recs {
		switch v := rec["id"].(type) {
		case float64:
			if int64(v) > max {
				max = int64(v)
			}
		case int64:
			if v > max {
				max = v
			}
		case int:
			if int64(v) > max {
				max = int64(v)
			}
		}
	}
	return max + 1
}
