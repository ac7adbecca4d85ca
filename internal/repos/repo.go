// Package repos layers typed access on top of the store collections. Each
// repository depends only on the Collection contract, so the same code
// serves the flat-file and the relational backend.
package repos

import (
	"context"
	"encoding/json"

	"mercadito/internal/store"
)

// Repo decodes raw collection records into a domain type.
type Repo[T any] struct {
	col store.Collection
}

func decode[T any](rec store.Record) (*T, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func decodeAll[T any](recs []store.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// FindByID returns nil, nil when no record matches; absence is not an error.
func (r *Repo[T]) FindByID(ctx context.Context, id any) (*T, error) {
	rec, err := r.col.Get(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decode[T](rec)
}

func (r *Repo[T]) FindAll(ctx context.Context) ([]T, error) {
	recs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](recs)
}

func (r *Repo[T]) FindBy(ctx context.Context, filters store.Filters) ([]T, error) {
	recs, err := r.col.Find(ctx, filters)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](recs)
}

func (r *Repo[T]) Create(ctx context.Context, rec store.Record) (*T, error) {
	stored, err := r.col.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	return decode[T](stored)
}

// Update merges the patch over the stored record; store.ErrNotFound when
// the id is absent.
func (r *Repo[T]) Update(ctx context.Context, id any, patch store.Record) (*T, error) {
	stored, err := r.col.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return decode[T](stored)
}

func (r *Repo[T]) Delete(ctx context.Context, id any) error {
	return r.col.Delete(ctx, id)
}
