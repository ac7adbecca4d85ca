package repos

import (
	"context"
	"strings"

	"mercadito/internal/domain"
	"mercadito/internal/store"
)

type ProductRepo struct {
	Repo[domain.Product]
}

func NewProductRepo(col store.Collection) *ProductRepo {
	return &ProductRepo{Repo[domain.Product]{col: col}}
}

// Search does a case-insensitive substring match against title,
// description, brand and model. An empty or whitespace-only query returns
// an empty set, not the whole catalog: "no query" is not "match everything".
func (r *ProductRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Product{}, nil
	}
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range all {
		for _, field := range []string{p.Title, p.Description, p.Brand, p.Model} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// FindByCategory matches products whose category list contains the id,
// compared loosely so numeric and string ids interoperate.
func (r *ProductRepo) FindByCategory(ctx context.Context, categoryID any) ([]domain.Product, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range all {
		for _, cat := range p.Categories {
			if domain.SameID(cat, categoryID) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// FindBySeller matches on the sellerId foreign reference.
func (r *ProductRepo) FindBySeller(ctx context.Context, sellerID any) ([]domain.Product, error) {
	return r.FindBy(ctx, store.Filters{"sellerId": sellerID})
}
