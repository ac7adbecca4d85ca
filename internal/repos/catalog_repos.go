package repos

import (
	"context"

	"mercadito/internal/domain"
	"mercadito/internal/store"
)

type CategoryRepo struct {
	Repo[domain.Category]
}

func NewCategoryRepo(col store.Collection) *CategoryRepo {
	return &CategoryRepo{Repo[domain.Category]{col: col}}
}

type SellerRepo struct {
	Repo[domain.Seller]
}

func NewSellerRepo(col store.Collection) *SellerRepo {
	return &SellerRepo{Repo[domain.Seller]{col: col}}
}

type ImageRepo struct {
	Repo[domain.Image]
}

func NewImageRepo(col store.Collection) *ImageRepo {
	return &ImageRepo{Repo[domain.Image]{col: col}}
}

func (r *ImageRepo) ForProduct(ctx context.Context, productID any) ([]domain.Image, error) {
	return r.FindBy(ctx, store.Filters{"productId": productID})
}

type PriceHistoryRepo struct {
	Repo[domain.PriceEntry]
}

func NewPriceHistoryRepo(col store.Collection) *PriceHistoryRepo {
	return &PriceHistoryRepo{Repo[domain.PriceEntry]{col: col}}
}

func (r *PriceHistoryRepo) ForProduct(ctx context.Context, productID any) ([]domain.PriceEntry, error) {
	return r.FindBy(ctx, store.Filters{"productId": productID})
}

// CurrentFor returns the entries still marked current for a product.
// There should be at most one; the demotion step in the price-update flow
// handles any strays.
func (r *PriceHistoryRepo) CurrentFor(ctx context.Context, productID any) ([]domain.PriceEntry, error) {
	return r.FindBy(ctx, store.Filters{"productId": productID, "type": "current"})
}

type PaymentMethodRepo struct {
	Repo[domain.PaymentMethod]
}

func NewPaymentMethodRepo(col store.Collection) *PaymentMethodRepo {
	return &PaymentMethodRepo{Repo[domain.PaymentMethod]{col: col}}
}

func (r *PaymentMethodRepo) Enabled(ctx context.Context) ([]domain.PaymentMethod, error) {
	return r.FindBy(ctx, store.Filters{"enabled": true})
}
