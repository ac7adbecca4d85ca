package repos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mercadito/internal/domain"
	"mercadito/internal/store"
)

type PurchaseRepo struct {
	Repo[domain.Receipt]
}

func NewPurchaseRepo(col store.Collection) *PurchaseRepo {
	return &PurchaseRepo{Repo[domain.Receipt]{col: col}}
}

// Record appends a receipt for a completed purchase.
func (r *PurchaseRepo) Record(ctx context.Context, p *domain.Product, quantity int) (*domain.Receipt, error) {
	return r.Create(ctx, store.Record{
		"id":        uuid.NewString(),
		"productId": p.ID,
		"quantity":  quantity,
		"unitPrice": p.Price,
		"total":     p.Price * float64(quantity),
		"date":      time.Now().UTC().Format(time.RFC3339),
	})
}
