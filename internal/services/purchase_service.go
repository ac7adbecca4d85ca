package services

import (
	"context"
	"sync"

	"mercadito/internal/domain"
	applog "mercadito/internal/log"
	"mercadito/internal/repos"
	"mercadito/internal/store"
)

// PurchaseService owns the one write path that touches shared mutable
// state (availableQuantity). Purchases for the same product are serialized
// through a keyed mutex, so two concurrent decrements cannot both read the
// same stock value and lose an update.
type PurchaseService struct {
	Products  *repos.ProductRepo
	Purchases *repos.PurchaseRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPurchaseService(products *repos.ProductRepo, purchases *repos.PurchaseRepo) *PurchaseService {
	return &PurchaseService{
		Products:  products,
		Purchases: purchases,
		locks:     map[string]*sync.Mutex{},
	}
}

func (s *PurchaseService) lockFor(id any) *sync.Mutex {
	key := domain.IDString(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Purchase decrements stock by quantity. A missing product and
// insufficient stock are business outcomes reported in the result, never
// errors; only I/O failures surface as errors. Zero quantity succeeds as a
// stock no-op.
func (s *PurchaseService) Purchase(ctx context.Context, productID any, quantity int) (domain.PurchaseResult, error) {
	l := s.lockFor(productID)
	l.Lock()
	defer l.Unlock()

	p, err := s.Products.FindByID(ctx, productID)
	if err != nil {
		return domain.PurchaseResult{}, err
	}
	if p == nil {
		return domain.PurchaseResult{Success: false, Message: "Product not found"}, nil
	}
	if quantity < 0 || p.AvailableQuantity < quantity {
		return domain.PurchaseResult{Success: false, Message: "Not enough stock"}, nil
	}
	if quantity == 0 {
		return domain.PurchaseResult{Success: true, Product: p}, nil
	}

	updated, err := s.Products.Update(ctx, p.ID, store.Record{
		"availableQuantity": p.AvailableQuantity - quantity,
		"soldQuantity":      p.SoldQuantity + quantity,
	})
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	receipt, err := s.Purchases.Record(ctx, updated, quantity)
	if err != nil {
		return domain.PurchaseResult{}, err
	}
	applog.Audit(nil, "purchase.complete", map[string]any{
		"receipt": receipt.ID, "product": p.ID, "quantity": quantity,
	})
	return domain.PurchaseResult{Success: true, Product: updated}, nil
}
