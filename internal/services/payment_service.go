package services

import (
	"context"
	"sort"

	"mercadito/internal/domain"
	"mercadito/internal/repos"
)

type PaymentService struct {
	Methods  *repos.PaymentMethodRepo
	Products *repos.ProductRepo
}

func NewPaymentService(methods *repos.PaymentMethodRepo, products *repos.ProductRepo) *PaymentService {
	return &PaymentService{Methods: methods, Products: products}
}

func byPriority(methods []domain.PaymentMethod) []domain.PaymentMethod {
	sort.SliceStable(methods, func(i, j int) bool { return methods[i].Priority < methods[j].Priority })
	return methods
}

// ListEnabled returns every enabled payment method, preferred first.
func (s *PaymentService) ListEnabled(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.Methods.Enabled(ctx)
	if err != nil {
		return nil, err
	}
	return byPriority(methods), nil
}

// ForProduct returns the enabled methods the product accepts, preferred
// first. A nil slice with no error means the product does not exist.
func (s *PaymentService) ForProduct(ctx context.Context, productID any) ([]domain.PaymentMethod, error) {
	p, err := s.Products.FindByID(ctx, productID)
	if err != nil || p == nil {
		return nil, err
	}
	enabled, err := s.Methods.Enabled(ctx)
	if err != nil {
		return nil, err
	}
	accepted := map[string]bool{}
	for _, id := range p.PaymentMethodIDs {
		accepted[id] = true
	}
	out := []domain.PaymentMethod{}
	for _, m := range enabled {
		if accepted[m.ID] {
			out = append(out, m)
		}
	}
	return byPriority(out), nil
}
