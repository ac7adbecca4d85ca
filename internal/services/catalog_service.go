package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"mercadito/internal/domain"
	"mercadito/internal/repos"
	"mercadito/internal/store"
)

// CatalogService composes the catalog repositories into the denormalized
// product views the API serves.
type CatalogService struct {
	Products   *repos.ProductRepo
	Categories *repos.CategoryRepo
	Sellers    *repos.SellerRepo
	Images     *repos.ImageRepo
	Prices     *repos.PriceHistoryRepo
}

func NewCatalogService(
	products *repos.ProductRepo,
	categories *repos.CategoryRepo,
	sellers *repos.SellerRepo,
	images *repos.ImageRepo,
	prices *repos.PriceHistoryRepo,
) *CatalogService {
	return &CatalogService{
		Products:   products,
		Categories: categories,
		Sellers:    sellers,
		Images:     images,
		Prices:     prices,
	}
}

// GetProduct returns nil when the id is unknown; absence is a valid
// answer, not an error.
func (s *CatalogService) GetProduct(ctx context.Context, id any) (*domain.Product, error) {
	return s.Products.FindByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Products.FindAll(ctx)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.Products.Search(ctx, query)
}

func (s *CatalogService) GetSeller(ctx context.Context, id any) (*domain.Seller, error) {
	return s.Sellers.FindByID(ctx, id)
}

// currentPrice derives the authoritative price from history entries sorted
// most-recent-first, falling back to the product's base price when no
// entry is marked current.
func currentPrice(p *domain.Product, history []domain.PriceEntry) float64 {
	for _, e := range history {
		if e.Type == "current" {
			return e.Price
		}
	}
	return p.Price
}

// Detail assembles the full product view: base product joined with its
// category, seller, images and price history. The four association reads
// run concurrently; per-product correctness is the contract, not batch
// efficiency.
func (s *CatalogService) Detail(ctx context.Context, id any) (*domain.ProductDetail, error) {
	p, err := s.Products.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	var (
		category *domain.Category
		seller   *domain.Seller
		images   []domain.Image
		history  []domain.PriceEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(p.Categories) == 0 {
			return nil
		}
		var err error
		category, err = s.Categories.FindByID(gctx, p.Categories[0])
		return err
	})
	g.Go(func() error {
		if p.SellerID == 0 {
			return nil
		}
		var err error
		seller, err = s.Sellers.FindByID(gctx, p.SellerID)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = s.Images.ForProduct(gctx, p.ID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.Prices.ForProduct(gctx, p.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date > history[j].Date })

	return &domain.ProductDetail{
		Product:      *p,
		Category:     category,
		Seller:       seller,
		Images:       images,
		PriceHistory: history,
		CurrentPrice: currentPrice(p, history),
	}, nil
}

// listing attaches mainImage and currentPrice to one product.
func (s *CatalogService) listing(ctx context.Context, p domain.Product) (domain.ProductListing, error) {
	l := domain.ProductListing{Product: p}

	var images []domain.Image
	var currents []domain.PriceEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		images, err = s.Images.ForProduct(gctx, p.ID)
		return err
	})
	g.Go(func() error {
		var err error
		currents, err = s.Prices.CurrentFor(gctx, p.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return l, err
	}

	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	for i := range images {
		if images[i].IsMain {
			l.MainImage = &images[i]
			break
		}
	}
	if l.MainImage == nil && len(images) > 0 {
		l.MainImage = &images[0]
	}

	sort.SliceStable(currents, func(i, j int) bool { return currents[i].Date > currents[j].Date })
	l.CurrentPrice = currentPrice(&p, currents)
	return l, nil
}

func (s *CatalogService) listings(ctx context.Context, products []domain.Product) ([]domain.ProductListing, error) {
	out := make([]domain.ProductListing, len(products))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			l, err := s.listing(gctx, p)
			if err != nil {
				return err
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCategory returns the listing view for every product in a
// category; the id comparison is loose.
func (s *CatalogService) ListByCategory(ctx context.Context, categoryID any) ([]domain.ProductListing, error) {
	products, err := s.Products.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.listings(ctx, products)
}

func (s *CatalogService) ListBySeller(ctx context.Context, sellerID any) ([]domain.ProductListing, error) {
	products, err := s.Products.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return s.listings(ctx, products)
}

// UpdatePrice sets a product's price and rolls the price history: the
// product row is updated first (a missing product aborts before any
// history mutation), previous current entries are demoted to historical,
// and one new current entry is inserted. Returns the recomposed detail
// view.
func (s *CatalogService) UpdatePrice(ctx context.Context, id any, price float64) (*domain.ProductDetail, error) {
	p, err := s.Products.Update(ctx, id, store.Record{"price": price})
	if err != nil {
		return nil, err
	}

	currents, err := s.Prices.CurrentFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, e := range currents {
		if _, err := s.Prices.Update(ctx, e.ID, store.Record{"type": "historical"}); err != nil {
			return nil, err
		}
	}

	_, err = s.Prices.Create(ctx, store.Record{
		"productId": p.ID,
		"price":     price,
		"currency":  "ARS",
		"date":      time.Now().UTC().Format(time.RFC3339),
		"type":      "current",
	})
	if err != nil {
		return nil, err
	}
	return s.Detail(ctx, p.ID)
}
