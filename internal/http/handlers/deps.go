package handlers

import (
	"mercadito/internal/repos"
	"mercadito/internal/services"
	"mercadito/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	CategoryHandler *CategoryHandler
	SellerHandler   *SellerHandler
	PaymentHandler  *PaymentHandler
	ReviewHandler   *ReviewHandler
	PurchaseHandler *PurchaseHandler
	AdminHandler    *AdminHandler
}

// NewDeps wires repositories and services over whichever backend the store
// was opened with; nothing below this point knows which one is active.
func NewDeps(st *store.Store) *Deps {
	productRepo := repos.NewProductRepo(st.Products)
	categoryRepo := repos.NewCategoryRepo(st.Categories)
	sellerRepo := repos.NewSellerRepo(st.Sellers)
	imageRepo := repos.NewImageRepo(st.Images)
	priceRepo := repos.NewPriceHistoryRepo(st.PriceHistory)
	paymentRepo := repos.NewPaymentMethodRepo(st.PaymentMethods)
	commentRepo := repos.NewCommentRepo(st.Comments)
	purchaseRepo := repos.NewPurchaseRepo(st.Purchases)

	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, sellerRepo, imageRepo, priceRepo)
	reviewSvc := services.NewReviewService(commentRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, productRepo)
	purchaseSvc := services.NewPurchaseService(productRepo, purchaseRepo)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		SellerHandler:   &SellerHandler{Catalog: catalogSvc},
		PaymentHandler:  &PaymentHandler{Payments: paymentSvc},
		ReviewHandler:   &ReviewHandler{Reviews: reviewSvc},
		PurchaseHandler: &PurchaseHandler{Purchase: purchaseSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc},
	}
}
