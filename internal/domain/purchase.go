package domain

// PurchaseResult is a business outcome, not an error: "product not found"
// and "not enough stock" are expected answers a caller maps to a 4xx, never
// to a 500.
type PurchaseResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Product *Product `json:"product,omitempty"`
}

// Receipt records one successful purchase.
type Receipt struct {
	ID        string  `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	Date      string  `json:"date"`
}
