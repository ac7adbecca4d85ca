package domain

type Category struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Path      []string `json:"path,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

type Seller struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Reputation      string `json:"reputation"` // green | yellow | orange | red
	Level           int    `json:"level"`
	SalesCount      int    `json:"salesCount"`
	IsOfficialStore bool   `json:"isOfficialStore"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

type PaymentMethod struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // credit_card | debit_card | digital_wallet | cash_payment | bank_transfer
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
	Enabled  bool   `json:"enabled"`
	Priority int    `json:"priority"` // ascending = preferred
}

type Image struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	Order     int    `json:"order"`
	IsMain    bool   `json:"isMain"`
}

// PriceEntry is one point in a product's price history. At most one entry
// per product carries Type "current"; updating a price demotes the previous
// current entry before inserting the new one.
type PriceEntry struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Date      string  `json:"date"` // RFC3339, so lexical order is time order
	Type      string  `json:"type"` // current | historical
}
