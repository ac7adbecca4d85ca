package domain

// Installments describes the financing offer shown next to the price.
type Installments struct {
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// Attribute is a flat name/value descriptor (e.g. "Screen size" / "6.6 in").
type Attribute struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is one selectable option on a configuration axis. Variants sharing
// an AttributeID (COLOR, INTERNAL_MEMORY, ...) form one group.
type Variant struct {
	ID          int64  `json:"id"`
	AttributeID string `json:"attributeId"`
	Value       string `json:"value"`
	Selected    bool   `json:"selected"`
	Available   bool   `json:"available"`
}

type Product struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Brand             string        `json:"brand"`
	Model             string        `json:"model"`
	Condition         string        `json:"condition"` // new | used
	Price             float64       `json:"price"`
	Currency          string        `json:"currency"`
	Installments      *Installments `json:"installments,omitempty"`
	AvailableQuantity int           `json:"availableQuantity"`
	SoldQuantity      int           `json:"soldQuantity"`
	Categories        []int64       `json:"categories"`
	SellerID          int64         `json:"sellerId,omitempty"`
	PaymentMethodIDs  []string      `json:"paymentMethodIds"`
	Attributes        []Attribute   `json:"attributes,omitempty"`
	Variants          []Variant     `json:"variants,omitempty"`
	CreatedAt         string        `json:"createdAt,omitempty"`
	UpdatedAt         string        `json:"updatedAt,omitempty"`
}

// SelectedVariant returns the first variant marked selected on the given
// axis, or nil. Seed data is not guaranteed to have exactly one selected
// entry per group; taking the first keeps the answer deterministic.
func (p *Product) SelectedVariant(attributeID string) *Variant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.AttributeID == attributeID && v.Selected {
			return v
		}
	}
	return nil
}

// ProductDetail is the denormalized product view: the base product overlaid
// with its joined associations and the derived current price.
type ProductDetail struct {
	Product
	Category     *Category    `json:"category,omitempty"`
	Seller       *Seller      `json:"seller,omitempty"`
	Images       []Image      `json:"images"`
	PriceHistory []PriceEntry `json:"priceHistory"`
	CurrentPrice float64      `json:"currentPrice"`
}

// ProductListing is the lighter shape used by category/seller listings.
type ProductListing struct {
	Product
	MainImage    *Image  `json:"mainImage,omitempty"`
	CurrentPrice float64 `json:"currentPrice"`
}
