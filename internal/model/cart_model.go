package model

// CartItem is the display-shaped cart line held in UI state. It is
// derived from the backend cart snapshot and rebuilt wholesale on every
// successful cart round trip; it is never persisted as-is.
type CartItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image"`
	ImageHint   string `json:"imageHint,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// CartLineView is a cart line with its rendered prices.
type CartLineView struct {
	CartItem
	Subtotal         int64  `json:"subtotal"`
	UnitPriceDisplay string `json:"unit_price_display"`
	SubtotalDisplay  string `json:"subtotal_display"`
}

// CartView is returned by the cart page and after every cart mutation.
type CartView struct {
	Items        []CartLineView `json:"items"`
	ItemCount    int            `json:"item_count"`
	Total        int64          `json:"total"`
	TotalDisplay string         `json:"total_display"`
}
