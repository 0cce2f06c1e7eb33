package model

// Product is the canonical catalog item used across the storefront.
// Price is always an integer amount of the smallest currency unit;
// display strings are produced at the view boundary only.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	ImageHint   string    `json:"imageHint,omitempty"`
	Rating      float64   `json:"rating"`
	Comments    []Comment `json:"comments"`
	Shop        *Shop     `json:"shop,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
}

// Shop is the vendor a product is sold by.
type Shop struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	LogoHint string `json:"logoHint,omitempty"`
}

// Comment is a customer review attached to a product.
type Comment struct {
	ID         string `json:"id"`
	User       string `json:"user"`
	Avatar     string `json:"avatar,omitempty"`
	AvatarHint string `json:"avatarHint,omitempty"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Date       string `json:"date"`
}

// CategoryInfo describes one of the fixed browse categories.
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}
