package model

// Article is an editorial pet-care piece shown on the home page and the
// articles section.
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	ImageHint string `json:"imageHint,omitempty"`
	Summary   string `json:"summary"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Category  string `json:"category,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	AvatarHint string  `json:"avatarHint,omitempty"`
	Rating     float64 `json:"rating"`
	Quote      string  `json:"quote"`
}
