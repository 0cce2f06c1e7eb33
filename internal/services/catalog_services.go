package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogBackend is the slice of the shop API the catalog needs.
type CatalogBackend interface {
	Products(ctx context.Context) ([]shopapi.ProductRecord, error)
	Product(ctx context.Context, productID int64) (shopapi.ProductRecord, error)
	Search(ctx context.Context, query string) ([]shopapi.ProductRecord, error)
}

// CatalogService maps backend catalog records into display products and
// keeps customer comments. The backend knows nothing about images or
// reviews, so both are filled in here.
type CatalogService struct {
	api CatalogBackend
	log *zap.Logger

	mu       sync.Mutex
	comments map[string][]model.Comment
}

func NewCatalogService(api CatalogBackend, log *zap.Logger) *CatalogService {
	return &CatalogService{
		api:      api,
		log:      log,
		comments: make(map[string][]model.Comment),
	}
}

var browseCategories = []model.CategoryInfo{
	{ID: "dog", Name: "Dogs", Href: "/products?category=dog"},
	{ID: "cat", Name: "Cats", Href: "/products?category=cat"},
	{ID: "bird", Name: "Birds", Href: "/products?category=bird"},
	{ID: "rodent", Name: "Rodents", Href: "/products?category=rodent"},
	{ID: "fish", Name: "Fish", Href: "/products?category=fish"},
	{ID: "other", Name: "Other", Href: "/products?category=other"},
}

// Categories returns the fixed browse categories.
func (s *CatalogService) Categories() []model.CategoryInfo {
	out := make([]model.CategoryInfo, len(browseCategories))
	copy(out, browseCategories)
	return out
}

func ValidCategory(id string) bool {
	for _, c := range browseCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *CatalogService) mapRecord(rec shopapi.ProductRecord) model.Product {
	return model.Product{
		ID:          strconv.FormatInt(rec.ProductID, 10),
		Name:        rec.ItemName,
		Price:       rec.Price,
		Category:    rec.Category,
		Description: rec.Description,
		Image:       "https://placehold.co/600x400.png?text=" + url.QueryEscape(rec.ItemName),
		ImageHint:   rec.ItemName,
		Comments:    []model.Comment{},
		Shop:        &model.Shop{ID: "s1", Name: "Heyvan Kala Partner"},
	}
}

// List returns the catalog, optionally narrowed to one category and a
// case-insensitive name term.
func (s *CatalogService) List(ctx context.Context, category, term string) ([]model.Product, error) {
	records, err := s.api.Products(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		p := s.mapRecord(rec)
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Get returns one product enriched with its stored comments. A missing
// product yields ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (model.Product, error) {
	productID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return model.Product{}, ErrProductNotFound
	}

	rec, err := s.api.Product(ctx, productID)
	if err != nil {
		var httpErr *shopapi.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == 404 {
			return model.Product{}, ErrProductNotFound
		}
		return model.Product{}, err
	}

	p := s.mapRecord(rec)
	p.Comments = s.Comments(id)
	if len(p.Comments) > 0 {
		sum := 0
		for _, c := range p.Comments {
			sum += c.Rating
		}
		p.Rating = float64(sum) / float64(len(p.Comments))
	}
	return p, nil
}

// Search implements the product half of the search page.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Product, error) {
	records, err := s.api.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, s.mapRecord(rec))
	}
	return products, nil
}

// TopProducts returns the first n catalog products for the home page.
func (s *CatalogService) TopProducts(ctx context.Context, n int) ([]model.Product, error) {
	products, err := s.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	if len(products) > n {
		products = products[:n]
	}
	return products, nil
}

// AddComment validates and stores a customer comment for a product.
func (s *CatalogService) AddComment(productID, user, text string, rating int) (model.Comment, error) {
	if strings.TrimSpace(user) == "" {
		return model.Comment{}, &ValidationError{Field: "user", Message: "name is required"}
	}
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, &ValidationError{Field: "text", Message: "comment text is required"}
	}
	if rating < 1 || rating > 5 {
		return model.Comment{}, &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}

	comment := model.Comment{
		ID:     uuid.NewString(),
		User:   strings.TrimSpace(user),
		Text:   strings.TrimSpace(text),
		Rating: rating,
		Date:   time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	s.comments[productID] = append([]model.Comment{comment}, s.comments[productID]...)
	s.mu.Unlock()

	s.log.Info("comment added", zap.String("product_id", productID), zap.Int("rating", rating))
	return comment, nil
}

// Comments returns a product's comments, newest first.
func (s *CatalogService) Comments(productID string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.comments[productID]
	out := make([]model.Comment, len(stored))
	copy(out, stored)
	return out
}
