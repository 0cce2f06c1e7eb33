package search

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/vendorai"
	"github.com/zapzocket/studio/internal/model"
)

// ProductSearcher runs the product half of a search.
type ProductSearcher interface {
	Search(ctx context.Context, query string) ([]model.Product, error)
}

// View is the search page state. The two lookups carry independent
// loading and error flags so a slow or failing vendor recommendation
// never blocks or poisons product results, and vice versa.
type View struct {
	Query           string          `json:"query"`
	Products        []model.Product `json:"products"`
	ProductsLoading bool            `json:"products_loading"`
	ProductsError   string          `json:"products_error,omitempty"`
	Vendors         []string        `json:"vendors"`
	VendorsLoading  bool            `json:"vendors_loading"`
	VendorsError    string          `json:"vendors_error,omitempty"`
}

// Coordinator triggers both lookups for each query. Every new query bumps
// a generation counter and a lookup result is applied only while its
// generation is still current, so a stale response landing after a newer
// query has started can never overwrite the newer state.
type Coordinator struct {
	searcher    ProductSearcher
	recommender vendorai.Recommender
	log         *zap.Logger

	mu   sync.Mutex
	gen  uint64
	view View
}

func NewCoordinator(searcher ProductSearcher, recommender vendorai.Recommender, log *zap.Logger) *Coordinator {
	return &Coordinator{searcher: searcher, recommender: recommender, log: log}
}

// Run starts both lookups for query, waits for them and returns the view
// as of their completion. An empty query resets the view.
func (c *Coordinator) Run(ctx context.Context, query string) View {
	query = strings.TrimSpace(query)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if query == "" {
		c.view = View{}
		c.mu.Unlock()
		return View{}
	}
	c.view = View{Query: query, ProductsLoading: true, VendorsLoading: true}
	c.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		products, err := c.searcher.Search(ctx, query)
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			return // superseded by a newer query
		}
		c.view.ProductsLoading = false
		if err != nil {
			c.log.Warn("product search failed", zap.String("query", query), zap.Error(err))
			c.view.ProductsError = "Product search failed. Please try again."
			return
		}
		c.view.Products = products
	}()

	go func() {
		defer wg.Done()
		vendors, err := c.recommender.Recommend(ctx, query)
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			return
		}
		c.view.VendorsLoading = false
		if err != nil {
			c.log.Warn("vendor recommendation failed", zap.String("query", query), zap.Error(err))
			c.view.VendorsError = "Could not fetch vendor recommendations."
			return
		}
		c.view.Vendors = vendors
	}()

	wg.Wait()
	return c.Current()
}

// Current returns the latest view snapshot.
func (c *Coordinator) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}
