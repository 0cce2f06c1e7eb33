package vendorai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Recommender suggests vendor names for a search query, ordered from most
// to least relevant. It is an opaque remote function to the storefront:
// callers only see the ordered list or a failure.
type Recommender interface {
	Recommend(ctx context.Context, query string) ([]string, error)
}

// FlowRecommender calls the deployed recommendation flow over HTTP.
type FlowRecommender struct {
	endpoint string
	client   *http.Client
}

func NewFlowRecommender(endpoint string) (*FlowRecommender, error) {
	if endpoint == "" {
		return nil, errors.New("vendor recommendation endpoint not set")
	}
	return &FlowRecommender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type recommendRequest struct {
	SearchQuery string `json:"searchQuery"`
}

type recommendResponse struct {
	VendorRecommendations *[]string `json:"vendorRecommendations"`
}

func (r *FlowRecommender) Recommend(ctx context.Context, query string) ([]string, error) {
	b, err := json.Marshal(recommendRequest{SearchQuery: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vendor recommendation service error: %s", resp.Status)
	}

	var out recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.VendorRecommendations == nil {
		return nil, errors.New("vendor recommendation response missing vendorRecommendations")
	}
	return *out.VendorRecommendations, nil
}
