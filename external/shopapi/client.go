package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed client for the storefront backend REST API. The
// backend is the single source of truth for products and the cart; this
// client never caches.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpErrorFromBody(resp.StatusCode, resp.Status, data)
	}
	return data, nil
}

// Products fetches the whole catalog.
func (c *Client) Products(ctx context.Context) ([]ProductRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	var wires []productWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, &ParseError{Reason: "product list", Err: err}
	}
	return productsFromWire(wires)
}

// Product fetches a single catalog record. A missing product surfaces as
// an *HTTPError with Status 404.
func (c *Client) Product(ctx context.Context, productID int64) (ProductRecord, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", productID), nil)
	if err != nil {
		return ProductRecord{}, err
	}
	var wire productWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return ProductRecord{}, &ParseError{Reason: "product", Err: err}
	}
	return wire.toProductRecord()
}

// Search runs the backend substring search over names and descriptions.
func (c *Client) Search(ctx context.Context, query string) ([]ProductRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	var wires []productWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, &ParseError{Reason: "search results", Err: err}
	}
	return productsFromWire(wires)
}

// Cart fetches the current cart snapshot.
func (c *Client) Cart(ctx context.Context) ([]CartLine, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return nil, err
	}
	var wires []cartLineWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, &ParseError{Reason: "cart", Err: err}
	}
	return cartLinesFromWire(wires)
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// AddCartItem adds quantity of a product; the backend merges quantities
// when the product is already in the cart.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) (CartResponse, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		return CartResponse{}, err
	}
	return decodeCartResponse(data)
}

// UpdateCartItem sets the exact quantity of a cart line. The backend
// removes the line when quantity is zero or below.
func (c *Client) UpdateCartItem(ctx context.Context, productID int64, quantity int) (CartResponse, error) {
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/items/%d", productID), updateCartItemRequest{Quantity: quantity})
	if err != nil {
		return CartResponse{}, err
	}
	return decodeCartResponse(data)
}

// RemoveCartItem deletes one cart line.
func (c *Client) RemoveCartItem(ctx context.Context, productID int64) (CartResponse, error) {
	data, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", productID), nil)
	if err != nil {
		return CartResponse{}, err
	}
	return decodeCartResponse(data)
}

// ClearCart empties the whole cart.
func (c *Client) ClearCart(ctx context.Context) (CartResponse, error) {
	data, err := c.do(ctx, http.MethodDelete, "/api/cart", nil)
	if err != nil {
		return CartResponse{}, err
	}
	return decodeCartResponse(data)
}

func decodeCartResponse(data []byte) (CartResponse, error) {
	var wire struct {
		Message *string        `json:"message"`
		Cart    []cartLineWire `json:"cart"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return CartResponse{}, &ParseError{Reason: "cart response", Err: err}
	}
	if wire.Message == nil {
		return CartResponse{}, &ParseError{Reason: "cart response missing message"}
	}
	if wire.Cart == nil {
		return CartResponse{}, &ParseError{Reason: "cart response missing cart"}
	}
	lines, err := cartLinesFromWire(wire.Cart)
	if err != nil {
		return CartResponse{}, err
	}
	return CartResponse{Message: *wire.Message, Cart: lines}, nil
}

// VendorSignup registers a vendor and returns the new vendor id.
func (c *Client) VendorSignup(ctx context.Context, req VendorSignupRequest) (int64, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/vendor-signup", req)
	if err != nil {
		return 0, err
	}
	var wire struct {
		VendorID *int64 `json:"vendor_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return 0, &ParseError{Reason: "vendor signup response", Err: err}
	}
	if wire.VendorID == nil {
		return 0, &ParseError{Reason: "vendor signup response missing vendor_id"}
	}
	return *wire.VendorID, nil
}

// SubmitItem creates a catalog product and returns the new product id.
func (c *Client) SubmitItem(ctx context.Context, req ItemSubmissionRequest) (int64, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/products", req)
	if err != nil {
		return 0, err
	}
	var wire struct {
		ProductID *int64 `json:"product_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return 0, &ParseError{Reason: "item submission response", Err: err}
	}
	if wire.ProductID == nil {
		return 0, &ParseError{Reason: "item submission response missing product_id"}
	}
	return *wire.ProductID, nil
}
