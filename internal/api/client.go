// Package api is the thin REST client for the admin backend. One method per
// (resource, verb) pair, single shot, no retry, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/model"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Log:     log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()
		if c.Log != nil {
			c.Log.Warn("backend rejected request",
				zap.String("method", method), zap.String("path", path), zap.Int("status", res.StatusCode))
		}
		return nil, &ServerError{Method: method, Path: path, StatusCode: res.StatusCode, Status: res.Status}
	}
	return res, nil
}

func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	res, err := c.do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return out, nil
}

// remove discards the body; any 2xx counts as success.
func (c *Client) remove(ctx context.Context, path string) error {
	res, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// Products

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	return request[[]model.Product](ctx, c, http.MethodGet, "/products", nil)
}

func (c *Client) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return request[model.Product](ctx, c, http.MethodPost, "/products", p)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch map[string]any) (model.Product, error) {
	return request[model.Product](ctx, c, http.MethodPatch, "/products/"+id, patch)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.remove(ctx, "/products/"+id)
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	return request[[]model.Category](ctx, c, http.MethodGet, "/categories", nil)
}

func (c *Client) CreateCategory(ctx context.Context, cat model.Category) (model.Category, error) {
	return request[model.Category](ctx, c, http.MethodPost, "/categories", cat)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, patch map[string]any) (model.Category, error) {
	return request[model.Category](ctx, c, http.MethodPatch, "/categories/"+id, patch)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.remove(ctx, "/categories/"+id)
}

// Customers

func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return request[[]model.Customer](ctx, c, http.MethodGet, "/customers", nil)
}

func (c *Client) CreateCustomer(ctx context.Context, cu model.Customer) (model.Customer, error) {
	return request[model.Customer](ctx, c, http.MethodPost, "/customers", cu)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, patch map[string]any) (model.Customer, error) {
	return request[model.Customer](ctx, c, http.MethodPatch, "/customers/"+id, patch)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.remove(ctx, "/customers/"+id)
}

// Orders

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	return request[[]model.Order](ctx, c, http.MethodGet, "/orders", nil)
}

func (c *Client) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	return request[model.Order](ctx, c, http.MethodPost, "/orders", o)
}

func (c *Client) UpdateOrder(ctx context.Context, id string, patch map[string]any) (model.Order, error) {
	return request[model.Order](ctx, c, http.MethodPatch, "/orders/"+id, patch)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.remove(ctx, "/orders/"+id)
}

// Reviews (read/delete only, the backend exposes no write routes)

func (c *Client) ListReviews(ctx context.Context) ([]model.Review, error) {
	return request[[]model.Review](ctx, c, http.MethodGet, "/reviews", nil)
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.remove(ctx, "/reviews/"+id)
}
