// Package client is the storefront's consumer side of the catalog API:
// fetch and query composition for the shop pages, and the admin form's
// save flow. Every operation is an explicit call returning a result or an
// error; presentation stays with the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("product not found")

// CatalogClient talks to the catalog REST API.
type CatalogClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// SetToken installs the Bearer token used on mutating calls.
func (c *CatalogClient) SetToken(token string) {
	c.token = token
}

// List fetches products, optionally narrowed by category and ordered by
// sort. Empty strings leave the server defaults in place.
func (c *CatalogClient) List(ctx context.Context, category, sort string) ([]models.Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	endpoint := c.baseURL + "/api/products"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := c.do(req, http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches a single product, returning ErrNotFound when the id does
// not resolve.
func (c *CatalogClient) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/"+id.Hex(), nil)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := c.do(req, http.StatusOK, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (c *CatalogClient) Create(ctx context.Context, product models.Product) (models.Product, error) {
	return c.send(ctx, http.MethodPost, c.baseURL+"/api/products", product, http.StatusCreated)
}

func (c *CatalogClient) Update(ctx context.Context, product models.Product) (models.Product, error) {
	return c.send(ctx, http.MethodPut, c.baseURL+"/api/products/"+product.ID.Hex(), product, http.StatusOK)
}

func (c *CatalogClient) Delete(ctx context.Context, id primitive.ObjectID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/products/"+id.Hex(), nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

// Save creates the product when it has no identifier yet, and updates it
// otherwise. This is the admin form's submit.
func (c *CatalogClient) Save(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ID.IsZero() {
		return c.Create(ctx, product)
	}
	return c.Update(ctx, product)
}

func (c *CatalogClient) send(ctx context.Context, method, endpoint string, product models.Product, want int) (models.Product, error) {
	body, err := json.Marshal(product)
	if err != nil {
		return models.Product{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return models.Product{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var saved models.Product
	if err := c.do(req, want, &saved); err != nil {
		return models.Product{}, err
	}
	return saved, nil
}

func (c *CatalogClient) do(req *http.Request, want int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != want {
		return fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, req.Method, req.URL.Path)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
