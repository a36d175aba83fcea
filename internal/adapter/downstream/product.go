package downstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// ProductClient calls the product service. Products are passed through as raw JSON.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

func (p *ProductClient) List(ctx context.Context, req model.PageQuery) (*dto.Page[json.RawMessage], error) {
	return fetchPage[json.RawMessage](ctx, p.c, req)
}

func (p *ProductClient) Get(ctx context.Context, productID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := p.c.do(ctx, call{method: http.MethodGet, path: []string{id(productID)}, entity: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductClient) Create(ctx context.Context, product json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := p.c.do(ctx, call{method: http.MethodPost, body: product, entity: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the product; the response body is ignored.
func (p *ProductClient) Update(ctx context.Context, productID int64, product json.RawMessage) error {
	return p.c.do(ctx, call{method: http.MethodPut, path: []string{id(productID)}, body: product, entity: true}, nil)
}

func (p *ProductClient) Delete(ctx context.Context, productID int64) error {
	return p.c.do(ctx, call{method: http.MethodDelete, path: []string{id(productID)}, entity: true}, nil)
}

func (p *ProductClient) UpdateStock(ctx context.Context, productID, quantity int64) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("quantity", strconv.FormatInt(quantity, 10))

	var out json.RawMessage
	if err := p.c.do(ctx, call{method: http.MethodPatch, path: []string{id(productID), "stock"}, query: query, entity: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Total asks the dedicated summary endpoint for the product count.
func (p *ProductClient) Total(ctx context.Context) (int64, error) {
	var total int64
	if err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"totalproducts"}}, &total); err != nil {
		return 0, err
	}
	return total, nil
}
