package clients

import (
	"context"
	"net/url"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

// ListProducts fetches GET /api/products/. Only the set fields of q are sent.
func (cc *CatalogClient) ListProducts(ctx context.Context, q catalog.Query) ([]catalog.Product, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.MinPrice.Valid {
		params.Set("min_price", q.MinPrice.Decimal.String())
	}
	if q.MaxPrice.Valid {
		params.Set("max_price", q.MaxPrice.Decimal.String())
	}
	if q.Sort != catalog.SortDefault {
		params.Set("sort_by", string(q.Sort))
	}

	products := []catalog.Product{}
	if err := cc.c.getJSON(ctx, "list products", "/api/products/", params, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (cc *CatalogClient) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	if err := cc.c.getJSON(ctx, "get product", "/api/products/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
