package clients

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

func (oc *OrderClient) ListOrders(ctx context.Context) ([]order.Order, error) {
	orders := []order.Order{}
	if err := oc.c.getJSON(ctx, "list orders", "/api/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (oc *OrderClient) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := oc.c.getJSON(ctx, "get order", "/api/orders/"+strconv.FormatInt(id, 10), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// SubmitOrder posts a new order once. It is never retried.
func (oc *OrderClient) SubmitOrder(ctx context.Context, s order.Submission) (*order.Order, error) {
	var o order.Order
	if err := oc.c.sendJSON(ctx, "submit order", http.MethodPost, "/api/orders/", s, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
