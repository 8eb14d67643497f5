package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type productView struct {
	catalog.Product
	InStock    bool   `json:"inStock"`
	StockLabel string `json:"stockLabel"`
}

func newProductView(p catalog.Product) productView {
	return productView{Product: p, InStock: p.InStock(), StockLabel: p.StockLabel()}
}

type productPage struct {
	Items      []productView `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
	Categories []string      `json:"categories"`
	Sequence   uint64        `json:"sequence,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func newProductPage(res catalog.Result) productPage {
	items := make([]productView, 0, len(res.Items))
	for _, p := range res.Items {
		items = append(items, newProductView(p))
	}
	categories := res.Categories
	if categories == nil {
		categories = []string{}
	}
	return productPage{
		Items:      items,
		Page:       res.Page.Page,
		PageSize:   res.PageSize,
		TotalItems: res.TotalItems,
		TotalPages: res.TotalPages,
		Categories: categories,
		Sequence:   res.Sequence,
	}
}

type cartLineView struct {
	Product  productView     `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type cartView struct {
	Lines      []cartLineView  `json:"lines"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func newCartView(c cart.View) cartView {
	lines := c.Lines()
	out := cartView{
		Lines:      make([]cartLineView, 0, len(lines)),
		TotalItems: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, cartLineView{
			Product:  newProductView(l.Product),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return out
}

type orderItemView struct {
	order.Item
	Name     string          `json:"name"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type orderSummary struct {
	order.Order
	StatusLabel string          `json:"statusLabel"`
	ItemCount   int             `json:"itemCount"`
	Items       []orderItemView `json:"items"`
}

type orderDetail struct {
	orderSummary
	Timeline []order.Step `json:"timeline"`
}

func newOrderSummary(o order.Order) orderSummary {
	items := make([]orderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemView{Item: it, Name: it.DisplayName(), Subtotal: it.Subtotal()})
	}
	return orderSummary{
		Order:       o,
		StatusLabel: o.Status.Label(),
		ItemCount:   o.ItemCount(),
		Items:       items,
	}
}

func newOrderDetail(o order.Order) orderDetail {
	return orderDetail{orderSummary: newOrderSummary(o), Timeline: o.Timeline()}
}
