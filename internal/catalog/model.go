package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/model"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   model.Timestamp `json:"created_at"`
}

func (p Product) InStock() bool { return p.Stock > 0 }

func (p Product) StockLabel() string {
	if !p.InStock() {
		return "Out of stock"
	}
	return strconv.Itoa(p.Stock) + " in stock"
}
