package order

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/model"
)

type Item struct {
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Product   *catalog.Product `json:"product,omitempty"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DisplayName falls back to the product id when the backend did not embed
// a product snapshot.
func (i Item) DisplayName() string {
	if i.Product != nil && i.Product.Name != "" {
		return i.Product.Name
	}
	return "Product #" + strconv.FormatInt(i.ProductID, 10)
}

type Order struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerAddress string          `json:"customer_address"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	CreatedAt       model.Timestamp `json:"created_at"`
	Items           []Item          `json:"items"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Submission is the body POSTed to create an order. Prices go out as JSON
// numbers; the backend rejects quoted decimals.
type Submission struct {
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerAddress string           `json:"customer_address"`
	Items           []SubmissionItem `json:"items"`
}

type SubmissionItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func NewSubmissionItem(productID int64, quantity int, price decimal.Decimal) SubmissionItem {
	return SubmissionItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price.InexactFloat64(),
	}
}
