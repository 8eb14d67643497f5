package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuery = errors.New("invalid product query")

type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return k, nil
	default:
		return SortDefault, fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, s)
	}
}

// Query narrows a product list. Unset price bounds are unbounded.
type Query struct {
	Category string
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	Sort     SortKey
}

func (q Query) Validate() error {
	if q.MinPrice.Valid && q.MinPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w: minimum price cannot be negative", ErrInvalidQuery)
	}
	if q.MaxPrice.Valid && q.MaxPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w: maximum price cannot be negative", ErrInvalidQuery)
	}
	if q.MinPrice.Valid && q.MaxPrice.Valid && q.MinPrice.Decimal.GreaterThan(q.MaxPrice.Decimal) {
		return fmt.Errorf("%w: minimum price cannot be greater than maximum price", ErrInvalidQuery)
	}
	if _, err := ParseSortKey(string(q.Sort)); err != nil {
		return err
	}
	return nil
}

// Filter keeps products matching the category (exact, case-sensitive) and
// the inclusive price range. The input slice is not modified.
func Filter(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice.Valid && p.Price.LessThan(q.MinPrice.Decimal) {
			continue
		}
		if q.MaxPrice.Valid && p.Price.GreaterThan(q.MaxPrice.Decimal) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a stably sorted copy; SortDefault keeps input order.
func Sort(products []Product, key SortKey) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}

	var cmp func(a, b Product) int
	switch key {
	case SortPriceAsc:
		cmp = func(a, b Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		cmp = func(a, b Product) int { return b.Price.Cmp(a.Price) }
	case SortNameAsc:
		cmp = func(a, b Product) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) }
	case SortNameDesc:
		cmp = func(a, b Product) int { return strings.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name)) }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// Paginate slices products into 1-based pages. A page outside
// [1, TotalPages] yields no items.
func Paginate(products []Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}

	total := len(products)
	res := Page{
		Items:      []Product{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	if page < 1 || page > res.TotalPages {
		return res
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	res.Items = slices.Clone(products[start:end])
	return res
}

// Select validates q, then filters, sorts and paginates.
func Select(products []Product, q Query, page, pageSize int) (Page, error) {
	if err := q.Validate(); err != nil {
		return Page{}, err
	}
	return Paginate(Sort(Filter(products, q), q.Sort), page, pageSize), nil
}

// Categories lists the distinct category labels for the filter sidebar.
// Labels are de-duplicated ignoring case and surrounding whitespace; the
// first spelling seen wins.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{}
	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Category))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p.Category)
	}

	slices.SortStableFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
	})
	return out
}
