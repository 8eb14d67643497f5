package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

const msgProductsFetchFailed = "Failed to fetch products"

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)

	q, page, err := parseProductQuery(r)
	if err == nil {
		err = q.Validate()
	}
	if err != nil {
		s.Toasts().Post(notify.KindError, err.Error())
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.Browser().Browse(r.Context(), q, page)
	switch {
	case errors.Is(err, catalog.ErrStaleQuery):
		writeError(w, r, http.StatusConflict, "superseded by a newer product query")
		return
	case err != nil:
		h.logger.Printf("list products session=%s: %v", s.ID, err)
		s.Toasts().Post(notify.KindError, msgProductsFetchFailed)

		// The page stays usable: empty listing plus a visible error.
		out := newProductPage(catalog.Result{Page: catalog.Paginate(nil, page, s.Browser().PageSize())})
		out.Error = msgProductsFetchFailed
		writeJSON(w, http.StatusOK, out)
		return
	}

	writeJSON(w, http.StatusOK, newProductPage(res))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, r, err, "Product not found", "Failed to fetch product")
		return
	}
	writeJSON(w, http.StatusOK, newProductView(*p))
}

func parseProductQuery(r *http.Request) (catalog.Query, int, error) {
	v := r.URL.Query()

	var q catalog.Query
	q.Category = v.Get("category")

	var err error
	if q.MinPrice, err = parsePrice(v.Get("min_price"), "min_price"); err != nil {
		return q, 0, err
	}
	if q.MaxPrice, err = parsePrice(v.Get("max_price"), "max_price"); err != nil {
		return q, 0, err
	}
	if q.Sort, err = catalog.ParseSortKey(v.Get("sort_by")); err != nil {
		return q, 0, err
	}

	page := 1
	if raw := strings.TrimSpace(v.Get("page")); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, 0, fmt.Errorf("%w: page must be a positive integer", catalog.ErrInvalidQuery)
		}
	}
	return q, page, nil
}

func parsePrice(raw, name string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s must be a number", catalog.ErrInvalidQuery, name)
	}
	return decimal.NewNullDecimal(d), nil
}

// writeUpstreamError maps a tagged client error to a status code.
func (h *Handler) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, failedMsg string) {
	if errors.Is(err, clients.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, notFoundMsg)
		return
	}
	h.logger.Printf("%s: %v", failedMsg, err)
	writeError(w, r, http.StatusBadGateway, failedMsg)
}
