package catalog

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"DesignerMe/internal/search"
	"DesignerMe/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store  *Store
	Search *search.State
	Log    *zap.Logger

	// AdminOnly guards the catalog mutations; wired by the composition
	// root so this package stays ignorant of token handling.
	AdminOnly func(http.Handler) http.Handler
}

func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)
	r.Get("/vendors/{vendorID}/products", s.byVendor)

	r.Group(func(pr chi.Router) {
		pr.Use(s.AdminOnly)
		pr.Post("/products", s.create)
		pr.Patch("/products/{id}", s.update)
		pr.Delete("/products/{id}", s.remove)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// A search parameter on the listing route seeds the shared query,
	// so the nav search box and the listing stay in sync.
	if q.Has("search") {
		s.Search.Set(q.Get("search"))
	}

	products := filterProducts(s.Store.List(), s.Search.Get(), q.Get("category"))
	sortProducts(products, q.Get("sort"))

	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	p, ok := s.Store.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) byVendor(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.ByVendor(chi.URLParam(r, "vendorID")))
}

type createReq struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	VendorID    string          `json:"vendor_id"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}
	if req.Price.IsNegative() {
		kit.WriteError(w, r, http.StatusBadRequest, "price must be non-negative", nil)
		return
	}

	p, err := s.Store.Add(Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		VendorID:    req.VendorID,
	})
	if err != nil {
		s.Log.Error("add product failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	var patch Patch
	if err := decodeBody(w, r, &patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		kit.WriteError(w, r, http.StatusBadRequest, "price must be non-negative", nil)
		return
	}

	if err := s.Store.Update(id, patch); err != nil {
		s.Log.Error("update product failed", zap.Error(err), zap.Int("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteNoContent(w)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	if err := s.Store.Delete(id); err != nil {
		s.Log.Error("delete product failed", zap.Error(err), zap.Int("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteNoContent(w)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Matches reports whether the query (case-insensitively) is a substring
// of the product's name, description, or category. An empty query
// matches everything.
func Matches(p Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func filterProducts(products []Product, query, category string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if !Matches(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortProducts(products []Product, key string) {
	switch key {
	case "", "name":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price.LessThan(products[j].Price) })
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool { return products[j].Price.LessThan(products[i].Price) })
	}
}
