package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"DesignerMe/internal/catalog"
	"DesignerMe/pkg/kit"
)

type Server struct {
	Store   *Store
	Catalog *catalog.Store
}

func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.get)
	r.Post("/cart/items", s.addItem)
	r.Put("/cart/items/{id}", s.updateQuantity)
	r.Delete("/cart/items/{id}", s.removeItem)
	r.Delete("/cart", s.clear)
}

type cartResponse struct {
	Items     []LineItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func (s *Server) respond(w http.ResponseWriter, status int) {
	kit.WriteJSON(w, status, cartResponse{
		Items:     s.Store.Items(),
		ItemCount: s.Store.ItemCount(),
		Total:     s.Store.Total(),
	})
}

func (s *Server) get(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK)
}

type addItemReq struct {
	ProductID int `json:"product_id"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": req.ProductID})
		return
	}

	s.Store.AddItem(p)
	s.respond(w, http.StatusOK)
}

type updateQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	s.Store.UpdateQuantity(id, req.Quantity)
	s.respond(w, http.StatusOK)
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	s.Store.RemoveItem(id)
	s.respond(w, http.StatusOK)
}

func (s *Server) clear(w http.ResponseWriter, _ *http.Request) {
	s.Store.Clear()
	kit.WriteNoContent(w)
}
