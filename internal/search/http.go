package search

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"DesignerMe/pkg/kit"
)

type Server struct {
	State *State
}

func (s *Server) Register(r chi.Router) {
	r.Get("/search", s.get)
	r.Put("/search", s.set)
	r.Delete("/search", s.clear)
}

type queryPayload struct {
	Query string `json:"query"`
}

func (s *Server) get(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, queryPayload{Query: s.State.Get()})
}

func (s *Server) set(w http.ResponseWriter, r *http.Request) {
	var p queryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	s.State.Set(p.Query)
	kit.WriteJSON(w, http.StatusOK, queryPayload{Query: s.State.Get()})
}

func (s *Server) clear(w http.ResponseWriter, _ *http.Request) {
	s.State.Clear()
	kit.WriteNoContent(w)
}
