package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/finwise/finwise-server/internal/api/respond"
	"github.com/finwise/finwise-server/internal/services"
	"github.com/finwise/finwise-server/internal/store"
)

type ExpertHandler struct {
	svc   *services.UserService
	store *store.Store
}

func NewExpertHandler(svc *services.UserService, st *store.Store) *ExpertHandler {
	return &ExpertHandler{svc: svc, store: st}
}

func (h *ExpertHandler) ListExperts(w http.ResponseWriter, r *http.Request) {
	experts, err := h.svc.Experts(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, experts)
}

func (h *ExpertHandler) GetExpert(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Expert(r.Context(), mux.Vars(r)["expertId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, profile)
}

func (h *ExpertHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in services.UpdateExpertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.UpdateExpertProfile(r.Context(), mux.Vars(r)["expertId"], in)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

func (h *ExpertHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.Clients(r.Context(), mux.Vars(r)["expertId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, clients)
}

// GetView returns the last-viewed-expert pointer used by detail pages.
func (h *ExpertHandler) GetView(w http.ResponseWriter, r *http.Request) {
	id, err := h.store.ExpertView(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if id == "" {
		respond.WriteNotFound(w, "no expert selected")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"expertId": id})
}

func (h *ExpertHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ExpertID string `json:"expertId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.ExpertID == "" {
		respond.WriteBadRequest(w, "expertId required")
		return
	}
	if err := h.store.SetExpertView(r.Context(), in.ExpertID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"expertId": in.ExpertID})
}
