package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/finwise/finwise-server/internal/api/respond"
	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Register(r.Context(), in)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		AccountType string `json:"accountType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Login(r.Context(), in.Email, in.Password, model.AccountType(in.AccountType))
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session returns the signed-in account, or 404 when nobody is signed in.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if u == nil {
		respond.WriteNotFound(w, "no active session")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
