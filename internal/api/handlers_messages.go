package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/finwise/finwise-server/internal/api/respond"
	"github.com/finwise/finwise-server/internal/services"
)

type MessageHandler struct {
	svc *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SenderID    string `json:"senderId"`
		RecipientID string `json:"recipientId"`
		Content     string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	msg, err := h.svc.Send(r.Context(), in.SenderID, in.RecipientID, in.Content)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.svc.ThreadsFor(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, threads)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.MarkAsRead(r.Context(), vars["userId"], vars["contactId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// OpenThread seeds the expert welcome message for a first contact. It
// returns 201 with the seeded message, or 200 with no body fields when
// the thread already existed.
func (h *MessageHandler) OpenThread(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	msg, err := h.svc.EnsureThread(r.Context(), vars["userId"], vars["contactId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if msg == nil {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "exists"})
		return
	}
	respond.WriteJSON(w, http.StatusCreated, msg)
}
