package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/finwise/finwise-server/internal/api/respond"
	"github.com/finwise/finwise-server/internal/services"
)

type MeetingHandler struct {
	svc *services.MeetingService
}

func NewMeetingHandler(svc *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

func (h *MeetingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var in services.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	m, err := h.svc.Schedule(r.Context(), in)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, m)
}

func (h *MeetingHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ActorID string `json:"actorId"`
		Date    string `json:"date"`
		Time    string `json:"time"`
		Reason  string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	m, err := h.svc.Reschedule(r.Context(), in.ActorID, mux.Vars(r)["meetingId"], in.Date, in.Time, in.Reason)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}

func (h *MeetingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context(), mux.Vars(r)["meetingId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ListForUser returns one participant's meetings. The filter query
// parameter selects "upcoming" (default) or "past".
func (h *MeetingHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	filter := services.MeetingFilter(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = services.FilterUpcoming
	}
	meetings, err := h.svc.MeetingsFor(r.Context(), mux.Vars(r)["userId"], filter)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, meetings)
}
