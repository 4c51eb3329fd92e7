package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/finwise/finwise-server/internal/api/respond"
	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/services"
)

type ArticleHandler struct {
	svc *services.ArticleService
}

func NewArticleHandler(svc *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ListArticles filters by the optional category and authorId query
// parameters.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	if authorID := r.URL.Query().Get("authorId"); authorID != "" {
		articles, err := h.svc.ListByAuthor(r.Context(), authorID)
		if err != nil {
			respond.WriteServiceError(w, err)
			return
		}
		respond.WriteJSON(w, http.StatusOK, articles)
		return
	}
	articles, err := h.svc.ListByCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), mux.Vars(r)["articleId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AuthorID string `json:"authorId"`
		services.ArticleRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	a, err := h.svc.Create(r.Context(), in.AuthorID, in.ArticleRequest)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, a)
}

func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var in services.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	a, err := h.svc.Update(r.Context(), mux.Vars(r)["articleId"], in)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

func (h *ArticleHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Draft(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if d == nil {
		respond.WriteNotFound(w, "no draft")
		return
	}
	respond.WriteJSON(w, http.StatusOK, d)
}

func (h *ArticleHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	var in model.ArticleDraft
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := h.svc.SaveDraft(r.Context(), in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, in)
}

func (h *ArticleHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearDraft(r.Context()); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
