package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
)

var categoryImages = map[string]string{
	"budgeting":          "https://images.unsplash.com/photo-1631856952982-7db18c2bdca4",
	"investing":          "https://images.unsplash.com/photo-1649954174454-767fd0a40fb6",
	"retirement":         "https://images.unsplash.com/photo-1716878906849-17ed9e9e6186",
	"tax":                "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40",
	"debt":               "https://images.unsplash.com/photo-1579621970588-a35d0e7ab9b6",
	"estate":             "https://images.unsplash.com/photo-1563986768711-b3bde3dc821e",
	"financial-literacy": "https://images.unsplash.com/photo-1526628953301-3e589a6a8b74",
}

const fallbackImage = "https://images.unsplash.com/photo-1444653389962-8149286c578a"

func imageForCategory(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return fallbackImage
}

func splitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ArticleService publishes advisory content authored by experts.
type ArticleService struct {
	repo *repo.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewArticleService(r *repo.Repository, log zerolog.Logger) *ArticleService {
	return &ArticleService{repo: r, log: log, now: time.Now}
}

// ArticleRequest carries the editor form. Tags arrive comma-separated.
type ArticleRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
}

func (r ArticleRequest) validate() error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return model.NewMissingFieldError("title")
	case strings.TrimSpace(r.Category) == "":
		return model.NewMissingFieldError("category")
	case strings.TrimSpace(r.Summary) == "":
		return model.NewMissingFieldError("summary")
	case strings.TrimSpace(r.Content) == "":
		return model.NewMissingFieldError("content")
	}
	return nil
}

// Create publishes a new article under the author's byline and clears
// any parked draft.
func (s *ArticleService) Create(ctx context.Context, authorID string, req ArticleRequest) (*model.Article, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	author, err := s.repo.FindUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	a := model.Article{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		Author:   author.FullName,
		AuthorID: author.ID,
		Date:     s.now().Format("2006-01-02"),
		Category: req.Category,
		Summary:  req.Summary,
		Content:  req.Content,
		Image:    imageForCategory(req.Category),
		Tags:     splitTags(req.Tags),
	}
	if err := s.repo.InsertArticle(ctx, &a); err != nil {
		return nil, err
	}
	if err := s.repo.Store().ClearDraft(ctx); err != nil {
		return nil, err
	}
	s.log.Info().Str("articleId", a.ID).Str("authorId", author.ID).Msg("article published")
	return &a, nil
}

// Update rewrites an existing article's editable fields. Byline, date
// and id are fixed at publication.
func (s *ArticleService) Update(ctx context.Context, articleID string, req ArticleRequest) (*model.Article, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	a, err := s.repo.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	a.Title = strings.TrimSpace(req.Title)
	a.Category = req.Category
	a.Summary = req.Summary
	a.Content = req.Content
	a.Image = imageForCategory(req.Category)
	a.Tags = splitTags(req.Tags)
	if err := s.repo.UpdateArticle(ctx, a); err != nil {
		return nil, err
	}
	s.log.Info().Str("articleId", a.ID).Msg("article updated")
	return a, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	return s.repo.GetArticle(ctx, id)
}

func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	return s.repo.ListArticles(ctx)
}

// ListByCategory filters the catalog; an empty or "all" category returns
// everything.
func (s *ArticleService) ListByCategory(ctx context.Context, category string) ([]model.Article, error) {
	all, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return all, nil
	}
	out := make([]model.Article, 0, len(all))
	for _, a := range all {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByAuthor returns an expert's published articles.
func (s *ArticleService) ListByAuthor(ctx context.Context, authorID string) ([]model.Article, error) {
	all, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Article, 0, len(all))
	for _, a := range all {
		if a.AuthorID == authorID {
			out = append(out, a)
		}
	}
	return out, nil
}

// SaveDraft parks the editor state so a half-written article survives
// navigation.
func (s *ArticleService) SaveDraft(ctx context.Context, d model.ArticleDraft) error {
	return s.repo.Store().SaveDraft(ctx, &d)
}

func (s *ArticleService) Draft(ctx context.Context) (*model.ArticleDraft, error) {
	return s.repo.Store().Draft(ctx)
}

func (s *ArticleService) ClearDraft(ctx context.Context) error {
	return s.repo.Store().ClearDraft(ctx)
}
