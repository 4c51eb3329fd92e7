package repo

import (
	"context"

	"github.com/finwise/finwise-server/internal/model"
)

// ListArticles returns the full articles collection.
func (r *Repository) ListArticles(ctx context.Context) ([]model.Article, error) {
	return r.store.Articles(ctx)
}

// GetArticle returns the article with the given id.
func (r *Repository) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	articles, err := r.store.Articles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a, nil
		}
	}
	return nil, model.NewNotFoundError("article", id)
}

// InsertArticle appends the article to the articles collection and the
// article's id to the authoring user's back-reference list. Both writes are
// required; an article without an owning author is a data fault.
func (r *Repository) InsertArticle(ctx context.Context, a *model.Article) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	ui := indexByID(users, a.AuthorID)
	if ui < 0 {
		return model.NewNotFoundError("user", a.AuthorID)
	}

	articles, err := r.store.Articles(ctx)
	if err != nil {
		return err
	}
	articles = append(articles, *a)
	if err := r.store.SaveArticles(ctx, articles); err != nil {
		return err
	}

	users[ui].Articles = append(users[ui].Articles, a.ID)
	if err := r.saveUsers(ctx, users, a.AuthorID); err != nil {
		return err
	}
	if users[ui].IsExpert() {
		u := users[ui]
		return r.SyncExpertProfile(ctx, &u)
	}
	return nil
}

// UpdateArticle rewrites the mutable fields of the article matched by id.
func (r *Repository) UpdateArticle(ctx context.Context, a *model.Article) error {
	articles, err := r.store.Articles(ctx)
	if err != nil {
		return err
	}
	for i := range articles {
		if articles[i].ID == a.ID {
			articles[i] = *a
			return r.store.SaveArticles(ctx, articles)
		}
	}
	return model.NewNotFoundError("article", a.ID)
}
