package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/finwise-server/internal/model"
)

func TestCreateArticle(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	a, err := rg.articles.Create(ctx, expert.ID, ArticleRequest{
		Title:    "Budgeting 101",
		Category: "budgeting",
		Summary:  "Start here.",
		Content:  "Track every dollar.",
		Tags:     "budgeting, basics , ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Eva Expert", a.Author)
	assert.Equal(t, expert.ID, a.AuthorID)
	assert.Equal(t, []string{"budgeting", "basics"}, a.Tags)
	assert.Equal(t, categoryImages["budgeting"], a.Image)

	// the author's record back-references the article
	eRec := rg.userByID(t, expert.ID)
	assert.Contains(t, eRec.Articles, a.ID)

	// and so does the display profile
	profile, err := rg.repo.ExpertProfile(ctx, expert.ID)
	require.NoError(t, err)
	assert.Contains(t, profile.Articles, a.ID)
}

func TestCreateArticleValidation(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	_, err := rg.articles.Create(ctx, expert.ID, ArticleRequest{Category: "tax", Summary: "s", Content: "c"})
	assert.True(t, model.IsMissingField(err))

	_, err = rg.articles.Create(ctx, "ghost", ArticleRequest{Title: "t", Category: "tax", Summary: "s", Content: "c"})
	assert.True(t, model.IsNotFound(err))
}

func TestUpdateArticle(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	a, err := rg.articles.Create(ctx, expert.ID, ArticleRequest{
		Title: "Old Title", Category: "tax", Summary: "s", Content: "c",
	})
	require.NoError(t, err)

	got, err := rg.articles.Update(ctx, a.ID, ArticleRequest{
		Title: "New Title", Category: "investing", Summary: "s2", Content: "c2",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, "investing", got.Category)
	assert.Equal(t, categoryImages["investing"], got.Image)
	assert.Equal(t, a.Date, got.Date)
	assert.Equal(t, a.Author, got.Author)

	_, err = rg.articles.Update(ctx, "nope", ArticleRequest{
		Title: "t", Category: "tax", Summary: "s", Content: "c",
	})
	assert.True(t, model.IsNotFound(err))
}

func TestListArticlesByCategoryAndAuthor(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	e1 := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)
	e2 := rg.register(t, "Mark Mentor", "mark@example.com", model.AccountExpert)

	for _, tc := range []struct{ author, title, cat string }{
		{e1.ID, "A", "tax"},
		{e1.ID, "B", "investing"},
		{e2.ID, "C", "tax"},
	} {
		_, err := rg.articles.Create(ctx, tc.author, ArticleRequest{
			Title: tc.title, Category: tc.cat, Summary: "s", Content: "c",
		})
		require.NoError(t, err)
	}

	all, err := rg.articles.ListByCategory(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tax, err := rg.articles.ListByCategory(ctx, "tax")
	require.NoError(t, err)
	assert.Len(t, tax, 2)

	mine, err := rg.articles.ListByAuthor(ctx, e1.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestDraftLifecycle(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	d, err := rg.articles.Draft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	require.NoError(t, rg.articles.SaveDraft(ctx, model.ArticleDraft{
		Title: "WIP", Category: "debt", Summary: "s", Content: "half done", Tags: "debt",
	}))

	d, err = rg.articles.Draft(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "WIP", d.Title)

	// publishing clears the parked draft
	_, err = rg.articles.Create(ctx, expert.ID, ArticleRequest{
		Title: "WIP", Category: "debt", Summary: "s", Content: "done",
	})
	require.NoError(t, err)

	d, err = rg.articles.Draft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}
