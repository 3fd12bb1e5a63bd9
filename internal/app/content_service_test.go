package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reignofvision/agency-api/internal/domain"
)

// fakeContentStore returns canned results per collection.
type fakeContentStore struct {
	articles     []domain.Article
	portfolio    []domain.PortfolioEntry
	testimonials []domain.Testimonial

	article        *domain.Article
	portfolioEntry *domain.PortfolioEntry

	err error
}

func (f *fakeContentStore) ListArticles(context.Context) ([]domain.Article, error) {
	return f.articles, f.err
}

func (f *fakeContentStore) GetArticleBySlug(context.Context, string) (*domain.Article, error) {
	return f.article, f.err
}

func (f *fakeContentStore) ListPortfolioEntries(context.Context) ([]domain.PortfolioEntry, error) {
	return f.portfolio, f.err
}

func (f *fakeContentStore) GetPortfolioEntryBySlug(context.Context, string) (*domain.PortfolioEntry, error) {
	return f.portfolioEntry, f.err
}

func (f *fakeContentStore) ListTestimonials(context.Context) ([]domain.Testimonial, error) {
	return f.testimonials, f.err
}

func TestNewContentService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewContentService(nil, discardLogger())
	})
}

func TestContentService_ListArticles(t *testing.T) {
	t.Run("passes entries through", func(t *testing.T) {
		store := &fakeContentStore{articles: []domain.Article{{ID: "1", Slug: "first"}}}
		svc := NewContentService(store, discardLogger())

		articles := svc.ListArticles(context.Background())

		require.Len(t, articles, 1)
		assert.Equal(t, "first", articles[0].Slug)
	})

	t.Run("source failure yields empty slice", func(t *testing.T) {
		store := &fakeContentStore{err: domain.NewUnavailableError("contentful", "timeout")}
		svc := NewContentService(store, discardLogger())

		articles := svc.ListArticles(context.Background())

		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})

	t.Run("zero entries yields empty slice not nil", func(t *testing.T) {
		svc := NewContentService(&fakeContentStore{}, discardLogger())

		articles := svc.ListArticles(context.Background())

		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})
}

func TestContentService_GetArticleBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := &fakeContentStore{article: &domain.Article{ID: "1", Slug: "hello"}}
		svc := NewContentService(store, discardLogger())

		article, err := svc.GetArticleBySlug(context.Background(), "hello")

		require.NoError(t, err)
		assert.Equal(t, "hello", article.Slug)
	})

	t.Run("store miss maps to not found", func(t *testing.T) {
		store := &fakeContentStore{err: domain.NewNotFoundError("article", "missing")}
		svc := NewContentService(store, discardLogger())

		article, err := svc.GetArticleBySlug(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.Nil(t, article)
	})

	t.Run("source failure maps to not found", func(t *testing.T) {
		store := &fakeContentStore{err: errors.New("connection reset")}
		svc := NewContentService(store, discardLogger())

		_, err := svc.GetArticleBySlug(context.Background(), "hello")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestContentService_ListPortfolioEntries(t *testing.T) {
	t.Run("passes entries through", func(t *testing.T) {
		store := &fakeContentStore{portfolio: []domain.PortfolioEntry{{ID: "p1"}, {ID: "p2"}}}
		svc := NewContentService(store, discardLogger())

		entries := svc.ListPortfolioEntries(context.Background())

		assert.Len(t, entries, 2)
	})

	t.Run("source failure yields empty slice", func(t *testing.T) {
		store := &fakeContentStore{err: errors.New("boom")}
		svc := NewContentService(store, discardLogger())

		entries := svc.ListPortfolioEntries(context.Background())

		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestContentService_GetPortfolioEntryBySlug(t *testing.T) {
	store := &fakeContentStore{err: domain.NewUnavailableError("contentful", "down")}
	svc := NewContentService(store, discardLogger())

	_, err := svc.GetPortfolioEntryBySlug(context.Background(), "case-study")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestContentService_ListTestimonials(t *testing.T) {
	t.Run("passes entries through", func(t *testing.T) {
		store := &fakeContentStore{testimonials: []domain.Testimonial{{ID: "t1", Name: "Sam"}}}
		svc := NewContentService(store, discardLogger())

		testimonials := svc.ListTestimonials(context.Background())

		require.Len(t, testimonials, 1)
		assert.Equal(t, "Sam", testimonials[0].Name)
	})

	t.Run("source failure yields empty slice", func(t *testing.T) {
		store := &fakeContentStore{err: errors.New("boom")}
		svc := NewContentService(store, discardLogger())

		testimonials := svc.ListTestimonials(context.Background())

		assert.NotNil(t, testimonials)
		assert.Empty(t, testimonials)
	})
}
