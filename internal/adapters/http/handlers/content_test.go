package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reignofvision/agency-api/internal/app"
	"github.com/reignofvision/agency-api/internal/domain"
)

// stubStore returns canned collections, or an error for everything.
type stubStore struct {
	articles     []domain.Article
	portfolio    []domain.PortfolioEntry
	testimonials []domain.Testimonial
	err          error
}

func (s *stubStore) ListArticles(context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

func (s *stubStore) GetArticleBySlug(_ context.Context, slug string) (*domain.Article, error) {
	if s.err != nil {
		return nil, s.err
	}

	for i := range s.articles {
		if s.articles[i].Slug == slug {
			return &s.articles[i], nil
		}
	}

	return nil, domain.NewNotFoundError("article", slug)
}

func (s *stubStore) ListPortfolioEntries(context.Context) ([]domain.PortfolioEntry, error) {
	return s.portfolio, s.err
}

func (s *stubStore) GetPortfolioEntryBySlug(_ context.Context, slug string) (*domain.PortfolioEntry, error) {
	if s.err != nil {
		return nil, s.err
	}

	for i := range s.portfolio {
		if s.portfolio[i].Slug == slug {
			return &s.portfolio[i], nil
		}
	}

	return nil, domain.NewNotFoundError("portfolio entry", slug)
}

func (s *stubStore) ListTestimonials(context.Context) ([]domain.Testimonial, error) {
	return s.testimonials, s.err
}

func setupContentRouter(store *stubStore) *gin.Engine {
	service := app.NewContentService(store, discardLogger())
	handler := NewContentHandler(service)

	engine := gin.New()
	handler.RegisterContentRoutes(engine.Group("/api"))

	return engine
}

func getJSON(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestListArticles(t *testing.T) {
	t.Run("returns articles", func(t *testing.T) {
		engine := setupContentRouter(&stubStore{
			articles: []domain.Article{
				{
					ID:          "a1",
					Title:       "First",
					Slug:        "first",
					Author:      "Jane",
					PublishedAt: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
					Tags:        []string{"news"},
				},
			},
		})

		w := getJSON(t, engine, "/api/articles")

		require.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "first", body[0]["slug"])
		assert.Equal(t, "2024-03-05T09:00:00Z", body[0]["publishedAt"])
	})

	t.Run("source failure yields empty array not error", func(t *testing.T) {
		engine := setupContentRouter(&stubStore{
			err: domain.NewUnavailableError("contentful", "down"),
		})

		w := getJSON(t, engine, "/api/articles")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestGetArticle(t *testing.T) {
	engine := setupContentRouter(&stubStore{
		articles: []domain.Article{{ID: "a1", Title: "Hello", Slug: "hello"}},
	})

	t.Run("found", func(t *testing.T) {
		w := getJSON(t, engine, "/api/articles/hello")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Hello", body["title"])
	})

	t.Run("unknown slug is 404 with error envelope", func(t *testing.T) {
		w := getJSON(t, engine, "/api/articles/missing")

		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "not found")
	})

	t.Run("slug matching is case-sensitive", func(t *testing.T) {
		w := getJSON(t, engine, "/api/articles/Hello")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListPortfolio(t *testing.T) {
	engine := setupContentRouter(&stubStore{
		portfolio: []domain.PortfolioEntry{
			{ID: "p1", Slug: "site-relaunch", Title: "Site relaunch"},
			{ID: "p2", Slug: "brand-refresh", Title: "Brand refresh"},
		},
	})

	w := getJSON(t, engine, "/api/portfolio")

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestGetPortfolioEntry_NotFound(t *testing.T) {
	engine := setupContentRouter(&stubStore{})

	w := getJSON(t, engine, "/api/portfolio/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTestimonials(t *testing.T) {
	engine := setupContentRouter(&stubStore{
		testimonials: []domain.Testimonial{
			{ID: "t1", Name: "Sam", Position: "CTO", Quote: "Great work"},
		},
	})

	w := getJSON(t, engine, "/api/testimonials")

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Sam", body[0]["name"])

	// No avatar on the entry, so the field is omitted entirely.
	_, hasAvatar := body[0]["avatar"]
	assert.False(t, hasAvatar)
}
