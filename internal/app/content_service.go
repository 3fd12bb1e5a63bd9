// Package app contains the application services that sit between the
// HTTP handlers and the outbound adapters.
package app

import (
	"context"
	"log/slog"

	"github.com/reignofvision/agency-api/internal/domain"
	"github.com/reignofvision/agency-api/internal/ports"
)

// ContentService serves CMS-backed collections to the HTTP layer.
//
// Collection listings degrade to empty rather than failing: a broken or
// unreachable CMS renders an empty section on the site, never an error
// page. Slug lookups surface any failure as not-found so the caller sees
// a single miss shape.
type ContentService struct {
	store  ports.ContentStore
	logger *slog.Logger
}

// NewContentService creates a new content service.
// Panics if store is nil. Defaults logger to slog.Default() if nil.
func NewContentService(store ports.ContentStore, logger *slog.Logger) *ContentService {
	if store == nil {
		panic("app: store is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ContentService{
		store:  store,
		logger: logger.With(slog.String("component", "app.ContentService")),
	}
}

// ListArticles returns all articles, or an empty slice on any store
// failure.
func (s *ContentService) ListArticles(ctx context.Context) []domain.Article {
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing articles failed", slog.Any("error", err))
		return []domain.Article{}
	}

	if articles == nil {
		articles = []domain.Article{}
	}

	return articles
}

// GetArticleBySlug returns the article with the given slug. Every
// failure mode, including a CMS outage, maps to not-found.
func (s *ContentService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "fetching article failed",
				slog.String("slug", slug),
				slog.Any("error", err))
		}

		return nil, domain.NewNotFoundError("article", slug)
	}

	return article, nil
}

// ListPortfolioEntries returns all portfolio entries, or an empty slice
// on any store failure.
func (s *ContentService) ListPortfolioEntries(ctx context.Context) []domain.PortfolioEntry {
	entries, err := s.store.ListPortfolioEntries(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing portfolio entries failed", slog.Any("error", err))
		return []domain.PortfolioEntry{}
	}

	if entries == nil {
		entries = []domain.PortfolioEntry{}
	}

	return entries
}

// GetPortfolioEntryBySlug returns the portfolio entry with the given
// slug, mapping every failure mode to not-found.
func (s *ContentService) GetPortfolioEntryBySlug(ctx context.Context, slug string) (*domain.PortfolioEntry, error) {
	entry, err := s.store.GetPortfolioEntryBySlug(ctx, slug)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "fetching portfolio entry failed",
				slog.String("slug", slug),
				slog.Any("error", err))
		}

		return nil, domain.NewNotFoundError("portfolio entry", slug)
	}

	return entry, nil
}

// ListTestimonials returns all testimonials, or an empty slice on any
// store failure.
func (s *ContentService) ListTestimonials(ctx context.Context) []domain.Testimonial {
	testimonials, err := s.store.ListTestimonials(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing testimonials failed", slog.Any("error", err))
		return []domain.Testimonial{}
	}

	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}

	return testimonials
}
