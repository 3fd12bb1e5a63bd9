// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/reignofvision/agency-api/internal/domain"
)

// ContentStore is the read-only contract against the headless CMS.
// Implementations translate the CMS query semantics and entry schema to
// domain types; they never expose raw CMS payloads.
//
// List operations return the full collection in the documented order,
// with no pagination and no caching between calls. Errors follow the domain
// taxonomy: slug lookups return domain.ErrNotFound for zero matches and
// domain.ErrUnavailable when the source cannot be reached. List
// operations surface domain.ErrUnavailable too; the application layer is
// the one that absorbs it into an empty result.
type ContentStore interface {
	// ListArticles returns all blog articles, most recently published first.
	ListArticles(ctx context.Context) ([]domain.Article, error)

	// GetArticleBySlug returns the article whose slug exactly equals slug.
	// The match is case-sensitive; no normalization is applied.
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)

	// ListPortfolioEntries returns all portfolio entries, newest first.
	ListPortfolioEntries(ctx context.Context) ([]domain.PortfolioEntry, error)

	// GetPortfolioEntryBySlug returns the portfolio entry with the given slug.
	GetPortfolioEntryBySlug(ctx context.Context, slug string) (*domain.PortfolioEntry, error)

	// ListTestimonials returns all testimonials, oldest first.
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}
