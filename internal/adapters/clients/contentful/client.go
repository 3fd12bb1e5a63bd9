// Package contentful implements the content store against the
// Contentful Content Delivery API. It translates CDA entries to domain
// types and isolates the rest of the system from the space's schema:
// collection content-type identifiers are probed from an ordered
// candidate list, so schema naming drift in the CMS does not take the
// site down.
package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/reignofvision/agency-api/internal/adapters/clients"
	"github.com/reignofvision/agency-api/internal/domain"
	"github.com/reignofvision/agency-api/internal/platform/logging"
)

const serviceName = "contentful"

// Canonical ordering fields per collection. List and slug lookups use
// the same candidate list and the same ordering, uniformly.
const (
	articleOrder     = "-fields.publishedDate"
	portfolioOrder   = "-sys.createdAt"
	testimonialOrder = "sys.createdAt"
)

// AttemptOutcome classifies one candidate probe.
type AttemptOutcome string

const (
	// AttemptHit means the candidate content type exists and the query
	// succeeded (possibly with zero matching entries).
	AttemptHit AttemptOutcome = "hit"

	// AttemptUnknownType means the space has no such content type; the
	// next candidate is tried.
	AttemptUnknownType AttemptOutcome = "unknown_type"

	// AttemptFailed means the query failed for a reason other than an
	// unknown content type. Probing stops.
	AttemptFailed AttemptOutcome = "failed"
)

// LookupAttempt records one probe against a candidate content type.
type LookupAttempt struct {
	ContentType string
	Order       string
	Outcome     AttemptOutcome
	Total       int
}

// collection binds a candidate content-type list to its ordering field.
type collection struct {
	name  string
	types []string
	order string
}

// Config contains configuration for the Contentful client.
type Config struct {
	// Client is the instrumented HTTP client. Its BaseURL should point
	// at the Content Delivery API host and its AuthFunc must inject the
	// delivery access token.
	Client *clients.Client

	// SpaceID and Environment select the content space.
	SpaceID     string
	Environment string

	// ArticleTypes, PortfolioTypes and TestimonialTypes are the ordered
	// candidate content-type identifiers per collection.
	ArticleTypes     []string
	PortfolioTypes   []string
	TestimonialTypes []string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Client implements ports.ContentStore against the CDA.
type Client struct {
	client       *clients.Client
	spaceID      string
	environment  string
	articles     collection
	portfolio    collection
	testimonials collection
	logger       *slog.Logger
}

// New creates a new Contentful client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func New(cfg Config) *Client {
	if cfg.Client == nil {
		panic("contentful: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	env := cfg.Environment
	if env == "" {
		env = "master"
	}

	return &Client{
		client:       cfg.Client,
		spaceID:      cfg.SpaceID,
		environment:  env,
		articles:     collection{name: "articles", types: cfg.ArticleTypes, order: articleOrder},
		portfolio:    collection{name: "portfolio", types: cfg.PortfolioTypes, order: portfolioOrder},
		testimonials: collection{name: "testimonials", types: cfg.TestimonialTypes, order: testimonialOrder},
		logger:       logger.With(slog.String("component", "contentful.Client")),
	}
}

// ListArticles fetches all blog articles, newest publish date first.
func (c *Client) ListArticles(ctx context.Context) ([]domain.Article, error) {
	resp, err := c.query(ctx, c.articles, nil)
	if err != nil {
		return nil, err
	}

	assets := buildAssetIndex(resp.Includes)

	out := make([]domain.Article, 0, len(resp.Items))
	for i := range resp.Items {
		out = append(out, toArticle(&resp.Items[i], assets))
	}

	return out, nil
}

// GetArticleBySlug fetches the article whose slug exactly equals slug.
func (c *Client) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	resp, err := c.query(ctx, c.articles, slugQuery(slug))
	if err != nil {
		return nil, err
	}

	if len(resp.Items) == 0 {
		return nil, domain.NewNotFoundError("article", slug)
	}

	assets := buildAssetIndex(resp.Includes)
	article := toArticle(&resp.Items[0], assets)

	return &article, nil
}

// ListPortfolioEntries fetches all portfolio entries, newest first.
func (c *Client) ListPortfolioEntries(ctx context.Context) ([]domain.PortfolioEntry, error) {
	resp, err := c.query(ctx, c.portfolio, nil)
	if err != nil {
		return nil, err
	}

	assets := buildAssetIndex(resp.Includes)

	out := make([]domain.PortfolioEntry, 0, len(resp.Items))
	for i := range resp.Items {
		out = append(out, toPortfolioEntry(&resp.Items[i], assets))
	}

	return out, nil
}

// GetPortfolioEntryBySlug fetches the portfolio entry with the given slug.
func (c *Client) GetPortfolioEntryBySlug(ctx context.Context, slug string) (*domain.PortfolioEntry, error) {
	resp, err := c.query(ctx, c.portfolio, slugQuery(slug))
	if err != nil {
		return nil, err
	}

	if len(resp.Items) == 0 {
		return nil, domain.NewNotFoundError("portfolio entry", slug)
	}

	assets := buildAssetIndex(resp.Includes)
	entry := toPortfolioEntry(&resp.Items[0], assets)

	return &entry, nil
}

// ListTestimonials fetches all testimonials, oldest first.
func (c *Client) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	resp, err := c.query(ctx, c.testimonials, nil)
	if err != nil {
		return nil, err
	}

	assets := buildAssetIndex(resp.Includes)

	out := make([]domain.Testimonial, 0, len(resp.Items))
	for i := range resp.Items {
		out = append(out, toTestimonial(&resp.Items[i], assets))
	}

	return out, nil
}

// slugQuery builds the extra parameters for an exact slug lookup.
// The value is passed through verbatim: matching is case-sensitive and
// no trimming or normalization is applied.
func slugQuery(slug string) url.Values {
	return url.Values{
		"fields.slug": []string{slug},
		"limit":       []string{"1"},
	}
}

// query walks the collection's candidate content types in order,
// returning the first successful response. An unknown content type
// advances to the next candidate; exhaustion yields an empty response
// rather than an error, per the degrade-to-empty contract.
func (c *Client) query(ctx context.Context, col collection, extra url.Values) (*entriesResponse, error) {
	attempts := make([]LookupAttempt, 0, len(col.types))

	for _, contentType := range col.types {
		attempt := LookupAttempt{ContentType: contentType, Order: col.order}

		resp, err := c.fetchEntries(ctx, contentType, col.order, extra)

		switch {
		case err == nil:
			attempt.Outcome = AttemptHit
			attempt.Total = resp.Total
			attempts = append(attempts, attempt)
			c.logAttempts(ctx, col, attempts)

			return resp, nil

		case isUnknownContentType(err):
			attempt.Outcome = AttemptUnknownType
			attempts = append(attempts, attempt)

		default:
			attempt.Outcome = AttemptFailed
			attempts = append(attempts, attempt)
			c.logAttempts(ctx, col, attempts)

			return nil, err
		}
	}

	// Every candidate was unknown to the space.
	c.logAttempts(ctx, col, attempts)
	c.logger.WarnContext(ctx, "no candidate content type matched",
		slog.String("collection", col.name),
		slog.Any("candidates", col.types),
	)

	return &entriesResponse{}, nil
}

// fetchEntries performs one CDA entries query against one content type.
func (c *Client) fetchEntries(ctx context.Context, contentType, order string, extra url.Values) (*entriesResponse, error) {
	params := url.Values{
		"content_type": []string{contentType},
		"order":        []string{order},
		"include":      []string{"1"},
	}

	for k, vs := range extra {
		params[k] = vs
	}

	path := c.entriesPath() + "?" + params.Encode()
	c.logger.Log(ctx, logging.LevelTrace, "starting query", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "query complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var entries entriesResponse

	err = json.NewDecoder(resp.Body).Decode(&entries)
	if err != nil {
		return nil, fmt.Errorf("decoding entries response: %w", err)
	}

	return &entries, nil
}

// entriesPath builds the CDA entries path for the configured space.
func (c *Client) entriesPath() string {
	return fmt.Sprintf("/spaces/%s/environments/%s/entries", c.spaceID, c.environment)
}

// unknownTypeError marks a query against a content type the space does
// not have. It drives the candidate fallthrough in query.
type unknownTypeError struct {
	message string
}

func (e *unknownTypeError) Error() string {
	return "unknown content type: " + e.message
}

func isUnknownContentType(err error) bool {
	var ute *unknownTypeError
	return errors.As(err, &ute)
}

// handleErrorResponse converts CDA error responses to domain errors.
// A 400 InvalidQuery means the content type (or its ordering field) does
// not exist in the space; that drives candidate fallthrough rather than
// a hard failure.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)

	if resp.StatusCode == http.StatusBadRequest && apiErr.Sys.ID == "InvalidQuery" {
		return &unknownTypeError{message: apiErr.Message}
	}

	c.logger.Warn("content API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("error_id", apiErr.Sys.ID),
		slog.String("message", apiErr.Message),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewUnavailableError(serviceName, "access denied")
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}

// logAttempts emits the probe trail for one lookup.
func (c *Client) logAttempts(ctx context.Context, col collection, attempts []LookupAttempt) {
	if len(attempts) == 0 {
		return
	}

	if len(attempts) == 1 && attempts[0].Outcome == AttemptHit {
		// Common case: first candidate hit, nothing interesting to say.
		return
	}

	fields := make([]string, 0, len(attempts))
	for _, a := range attempts {
		fields = append(fields, fmt.Sprintf("%s=%s", a.ContentType, a.Outcome))
	}

	c.logger.DebugContext(ctx, "content type probe",
		slog.String("collection", col.name),
		slog.Any("attempts", fields),
	)
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *Client) Name() string {
	return serviceName
}

// Check verifies connectivity by fetching a single entry of any type.
// Implements ports.HealthChecker.
func (c *Client) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, c.entriesPath()+"?limit=1")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	return nil
}
