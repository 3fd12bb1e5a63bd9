package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reignofvision/agency-api/internal/adapters/http/dto"
	"github.com/reignofvision/agency-api/internal/app"
	"github.com/reignofvision/agency-api/internal/domain"
)

// ContentHandler handles CMS-backed content endpoints.
type ContentHandler struct {
	service *app.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service *app.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// ImageResponse is the HTTP representation of an image asset.
type ImageResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

func toImageResponse(img *domain.ImageReference) *ImageResponse {
	if img == nil {
		return nil
	}

	return &ImageResponse{
		URL:         img.URL,
		Title:       img.Title,
		Width:       img.Width,
		Height:      img.Height,
		ContentType: img.ContentType,
	}
}

// ArticleResponse is the HTTP representation of a blog article.
type ArticleResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt,omitempty"`
	Body        domain.RichText `json:"body,omitempty"`
	CoverImage  *ImageResponse  `json:"coverImage,omitempty"`
	Author      string          `json:"author,omitempty"`
	PublishedAt string          `json:"publishedAt,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

func toArticleResponse(a *domain.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Body:        a.Body,
		CoverImage:  toImageResponse(a.CoverImage),
		Author:      a.Author,
		PublishedAt: formatTime(a.PublishedAt),
		Tags:        a.Tags,
	}
}

// PortfolioResponse is the HTTP representation of a portfolio entry.
type PortfolioResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Excerpt    string          `json:"excerpt,omitempty"`
	Body       domain.RichText `json:"body,omitempty"`
	CoverImage *ImageResponse  `json:"coverImage,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

func toPortfolioResponse(p *domain.PortfolioEntry) *PortfolioResponse {
	return &PortfolioResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Body:       p.Body,
		CoverImage: toImageResponse(p.CoverImage),
		CreatedAt:  formatTime(p.CreatedAt),
		Tags:       p.Tags,
	}
}

// TestimonialResponse is the HTTP representation of a testimonial.
type TestimonialResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position string         `json:"position,omitempty"`
	Quote    string         `json:"quote"`
	Avatar   *ImageResponse `json:"avatar,omitempty"`
}

func toTestimonialResponse(t *domain.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:       t.ID,
		Name:     t.Name,
		Position: t.Position,
		Quote:    t.Quote,
		Avatar:   toImageResponse(t.Avatar),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}

// ListArticles handles GET /api/articles.
// Always returns 200 with an array; the array is empty when the CMS is
// unreachable or has no matching collection.
func (h *ContentHandler) ListArticles(c *gin.Context) {
	articles := h.service.ListArticles(c.Request.Context())

	out := make([]*ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}

	c.JSON(http.StatusOK, out)
}

// GetArticle handles GET /api/articles/:slug.
func (h *ContentHandler) GetArticle(c *gin.Context) {
	article, err := h.service.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ListPortfolio handles GET /api/portfolio.
func (h *ContentHandler) ListPortfolio(c *gin.Context) {
	entries := h.service.ListPortfolioEntries(c.Request.Context())

	out := make([]*PortfolioResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toPortfolioResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, out)
}

// GetPortfolioEntry handles GET /api/portfolio/:slug.
func (h *ContentHandler) GetPortfolioEntry(c *gin.Context) {
	entry, err := h.service.GetPortfolioEntryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, toPortfolioResponse(entry))
}

// ListTestimonials handles GET /api/testimonials.
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials := h.service.ListTestimonials(c.Request.Context())

	out := make([]*TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		out = append(out, toTestimonialResponse(&testimonials[i]))
	}

	c.JSON(http.StatusOK, out)
}

// RegisterContentRoutes registers content routes on the given router group.
func (h *ContentHandler) RegisterContentRoutes(rg *gin.RouterGroup) {
	rg.GET("/articles", h.ListArticles)
	rg.GET("/articles/:slug", h.GetArticle)
	rg.GET("/portfolio", h.ListPortfolio)
	rg.GET("/portfolio/:slug", h.GetPortfolioEntry)
	rg.GET("/testimonials", h.ListTestimonials)
}
