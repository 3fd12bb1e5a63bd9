// Package domain contains core business entities and rules.
package domain

import "time"

// Article is one published blog entry. Articles are authored in the CMS;
// this service only reads snapshots and never mutates them.
type Article struct {
	// ID is the CMS entry identifier.
	ID string

	// Title is the display title.
	Title string

	// Slug uniquely identifies the article within the blog collection.
	// Uniqueness is owned by the CMS, not enforced here.
	Slug string

	// Excerpt is the short summary shown on list pages.
	Excerpt string

	// Body is the rich-text document. The structure is opaque to this
	// service; it is passed through to the rendering layer as-is.
	Body RichText

	// CoverImage is the optional cover image. Nil when the entry has none.
	CoverImage *ImageReference

	// Author is the display name of the author.
	Author string

	// PublishedAt is the editorial publish timestamp.
	PublishedAt time.Time

	// Tags are free-form category labels.
	Tags []string
}

// PortfolioEntry is one case-study entry in the portfolio collection.
type PortfolioEntry struct {
	ID         string
	Title      string
	Slug       string
	Excerpt    string
	Body       RichText
	CoverImage *ImageReference
	CreatedAt  time.Time
	Tags       []string
}

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID       string
	Name     string
	Position string
	Quote    string
	Avatar   *ImageReference
}

// RichText is a structured rich-text document as delivered by the CMS.
// This service treats it as an opaque node tree.
type RichText map[string]any

// ImageReference points at a remotely hosted image asset.
type ImageReference struct {
	// URL is the absolute asset URL, protocol included.
	URL string

	// Title is the asset title from the CMS.
	Title string

	// Width and Height are the declared pixel dimensions, zero when the
	// CMS did not report them.
	Width  int
	Height int

	// ContentType is the declared MIME type.
	ContentType string
}
