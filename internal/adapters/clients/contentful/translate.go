package contentful

import "github.com/reignofvision/agency-api/internal/domain"

// Translators from raw CDA entries to domain types. Missing optional
// fields translate to zero values; a missing cover image stays nil.

func toArticle(e *entryDTO, assets assetIndex) domain.Article {
	return domain.Article{
		ID:          e.Sys.ID,
		Title:       fieldString(e.Fields, "title"),
		Slug:        fieldString(e.Fields, "slug"),
		Excerpt:     fieldString(e.Fields, "excerpt"),
		Body:        fieldRichText(e.Fields, "body"),
		CoverImage:  assets[linkedAssetID(e.Fields["coverImage"])],
		Author:      fieldString(e.Fields, "author"),
		PublishedAt: fieldTime(e.Fields, "publishedDate"),
		Tags:        fieldStrings(e.Fields, "tags"),
	}
}

func toPortfolioEntry(e *entryDTO, assets assetIndex) domain.PortfolioEntry {
	return domain.PortfolioEntry{
		ID:         e.Sys.ID,
		Title:      fieldString(e.Fields, "title"),
		Slug:       fieldString(e.Fields, "slug"),
		Excerpt:    fieldString(e.Fields, "excerpt"),
		Body:       fieldRichText(e.Fields, "body"),
		CoverImage: assets[linkedAssetID(e.Fields["coverImage"])],
		CreatedAt:  e.Sys.CreatedAt,
		Tags:       fieldStrings(e.Fields, "tags"),
	}
}

func toTestimonial(e *entryDTO, assets assetIndex) domain.Testimonial {
	return domain.Testimonial{
		ID:       e.Sys.ID,
		Name:     fieldString(e.Fields, "name"),
		Position: fieldString(e.Fields, "position"),
		Quote:    fieldString(e.Fields, "quote"),
		Avatar:   assets[linkedAssetID(e.Fields["avatar"])],
	}
}
