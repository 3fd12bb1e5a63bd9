package contentful

import (
	"strings"
	"time"

	"github.com/reignofvision/agency-api/internal/domain"
)

// External DTOs for the Content Delivery API wire format. These types
// never leave this package; translation to domain types happens here.

// entriesResponse is the envelope of a GET /entries call.
type entriesResponse struct {
	Total    int        `json:"total"`
	Items    []entryDTO `json:"items"`
	Includes includes   `json:"includes"`
}

// entryDTO is one entry with its raw field set. Fields differ per
// collection, so they are decoded in a second pass by the translators.
type entryDTO struct {
	Sys    sysDTO         `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// sysDTO carries entry metadata.
type sysDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// includes carries linked resources resolved by the API.
type includes struct {
	Assets []assetDTO `json:"Asset"`
}

// assetDTO is one linked media asset.
type assetDTO struct {
	Sys    sysDTO `json:"sys"`
	Fields struct {
		Title string `json:"title"`
		File  struct {
			URL     string `json:"url"`
			Details struct {
				Image struct {
					Width  int `json:"width"`
					Height int `json:"height"`
				} `json:"image"`
			} `json:"details"`
			ContentType string `json:"contentType"`
		} `json:"file"`
	} `json:"fields"`
}

// apiError is the CDA error body. The sys id distinguishes an unknown
// content type (InvalidQuery) from real failures.
type apiError struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Message string `json:"message"`
}

// assetIndex maps asset IDs to resolved image references.
type assetIndex map[string]*domain.ImageReference

// buildAssetIndex resolves every included asset into an ImageReference.
// The API delivers protocol-relative URLs; a usable URL needs the https
// prefix added here.
func buildAssetIndex(inc includes) assetIndex {
	idx := make(assetIndex, len(inc.Assets))

	for _, a := range inc.Assets {
		url := a.Fields.File.URL
		if strings.HasPrefix(url, "//") {
			url = "https:" + url
		}

		idx[a.Sys.ID] = &domain.ImageReference{
			URL:         url,
			Title:       a.Fields.Title,
			Width:       a.Fields.File.Details.Image.Width,
			Height:      a.Fields.File.Details.Image.Height,
			ContentType: a.Fields.File.ContentType,
		}
	}

	return idx
}

// linkedAssetID extracts the asset ID from a link field value, or ""
// when the field is absent or not a link.
func linkedAssetID(field any) string {
	link, ok := field.(map[string]any)
	if !ok {
		return ""
	}

	sys, ok := link["sys"].(map[string]any)
	if !ok {
		return ""
	}

	id, _ := sys["id"].(string)

	return id
}

// fieldString returns a string field, or "" when absent.
func fieldString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// fieldStrings returns a string-array field, skipping non-string items.
func fieldStrings(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))

	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// fieldRichText returns a rich-text document field as an opaque node
// tree, or nil when absent.
func fieldRichText(fields map[string]any, key string) domain.RichText {
	doc, ok := fields[key].(map[string]any)
	if !ok {
		return nil
	}

	return domain.RichText(doc)
}

// fieldTime parses a date field. Editorial dates may be full RFC 3339
// timestamps or bare dates depending on how the field was configured.
func fieldTime(fields map[string]any, key string) time.Time {
	s, ok := fields[key].(string)
	if !ok {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}

	return time.Time{}
}
