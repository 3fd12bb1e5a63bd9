package contentful

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArticle(t *testing.T) {
	entry := &entryDTO{
		Sys: sysDTO{ID: "a1"},
		Fields: map[string]any{
			"title":         "Launching the new site",
			"slug":          "launching-the-new-site",
			"excerpt":       "A short summary",
			"author":        "Jane",
			"publishedDate": "2024-03-05T09:00:00Z",
			"tags":          []any{"design", "launch", 42},
			"body": map[string]any{
				"nodeType": "document",
				"content":  []any{},
			},
		},
	}

	article := toArticle(entry, assetIndex{})

	assert.Equal(t, "a1", article.ID)
	assert.Equal(t, "Launching the new site", article.Title)
	assert.Equal(t, "launching-the-new-site", article.Slug)
	assert.Equal(t, "Jane", article.Author)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), article.PublishedAt)

	// Non-string tag entries are dropped, not zeroed.
	assert.Equal(t, []string{"design", "launch"}, article.Tags)

	// The rich-text body passes through as an opaque node tree.
	require.NotNil(t, article.Body)
	assert.Equal(t, "document", article.Body["nodeType"])

	assert.Nil(t, article.CoverImage)
}

func TestToArticle_MissingOptionalFields(t *testing.T) {
	entry := &entryDTO{
		Sys: sysDTO{ID: "a2"},
		Fields: map[string]any{
			"title": "Bare entry",
			"slug":  "bare",
		},
	}

	article := toArticle(entry, assetIndex{})

	assert.Equal(t, "bare", article.Slug)
	assert.Empty(t, article.Excerpt)
	assert.Nil(t, article.Body)
	assert.Nil(t, article.Tags)
	assert.True(t, article.PublishedAt.IsZero())
}

func TestToPortfolioEntry_CreationTimeFromSys(t *testing.T) {
	created := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	entry := &entryDTO{
		Sys: sysDTO{ID: "p1", CreatedAt: created},
		Fields: map[string]any{
			"title": "Case study",
			"slug":  "case-study",
		},
	}

	p := toPortfolioEntry(entry, assetIndex{})

	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, "case-study", p.Slug)
}

func TestToTestimonial(t *testing.T) {
	entry := &entryDTO{
		Sys: sysDTO{ID: "t1"},
		Fields: map[string]any{
			"name":     "Sam",
			"position": "CTO, Acme",
			"quote":    "They delivered.",
			"avatar": map[string]any{
				"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": "av1"},
			},
		},
	}

	assets := assetIndex{}
	idx := buildAssetIndex(includes{Assets: []assetDTO{avatarAsset("av1")}})
	for k, v := range idx {
		assets[k] = v
	}

	tm := toTestimonial(entry, assets)

	assert.Equal(t, "Sam", tm.Name)
	assert.Equal(t, "CTO, Acme", tm.Position)
	assert.Equal(t, "They delivered.", tm.Quote)
	require.NotNil(t, tm.Avatar)
	assert.Equal(t, "https://images.ctfassets.net/space1/av1.png", tm.Avatar.URL)
}

func avatarAsset(id string) assetDTO {
	var a assetDTO
	a.Sys.ID = id
	a.Fields.Title = "Avatar"
	a.Fields.File.URL = "//images.ctfassets.net/space1/" + id + ".png"
	a.Fields.File.ContentType = "image/png"

	return a
}

func TestBuildAssetIndex_URLNormalization(t *testing.T) {
	var protoRelative, absolute assetDTO
	protoRelative.Sys.ID = "rel"
	protoRelative.Fields.File.URL = "//images.ctfassets.net/x/a.jpg"
	absolute.Sys.ID = "abs"
	absolute.Fields.File.URL = "https://images.ctfassets.net/x/b.jpg"

	idx := buildAssetIndex(includes{Assets: []assetDTO{protoRelative, absolute}})

	assert.Equal(t, "https://images.ctfassets.net/x/a.jpg", idx["rel"].URL)
	assert.Equal(t, "https://images.ctfassets.net/x/b.jpg", idx["abs"].URL)
}

func TestFieldTime(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Time
	}{
		{
			name:  "RFC 3339",
			value: "2024-03-05T09:00:00Z",
			want:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			value: "2024-03-05",
			want:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", value: "yesterday", want: time.Time{}},
		{name: "absent", value: nil, want: time.Time{}},
		{name: "wrong type", value: 12345, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{}
			if tt.value != nil {
				fields["date"] = tt.value
			}

			assert.Equal(t, tt.want, fieldTime(fields, "date"))
		})
	}
}

func TestLinkedAssetID(t *testing.T) {
	link := map[string]any{
		"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": "img1"},
	}

	assert.Equal(t, "img1", linkedAssetID(link))
	assert.Equal(t, "", linkedAssetID(nil))
	assert.Equal(t, "", linkedAssetID("not-a-link"))
	assert.Equal(t, "", linkedAssetID(map[string]any{"sys": "broken"}))
}
