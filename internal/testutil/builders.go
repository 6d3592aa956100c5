package testutil

import (
	"encoding/json"

	"github.com/akyairhashvil/seodesk/internal/models"
)

// TagBuilder provides fluent API for creating test SEO tags. The zero build
// passes validation once populated.
type TagBuilder struct {
	tag models.SEOTag
}

func NewTag(pageID string) *TagBuilder {
	return &TagBuilder{
		tag: models.SEOTag{
			PageID:          pageID,
			PagePath:        "/" + pageID,
			PageName:        "Test " + pageID,
			PageTitle:       "Test page " + pageID,
			MetaDescription: "Description for " + pageID,
			OGImageURL:      "https://cdn.example.com/" + pageID + ".png",
		},
	}
}

func (b *TagBuilder) WithPath(p string) *TagBuilder {
	b.tag.PagePath = p
	return b
}

func (b *TagBuilder) WithName(n string) *TagBuilder {
	b.tag.PageName = n
	return b
}

func (b *TagBuilder) WithTitle(t string) *TagBuilder {
	b.tag.PageTitle = t
	return b
}

func (b *TagBuilder) WithDescription(d string) *TagBuilder {
	b.tag.MetaDescription = d
	return b
}

func (b *TagBuilder) WithKeywords(k string) *TagBuilder {
	b.tag.MetaKeywords = k
	return b
}

func (b *TagBuilder) WithOGType(t models.OGType) *TagBuilder {
	b.tag.OGType = t
	return b
}

func (b *TagBuilder) WithTwitterCard(c models.TwitterCard) *TagBuilder {
	b.tag.TwitterCard = c
	return b
}

func (b *TagBuilder) WithOGTitle(t string) *TagBuilder {
	b.tag.OGTitle = t
	return b
}

func (b *TagBuilder) WithImage(url string) *TagBuilder {
	b.tag.OGImageURL = url
	return b
}

func (b *TagBuilder) WithSchema(raw string) *TagBuilder {
	b.tag.Schema = json.RawMessage(raw)
	return b
}

func (b *TagBuilder) Build() models.SEOTag {
	return b.tag
}

// AdvancedBuilder provides fluent API for site-wide settings.
type AdvancedBuilder struct {
	adv models.AdvancedSEO
}

func NewAdvanced() *AdvancedBuilder {
	return &AdvancedBuilder{adv: models.AdvancedSEO{ID: models.AdvancedSEOSingletonID}}
}

func (b *AdvancedBuilder) WithVerification(v string) *AdvancedBuilder {
	b.adv.GoogleSiteVerification = v
	return b
}

func (b *AdvancedBuilder) WithScripts(header, footer string) *AdvancedBuilder {
	b.adv.HeaderScript = header
	b.adv.FooterScript = footer
	return b
}

func (b *AdvancedBuilder) Build() models.AdvancedSEO {
	return b.adv
}
