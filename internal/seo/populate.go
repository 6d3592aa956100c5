// Package seo holds the save-time rules for SEO tags: filling derived Open
// Graph and Twitter fields, and validating limits before storage.
package seo

import (
	"strings"

	"github.com/akyairhashvil/seodesk/internal/formassist"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/util"
)

// Populate fills empty derived fields. Non-empty values are never replaced.
// The Open Graph to Twitter step follows the same pairings the edit form
// applies on blur, so saving from the API gives the same result as the form.
func Populate(tag *models.SEOTag, siteURL string) {
	if tag.OGTitle == "" {
		tag.OGTitle = tag.PageTitle
	}
	if tag.OGDescription == "" {
		tag.OGDescription = tag.MetaDescription
	}
	if tag.OGURL == "" && tag.PagePath != "" {
		tag.OGURL = strings.TrimRight(siteURL, "/") + tag.PagePath
	}

	for _, p := range formassist.DefaultPairings() {
		src, dst := fieldRef(tag, p.Source), fieldRef(tag, p.Target)
		if src == nil || dst == nil {
			continue
		}
		if *dst == "" {
			*dst = *src
		}
	}

	if tag.OGType == "" {
		tag.OGType = models.OGTypeWebsite
	}
	if tag.TwitterCard == "" {
		tag.TwitterCard = models.TwitterCardLargeImage
	}
	if tag.RobotsMeta == "" {
		tag.RobotsMeta = models.DefaultRobotsMeta
	}
	tag.MetaKeywords = util.NormalizeKeywords(tag.MetaKeywords)
}

// Prepare populates then validates tag.
func Prepare(tag *models.SEOTag, siteURL string) error {
	Populate(tag, siteURL)
	return Validate(*tag)
}

// fieldRef maps a form field name to the matching string field on tag.
func fieldRef(tag *models.SEOTag, name string) *string {
	switch name {
	case "page_id":
		return &tag.PageID
	case "page_path":
		return &tag.PagePath
	case "page_name":
		return &tag.PageName
	case formassist.FieldPageTitle:
		return &tag.PageTitle
	case formassist.FieldMetaDescription:
		return &tag.MetaDescription
	case "meta_keywords":
		return &tag.MetaKeywords
	case "canonical_url":
		return &tag.CanonicalURL
	case "robots_meta":
		return &tag.RobotsMeta
	case formassist.FieldOGTitle:
		return &tag.OGTitle
	case formassist.FieldOGDescription:
		return &tag.OGDescription
	case "og_url":
		return &tag.OGURL
	case formassist.FieldOGImageURL:
		return &tag.OGImageURL
	case "og_image_alt":
		return &tag.OGImageAlt
	case formassist.FieldTwitterTitle:
		return &tag.TwitterTitle
	case formassist.FieldTwitterDescription:
		return &tag.TwitterDescription
	case formassist.FieldTwitterImageURL:
		return &tag.TwitterImageURL
	}
	return nil
}

// FieldValue returns the string value of a named field, or "" when the name
// is not a text field.
func FieldValue(tag models.SEOTag, name string) string {
	switch name {
	case "og_type":
		return string(tag.OGType)
	case "twitter_card":
		return string(tag.TwitterCard)
	}
	if p := fieldRef(&tag, name); p != nil {
		return *p
	}
	return ""
}

// SetFieldValue writes a named field. It reports false for unknown names.
func SetFieldValue(tag *models.SEOTag, name, value string) bool {
	switch name {
	case "og_type":
		tag.OGType = models.OGType(value)
		return true
	case "twitter_card":
		tag.TwitterCard = models.TwitterCard(value)
		return true
	}
	p := fieldRef(tag, name)
	if p == nil {
		return false
	}
	*p = value
	return true
}
