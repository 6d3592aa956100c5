package seo

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/formassist"
	"github.com/akyairhashvil/seodesk/internal/models"
)

// DuplicatePageIDMessage is reported on page_id when another tag already uses
// the id.
const DuplicatePageIDMessage = "A page with this ID already exists."

// ValidationErrors maps field names to messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "invalid seo tag: " + strings.Join(parts, "; ")
}

// Field order used by forms, exports and error listings.
var Fields = []string{
	"page_id", "page_path", "page_name",
	formassist.FieldPageTitle, formassist.FieldMetaDescription, "meta_keywords", "canonical_url", "robots_meta",
	formassist.FieldOGTitle, formassist.FieldOGDescription, "og_type", "og_url", formassist.FieldOGImageURL, "og_image_alt",
	"twitter_card", formassist.FieldTwitterTitle, formassist.FieldTwitterDescription, formassist.FieldTwitterImageURL,
}

var maxLengths = map[string]int{
	"page_id":                          config.MaxPageIDLength,
	"page_path":                        config.MaxPagePathLength,
	"page_name":                        config.MaxPageNameLength,
	formassist.FieldPageTitle:          config.MaxPageTitleLength,
	formassist.FieldMetaDescription:    config.MaxMetaDescriptionLength,
	"meta_keywords":                    config.MaxMetaKeywordsLength,
	"canonical_url":                    config.MaxURLLength,
	"robots_meta":                      config.MaxRobotsMetaLength,
	formassist.FieldOGTitle:            config.MaxOGTitleLength,
	formassist.FieldOGDescription:      config.MaxOGDescriptionLength,
	"og_url":                           config.MaxURLLength,
	formassist.FieldOGImageURL:         config.MaxURLLength,
	"og_image_alt":                     config.MaxAltTextLength,
	formassist.FieldTwitterTitle:       config.MaxTwitterTitleLength,
	formassist.FieldTwitterDescription: config.MaxTwitterDescLength,
	formassist.FieldTwitterImageURL:    config.MaxURLLength,
}

var required = []string{"page_id", "page_path", "page_name", formassist.FieldPageTitle, formassist.FieldMetaDescription, formassist.FieldOGImageURL}

var urlFields = []string{"canonical_url", "og_url", formassist.FieldOGImageURL, formassist.FieldTwitterImageURL}

// MaxLength returns the character limit for a field, or 0 when unlimited.
func MaxLength(field string) int {
	return maxLengths[field]
}

// Validate checks required fields, limits, URLs, enums and schema JSON.
func Validate(tag models.SEOTag) error {
	errs := ValidationErrors{}

	for _, f := range required {
		if strings.TrimSpace(FieldValue(tag, f)) == "" {
			errs[f] = "This field is required."
		}
	}

	for f, limit := range maxLengths {
		if _, ok := errs[f]; ok {
			continue
		}
		n := formassist.CharacterCount(FieldValue(tag, f))
		if n <= limit {
			continue
		}
		switch f {
		case formassist.FieldPageTitle:
			errs[f] = fmt.Sprintf("Page title should be %d characters or less (currently %d).", limit, n)
		case formassist.FieldMetaDescription:
			errs[f] = fmt.Sprintf("Meta description should be %d characters or less (currently %d).", limit, n)
		default:
			errs[f] = fmt.Sprintf("Ensure this field has no more than %d characters (it has %d).", limit, n)
		}
	}

	for _, f := range urlFields {
		if _, ok := errs[f]; ok {
			continue
		}
		if v := FieldValue(tag, f); v != "" && !validURL(v) {
			errs[f] = "Enter a valid URL."
		}
	}

	if tag.PagePath != "" && !strings.HasPrefix(tag.PagePath, "/") {
		if _, ok := errs["page_path"]; !ok {
			errs["page_path"] = "Page path must start with \"/\"."
		}
	}
	if !validOGType(tag.OGType) {
		errs["og_type"] = fmt.Sprintf("%q is not a valid choice.", tag.OGType)
	}
	if !validTwitterCard(tag.TwitterCard) {
		errs["twitter_card"] = fmt.Sprintf("%q is not a valid choice.", tag.TwitterCard)
	}
	if len(tag.Schema) > 0 && !json.Valid(tag.Schema) {
		errs["schema"] = "Value must be valid JSON."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validOGType(t models.OGType) bool {
	for _, v := range models.OGTypes {
		if v == t {
			return true
		}
	}
	return false
}

func validTwitterCard(c models.TwitterCard) bool {
	for _, v := range models.TwitterCards {
		if v == c {
			return true
		}
	}
	return false
}
