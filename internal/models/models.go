package models

import (
	"encoding/json"
	"time"
)

// OGType enumerates Open Graph content types.
type OGType string

const (
	OGTypeWebsite OGType = "website"
	OGTypeArticle OGType = "article"
	OGTypeProduct OGType = "product"
)

// OGTypes lists the accepted Open Graph types in display order.
var OGTypes = []OGType{OGTypeWebsite, OGTypeArticle, OGTypeProduct}

// TwitterCard enumerates Twitter card layouts.
type TwitterCard string

const (
	TwitterCardSummary    TwitterCard = "summary"
	TwitterCardLargeImage TwitterCard = "summary_large_image"
	TwitterCardApp        TwitterCard = "app"
	TwitterCardPlayer     TwitterCard = "player"
)

const (
	DefaultRobotsMeta            = "index, follow"
	AdvancedSEOSingletonID int64 = 1
)

// TwitterCards lists the accepted card types in display order.
var TwitterCards = []TwitterCard{TwitterCardSummary, TwitterCardLargeImage, TwitterCardApp, TwitterCardPlayer}

// SEOTag holds the meta tags for one frontend page, keyed by PageID.
type SEOTag struct {
	ID       int64  `json:"id"`
	PageID   string `json:"page_id"`
	PagePath string `json:"page_path"`
	PageName string `json:"page_name"`

	PageTitle       string `json:"page_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	CanonicalURL    string `json:"canonical_url"`
	RobotsMeta      string `json:"robots_meta"`

	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGType        OGType `json:"og_type"`
	OGURL         string `json:"og_url"`
	OGImageURL    string `json:"og_image_url"`
	OGImageAlt    string `json:"og_image_alt"`

	TwitterCard        TwitterCard `json:"twitter_card"`
	TwitterTitle       string      `json:"twitter_title"`
	TwitterDescription string      `json:"twitter_description"`
	TwitterImageURL    string      `json:"twitter_image_url"`

	// Schema is JSON-LD structured data; nil when unset.
	Schema json.RawMessage `json:"schema"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// AdvancedSEO holds site-wide settings. Only one row exists.
type AdvancedSEO struct {
	ID                     int64     `json:"id"`
	GoogleSiteVerification string    `json:"google_site_verification"`
	HeaderScript           string    `json:"header_script"`
	FooterScript           string    `json:"footer_script"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	CreatedBy              string    `json:"created_by,omitempty"`
	UpdatedBy              string    `json:"updated_by,omitempty"`
}

// String matches the admin list label, e.g. "Home (home)".
func (t SEOTag) String() string {
	return t.PageName + " (" + t.PageID + ")"
}
