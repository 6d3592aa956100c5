package config

import "time"

// Database/application settings.
const (
	AppName          = "seodesk"
	DBFileName       = "seodesk.db"
	ConfigFileName   = "seodesk.yaml"
	LogFileName      = "seodesk.log"
	DefaultDBTimeout = 5 * time.Second
)

// Site defaults.
const (
	DefaultSiteURL  = "https://www.evall.in"
	DefaultTimezone = "Asia/Kolkata"
	DefaultAPIAddr  = "127.0.0.1:8080"
	DefaultLogLevel = "info"
)

// Field limits, in characters.
const (
	MaxPageIDLength          = 100
	MaxPagePathLength        = 255
	MaxPageNameLength        = 150
	MaxPageTitleLength       = 70
	MaxMetaDescriptionLength = 160
	MaxMetaKeywordsLength    = 255
	MaxURLLength             = 500
	MaxRobotsMetaLength      = 100
	MaxOGTitleLength         = 95
	MaxOGDescriptionLength   = 200
	MaxAltTextLength         = 255
	MaxTwitterTitleLength    = 70
	MaxTwitterDescLength     = 200
)

// Environment variables read by Load.
const (
	EnvConfig          = "SEODESK_CONFIG"
	EnvDatabasePath    = "SEODESK_DB"
	EnvSiteURL         = "SEODESK_SITE_URL"
	EnvTimezone        = "SEODESK_TIMEZONE"
	EnvAPIAddr         = "SEODESK_ADDR"
	EnvAdminTokenHash  = "SEODESK_ADMIN_TOKEN_HASH"
	EnvLogLevel        = "SEODESK_LOG_LEVEL"
	EnvLogFile         = "SEODESK_LOG_FILE"
	DefaultDotEnvFile  = ".env"
	DefaultAPIActor    = "api"
	DefaultTUIActor    = "tui"
	DefaultCLIActor    = "cli"
	MaxRequestBodySize = 1 << 20
)
