package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a tag filter string.
type SearchQuery struct {
	OGType      []string
	TwitterCard []string
	Order       string
	Text        []string
}

var (
	ogTypeRegex  = regexp.MustCompile(`og:(\w+)`)
	twitterRegex = regexp.MustCompile(`card:(\w+)`)
	orderRegex   = regexp.MustCompile(`sort:(-?\w+)`)
)

// ParseSearchQuery breaks down a raw filter such as
// "og:article card:summary sort:-updated_at charging" into its parts.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, match[1])
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.OGType = extract(ogTypeRegex)
	sq.TwitterCard = extract(twitterRegex)
	if order := extract(orderRegex); len(order) > 0 {
		sq.Order = order[len(order)-1]
	}
	sq.Text = strings.Fields(query)

	return sq
}

// Joined returns the free-text terms as one search string.
func (q SearchQuery) Joined() string {
	return strings.Join(q.Text, " ")
}
