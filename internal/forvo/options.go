package forvo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the lookup service endpoint queried by Client.
const DefaultBaseURL = "https://apifree.forvo.com"

// Sex filters pronunciations by the contributor's voice.
type Sex string

const (
	SexAny    Sex = ""
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// ParseSex converts a user-supplied value into a Sex filter. An empty string
// means no filtering.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(s) {
	case "":
		return SexAny, nil
	case "m", "male":
		return SexMale, nil
	case "f", "female":
		return SexFemale, nil
	default:
		return SexAny, fmt.Errorf("unknown sex filter %q (use m, f, male or female)", s)
	}
}

// Order selects the server-side ordering of the result list.
type Order string

const (
	OrderDefault      Order = ""
	OrderNewestFirst  Order = "date-desc"
	OrderOldestFirst  Order = "date-asc"
	OrderHighestRated Order = "rate-desc"
	OrderLowestRated  Order = "rate-asc"
)

// ParseOrder converts a user-supplied value into an Order. An empty string
// means the service default.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "":
		return OrderDefault, nil
	case string(OrderNewestFirst):
		return OrderNewestFirst, nil
	case string(OrderOldestFirst):
		return OrderOldestFirst, nil
	case string(OrderHighestRated):
		return OrderHighestRated, nil
	case string(OrderLowestRated):
		return OrderLowestRated, nil
	default:
		return OrderDefault, fmt.Errorf("unknown order %q (use date-desc, date-asc, rate-desc or rate-asc)", s)
	}
}

// SearchOptions holds the optional lookup filters. Every field is
// independently optional; a zero value contributes no query segment. Values
// are not validated beyond their type: an invalid language code is the
// server's problem, not this client's.
type SearchOptions struct {
	Language  string // service-internal language code, e.g. "39" for English
	Country   string
	Username  string // limit results to one contributor
	Sex       Sex
	MinRating int
	Order     Order
	Limit     int
}

// BuildURL assembles the lookup URL for word against base. The word is
// percent-encoded for its path segment, present options are appended as
// /name/value segments in a fixed order, and the API key always forms the
// final segment. An empty word is passed through unchanged; callers are
// expected to reject it beforehand.
func BuildURL(base, word, key string, opts SearchOptions) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "/"))
	b.WriteString("/action/word-pronunciations/format/json/word/")
	b.WriteString(url.PathEscape(word))

	if opts.Language != "" {
		writeSegment(&b, "language", opts.Language)
	}
	if opts.Country != "" {
		writeSegment(&b, "country", opts.Country)
	}
	if opts.Username != "" {
		writeSegment(&b, "username", opts.Username)
	}
	if opts.Sex != SexAny {
		writeSegment(&b, "sex", string(opts.Sex))
	}
	if opts.MinRating != 0 {
		writeSegment(&b, "rate", strconv.Itoa(opts.MinRating))
	}
	if opts.Order != OrderDefault {
		writeSegment(&b, "order", string(opts.Order))
	}
	if opts.Limit != 0 {
		writeSegment(&b, "limit", strconv.Itoa(opts.Limit))
	}

	writeSegment(&b, "key", key)
	return b.String()
}

func writeSegment(b *strings.Builder, name, value string) {
	b.WriteString("/")
	b.WriteString(name)
	b.WriteString("/")
	b.WriteString(url.PathEscape(value))
}
