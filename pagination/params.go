// Package pagination turns query mappings into page snapshots and back.
package pagination

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

const (
	// DefaultLimit is the page size used when the query carries none.
	DefaultLimit = 10
	// MaxLimit is the largest page Kitsu serves for the anime collection.
	MaxLimit = 20

	LimitKey  = "page[limit]"
	OffsetKey = "page[offset]"
)

var (
	validate = validator.New()
	decoder  = schema.NewDecoder()
	encoder  = schema.NewEncoder()
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Params is an immutable pagination snapshot. Navigation produces a new one.
type Params struct {
	Limit  int `schema:"page[limit]" validate:"gte=1,lte=20"`
	Offset int `schema:"page[offset]" validate:"gte=0"`
}

// CurrentPage is the 1-based page the snapshot points into.
func (p Params) CurrentPage() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// Derive reads a snapshot from a query mapping, falling back to the default
// limit and a zero offset for keys that are absent or not numeric.
func Derive(values url.Values) Params {
	return DeriveWithDefault(values, DefaultLimit)
}

// DeriveWithDefault is Derive with a configurable fallback limit.
func DeriveWithDefault(values url.Values, defaultLimit int) Params {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	p := Params{Limit: defaultLimit}

	// conversion failures leave the prefilled defaults in place
	_ = decoder.Decode(&p, values)

	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}

// ParseQuery is Derive over an encoded query string. Malformed pairs are skipped.
func ParseQuery(query string) Params {
	values, _ := url.ParseQuery(query)
	return Derive(values)
}

// ToQuery serializes the snapshot for page. Pages below 1 are treated as 1.
func ToQuery(p Params, page int) url.Values {
	return p.Page(page).Values()
}

// Page returns the snapshot pointing at the first record of page.
func (p Params) Page(page int) Params {
	if page < 1 {
		page = 1
	}
	return Params{Limit: p.Limit, Offset: (page - 1) * p.Limit}
}

// Goto is ToQuery with page clamped to the last page. A totalPages of 0
// means the total is not known yet and only the lower bound applies.
func (p Params) Goto(page, totalPages int) url.Values {
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return ToQuery(p, page)
}

// Values serializes the snapshot as is.
func (p Params) Values() url.Values {
	values := url.Values{}
	// Params has only int fields, which the encoder always handles
	_ = encoder.Encode(p, values)
	return values
}

// Encode is Values in query string form.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// Validate rejects snapshots Kitsu would refuse.
func (p Params) Validate() error {
	return validate.Struct(p)
}

// HasPrev reports whether a previous page exists.
func (p Params) HasPrev() bool {
	return p.CurrentPage() > 1
}

// HasNext reports whether another page follows, given the collection size.
func (p Params) HasNext(count int) bool {
	return p.CurrentPage() < TotalPages(count, p.Limit)
}

// TotalPages is the number of pages of size limit needed for count records.
func TotalPages(count, limit int) int {
	if count <= 0 || limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
