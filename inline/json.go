package inline

import (
	"encoding/json"
	"io"

	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/open"
)

// Output is the JSON document written by the list mode.
type Output struct {
	Page       int      `json:"page" jsonschema:"description=1-based page number."`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
	Total      int      `json:"total" jsonschema:"description=Size of the whole collection."`
	TotalPages int      `json:"total_pages"`
	Filter     string   `json:"filter,omitempty"`
	Result     []*Anime `json:"result"`
}

// Anime is one record of the output with its public page.
type Anime struct {
	Record *kitsu.Record `json:"record"`
	URL    string        `json:"url" jsonschema:"description=Kitsu page of the anime."`
}

func newAnime(r *kitsu.Record) *Anime {
	return &Anime{Record: r, URL: open.RecordURL(r.ID)}
}

func writeJson(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
