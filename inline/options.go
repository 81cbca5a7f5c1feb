package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// RecordPicker narrows a page to a single record, or nil.
type RecordPicker func([]kitsu.Record) *kitsu.Record

type Options struct {
	Out    io.Writer
	Json   bool
	Params pagination.Params
	// Filter keeps the records whose title fuzzily matches it.
	Filter string
	Picker mo.Option[RecordPicker]
}

// ParsePicker understands "first", "last", "exact" and a 0-based index.
// "exact" picks the record whose title equals filter, ignoring case.
func ParsePicker(kind, filter string) (RecordPicker, error) {
	switch kind {
	case "first":
		return func(records []kitsu.Record) *kitsu.Record {
			if len(records) == 0 {
				return nil
			}
			return &records[0]
		}, nil
	case "last":
		return func(records []kitsu.Record) *kitsu.Record {
			if len(records) == 0 {
				return nil
			}
			return &records[len(records)-1]
		}, nil
	case "exact":
		return func(records []kitsu.Record) *kitsu.Record {
			for i := range records {
				if strings.EqualFold(records[i].Title(), filter) {
					return &records[i]
				}
			}
			return nil
		}, nil
	}

	idx, err := strconv.ParseUint(kind, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("unknown picker: %s", kind)
	}

	return func(records []kitsu.Record) *kitsu.Record {
		if len(records) == 0 {
			return nil
		}
		return &records[min(int(idx), len(records)-1)]
	}, nil
}

// filterRecords keeps the records matching query in any of their titles.
func filterRecords(records []kitsu.Record, query string) []kitsu.Record {
	if query == "" {
		return records
	}

	return lo.Filter(records, func(r kitsu.Record, _ int) bool {
		t := r.Attributes.Titles
		return lo.SomeBy([]string{r.Title(), r.Attributes.CanonicalTitle, t.EnJp, t.JaJp}, func(title string) bool {
			return title != "" && fuzzy.MatchNormalizedFold(query, title)
		})
	})
}
