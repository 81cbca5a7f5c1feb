package fetch

import (
	"context"

	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
)

// Source is the part of the Kitsu client the catalog controllers need.
type Source interface {
	FetchPage(ctx context.Context, limit, offset int) (*kitsu.Page, error)
	FetchOne(ctx context.Context, id string) (*kitsu.Record, error)
}

// List is the controller behind the paginated list.
type List = Controller[pagination.Params, *kitsu.Page]

// Detail is the controller behind the single record view.
type Detail = Controller[string, *kitsu.Record]

// NewList fetches pages of src, one per pagination snapshot.
func NewList(src Source) *List {
	return New("list", func(ctx context.Context, p pagination.Params) (*kitsu.Page, int, error) {
		page, err := src.FetchPage(ctx, p.Limit, p.Offset)
		if err != nil {
			return nil, 0, err
		}
		return page, page.Count, nil
	})
}

// NewDetail fetches single records of src by id.
func NewDetail(src Source) *Detail {
	return New("detail", func(ctx context.Context, id string) (*kitsu.Record, int, error) {
		record, err := src.FetchOne(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		return record, 1, nil
	})
}
