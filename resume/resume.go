// Package resume remembers where the user left the catalog so --continue can return there.
package resume

import (
	"net/url"
	"sync"
	"time"

	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Snapshot is the last list page viewed and the record opened from it, if any.
type Snapshot struct {
	// Query is the encoded pagination snapshot.
	Query   string    `json:"query"`
	Record  string    `json:"record,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Params decodes the stored pagination snapshot.
func (s *Snapshot) Params() pagination.Params {
	values, _ := url.ParseQuery(s.Query)
	return pagination.DeriveWithDefault(values, viper.GetInt(key.PaginationDefaultLimit))
}

var (
	cacher     *gache.Cache[*Snapshot]
	cacherOnce sync.Once
)

func store() *gache.Cache[*Snapshot] {
	cacherOnce.Do(func() {
		cacher = gache.New[*Snapshot](&gache.Options{
			Path:       where.Resume(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// Get returns the stored snapshot, if any.
func Get() (mo.Option[*Snapshot], error) {
	cached, expired, err := store().Get()
	if err != nil {
		return mo.None[*Snapshot](), err
	}

	if expired || cached == nil {
		return mo.None[*Snapshot](), nil
	}

	return mo.Some(cached), nil
}

// SavePage records p as the last viewed page and forgets the opened record.
// It does nothing unless resume.enable is set.
func SavePage(p pagination.Params) error {
	if !viper.GetBool(key.ResumeEnable) {
		return nil
	}

	return store().Set(&Snapshot{
		Query:   p.Encode(),
		SavedAt: time.Now(),
	})
}

// SaveRecord records id as opened from the last viewed page.
func SaveRecord(id string) error {
	if !viper.GetBool(key.ResumeEnable) {
		return nil
	}

	current, err := Get()
	if err != nil {
		return err
	}

	snapshot := current.OrElse(&Snapshot{Query: pagination.Derive(nil).Encode()})
	snapshot.Record = id
	snapshot.SavedAt = time.Now()

	return store().Set(snapshot)
}

// Clear forgets the stored snapshot.
func Clear() error {
	return store().Set(nil)
}
