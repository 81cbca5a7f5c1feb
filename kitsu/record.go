// Package kitsu is a client for the anime collection of the Kitsu JSON:API.
package kitsu

import (
	"fmt"
	"strconv"
	"strings"
)

// Titles holds the localized titles of a record.
type Titles struct {
	// En is the English title.
	En string `json:"en,omitempty" jsonschema:"description=English title."`
	// JaJp is the title in Japanese script.
	JaJp string `json:"ja_jp,omitempty" jsonschema:"description=Japanese title in native script."`
	// EnJp is the romanized Japanese title.
	EnJp string `json:"en_jp,omitempty" jsonschema:"description=Romanized Japanese title."`
}

// PosterImage holds poster URLs. Kitsu sends more sizes; only these are used.
type PosterImage struct {
	Small  string `json:"small,omitempty" jsonschema:"description=URL of the small poster."`
	Medium string `json:"medium,omitempty" jsonschema:"description=URL of the medium poster."`
}

// Attributes is the attribute object of an anime resource.
type Attributes struct {
	Titles            Titles            `json:"titles"`
	CanonicalTitle    string            `json:"canonicalTitle" jsonschema:"description=Title Kitsu considers canonical."`
	Synopsis          string            `json:"synopsis" jsonschema:"description=Plot summary in plain text."`
	Status            string            `json:"status" jsonschema:"enum=current,enum=finished,enum=tba,enum=unreleased,enum=upcoming"`
	EpisodeCount      int               `json:"episodeCount" jsonschema:"description=Number of episodes. Zero when unknown."`
	EpisodeLength     int               `json:"episodeLength" jsonschema:"description=Episode length in minutes. Zero when unknown."`
	StartDate         string            `json:"startDate" jsonschema:"description=First air date (YYYY-MM-DD)."`
	EndDate           string            `json:"endDate" jsonschema:"description=Last air date (YYYY-MM-DD). Empty while airing."`
	ShowType          string            `json:"showType" jsonschema:"enum=TV,enum=special,enum=OVA,enum=ONA,enum=movie,enum=music"`
	AgeRating         string            `json:"ageRating" jsonschema:"enum=G,enum=PG,enum=R,enum=R18"`
	PopularityRank    int               `json:"popularityRank"`
	FavoritesCount    int               `json:"favoritesCount"`
	AverageRating     string            `json:"averageRating" jsonschema:"description=Average rating from 0 to 100 as a decimal string."`
	PosterImage       PosterImage       `json:"posterImage"`
	RatingFrequencies map[string]string `json:"ratingFrequencies" jsonschema:"description=Vote count per rating bucket (2 to 20)."`
}

// Record is a single anime.
type Record struct {
	ID         string     `json:"id" jsonschema:"description=Kitsu identifier."`
	Attributes Attributes `json:"attributes"`
}

// Title prefers the English title, then the romanized one, then the canonical one.
func (r *Record) Title() string {
	t := r.Attributes.Titles
	switch {
	case t.En != "":
		return t.En
	case t.EnJp != "":
		return t.EnJp
	default:
		return r.Attributes.CanonicalTitle
	}
}

// Rating returns the average rating as a number. ok is false when Kitsu has none.
func (r *Record) Rating() (rating float64, ok bool) {
	if r.Attributes.AverageRating == "" {
		return 0, false
	}
	rating, err := strconv.ParseFloat(r.Attributes.AverageRating, 64)
	return rating, err == nil
}

// Year returns the year of the start date, or 0.
func (r *Record) Year() int {
	year, _, _ := strings.Cut(r.Attributes.StartDate, "-")
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}

// Votes sums the rating frequencies.
func (r *Record) Votes() int {
	var total int
	for _, count := range r.Attributes.RatingFrequencies {
		n, err := strconv.Atoi(count)
		if err == nil {
			total += n
		}
	}
	return total
}

// Page is one slice of the collection.
type Page struct {
	Records []Record `json:"records"`
	// Count is the size of the whole collection, not of this page.
	Count int `json:"count"`
}

// Field is a labelled attribute for plain text output.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fields lists the attributes that are set, in display order.
func (r *Record) Fields() []Field {
	var (
		a      = r.Attributes
		fields []Field
	)

	add := func(name, value string) {
		if value != "" {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}

	add("Japanese", a.Titles.JaJp)
	add("Romaji", a.Titles.EnJp)
	add("Status", a.Status)
	add("Type", a.ShowType)
	add("Age rating", a.AgeRating)
	if rating, ok := r.Rating(); ok {
		add("Rating", fmt.Sprintf("%.2f%% (%d votes)", rating, r.Votes()))
	}
	if a.EpisodeCount > 0 {
		add("Episodes", strconv.Itoa(a.EpisodeCount))
	}
	if a.EpisodeLength > 0 {
		add("Episode length", fmt.Sprintf("%d min", a.EpisodeLength))
	}
	add("Start date", a.StartDate)
	add("End date", a.EndDate)
	if a.PopularityRank > 0 {
		add("Popularity rank", "#"+strconv.Itoa(a.PopularityRank))
	}
	if a.FavoritesCount > 0 {
		add("Favorites", strconv.Itoa(a.FavoritesCount))
	}
	add("Poster", a.PosterImage.Medium)

	return fields
}
