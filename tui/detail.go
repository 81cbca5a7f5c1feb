package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/open"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/util"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// renderDetail lays out every attribute of r for the detail viewport.
func (b *statefulBubble) renderDetail(r *kitsu.Record) string {
	var (
		a     = r.Attributes
		lines []string
		width = max(b.width, 20)
	)

	field := func(name, value string) {
		if value == "" {
			return
		}
		lines = append(lines, fmt.Sprintf("%s %s", style.Faint(name+":"), value))
	}

	if a.Titles.JaJp != "" || a.Titles.EnJp != "" {
		lines = append(lines, style.Italic(strings.Join(lo.Compact([]string{a.Titles.EnJp, a.Titles.JaJp}), " / ")), "")
	}

	var tags []string
	if a.Status != "" {
		tags = append(tags, style.Tag(style.Base, style.Green)(statusLabel(a.Status)))
	}
	if a.ShowType != "" {
		tags = append(tags, style.Tag(style.Base, style.Blue)(a.ShowType))
	}
	if a.AgeRating != "" {
		tags = append(tags, style.Tag(style.Base, style.Peach)(a.AgeRating))
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, " "), "")
	}

	if rating, ok := r.Rating(); ok {
		field("Rating", fmt.Sprintf("%s %.2f%% (%s)", icon.Get(icon.Star), rating, util.Quantify(r.Votes(), "vote", "votes")))
	}

	switch {
	case a.EpisodeCount > 0 && a.EpisodeLength > 0:
		field("Episodes", fmt.Sprintf("%s × %d min", util.Quantify(a.EpisodeCount, "episode", "episodes"), a.EpisodeLength))
	case a.EpisodeCount > 0:
		field("Episodes", util.Quantify(a.EpisodeCount, "episode", "episodes"))
	}

	field("Aired", aired(a.StartDate, a.EndDate))

	if a.PopularityRank > 0 {
		field("Popularity", fmt.Sprintf("#%d", a.PopularityRank))
	}
	if a.FavoritesCount > 0 {
		field("Favorites", fmt.Sprintf("%s %d", icon.Get(icon.Heart), a.FavoritesCount))
	}

	poster := a.PosterImage.Medium
	if poster == "" {
		poster = a.PosterImage.Small
	}
	field("Poster", poster)
	field("Kitsu", open.RecordURL(r.ID))

	if viper.GetBool(key.TUIShowSynopsis) && a.Synopsis != "" {
		lines = append(lines, "", wrap.String(a.Synopsis, width))
	}

	return strings.Join(lines, "\n")
}

func aired(start, end string) string {
	switch {
	case start == "":
		return ""
	case end == "" || end == start:
		return start
	default:
		return start + " to " + end
	}
}
