// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/anisan-cli/animedex/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every supported variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Prev
	Next
	Star
	Heart
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "👨‍🍳", nerd: "", plain: "~", kaomoji: "┐(･｡･┐)", squares: "🟦"},
	Prev:     {emoji: "⬅️", nerd: "", plain: "<", kaomoji: "<(｀^´)", squares: "◀"},
	Next:     {emoji: "➡️", nerd: "", plain: ">", kaomoji: "(｀^´)>", squares: "▶"},
	Star:     {emoji: "⭐", nerd: "", plain: "*", kaomoji: "☆", squares: "🟨"},
	Heart:    {emoji: "❤️", nerd: "", plain: "<3", kaomoji: "(♡˙︶˙♡)", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "", plain: "~>", kaomoji: "(¬‿¬)", squares: "🟧"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.get()
	}
	return ""
}
