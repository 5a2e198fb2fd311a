package engine

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/KastCalc/internal/model"
)

// MaterialMatch tells how a material reference was resolved.
type MaterialMatch int

const (
	MatchSelected    MaterialMatch = iota // Category selection in range
	MatchID                               // Freeform key matched a catalog id
	MatchLegacyIndex                      // Freeform key used as a tablet list position
	MatchFallback                         // Nothing matched; first available entry
)

func (m MaterialMatch) String() string {
	switch m {
	case MatchSelected:
		return "selected"
	case MatchID:
		return "id"
	case MatchLegacyIndex:
		return "legacy index"
	default:
		return "fallback"
	}
}

// Resolution is a resolved material plus how it was found.
type Resolution struct {
	Material model.Material
	Match    MaterialMatch
	Warning  string // Set when Match is MatchFallback
}

// MaterialSource finds the sheet a quantity is bought from.
type MaterialSource interface {
	Resolve(cat *model.Catalog) Resolution
}

// SelectionSource uses the selected position in a category list. Standard
// cabinet parts share one selection per category.
type SelectionSource struct {
	Category model.MaterialCategory
	Index    int
}

func (s SelectionSource) Resolve(cat *model.Catalog) Resolution {
	list := cat.List(s.Category)
	if s.Index >= 0 && s.Index < len(list) {
		return Resolution{Material: list[s.Index], Match: MatchSelected}
	}
	m := firstOf(list)
	return Resolution{
		Material: m,
		Match:    MatchFallback,
		Warning:  fmt.Sprintf("%s material %d not found, using %s", s.Category, s.Index, m.Name),
	}
}

// PinnedSource uses the material a freeform part was pinned to.
type PinnedSource struct {
	Key model.MaterialKey
}

func (s PinnedSource) Resolve(cat *model.Catalog) Resolution {
	m, match := ResolveFreeformMaterial(s.Key, cat)
	r := Resolution{Material: m, Match: match}
	if match == MatchFallback {
		r.Warning = fmt.Sprintf("freeform material %q not found, using %s", string(s.Key), m.Name)
	}
	return r
}

// SourceFor picks the lookup strategy for a part category. Backs and
// shelves follow the interior selection unless rerouted to an alternative
// interior-list material.
func SourceFor(category model.PartCategory, key model.MaterialKey, sel model.Selections, alt model.AltMaterials) MaterialSource {
	switch category {
	case model.CategoryBack:
		if alt.UseBack {
			return SelectionSource{Category: model.MaterialInterior, Index: alt.BackMaterial}
		}
	case model.CategoryShelf:
		if alt.UseShelf {
			return SelectionSource{Category: model.MaterialInterior, Index: alt.ShelfMaterial}
		}
	case model.CategoryExterior:
		return SelectionSource{Category: model.MaterialExterior, Index: sel.Exterior}
	case model.CategoryFreeform:
		return PinnedSource{Key: key}
	}
	return SelectionSource{Category: model.MaterialInterior, Index: sel.Interior}
}

// ResolveFreeformMaterial maps a freeform material key to a catalog entry.
// The key is first matched against catalog ids, then read as a position in
// the tablet list as old jobs stored it. An id match wins when both apply.
// Anything else falls back to the first catalog entry.
func ResolveFreeformMaterial(key model.MaterialKey, cat *model.Catalog) (model.Material, MaterialMatch) {
	n, err := strconv.Atoi(string(key))
	if err == nil {
		if m := cat.FindByID(n); m != nil {
			return *m, MatchID
		}
		if n >= 0 && n < len(cat.Tablet) {
			return cat.Tablet[n], MatchLegacyIndex
		}
	}
	if len(cat.Materials) > 0 {
		return cat.Materials[0], MatchFallback
	}
	return firstOf(cat.Tablet), MatchFallback
}

func firstOf(list []model.Material) model.Material {
	if len(list) > 0 {
		return list[0]
	}
	return model.PlaceholderMaterial
}
