package model

import (
	"strconv"

	"github.com/google/uuid"
)

// Kind identifies the type of a cabinet entry. The values are the names used
// in saved jobs and in the production parameter multiplier table.
type Kind string

const (
	KindUpper     Kind = "Bovenkast"
	KindBase      Kind = "Onderkast"
	KindTall      Kind = "Kolomkast"
	KindDrawer    Kind = "Ladekast"
	KindSidePanel Kind = "Zijpaneel"
	KindFreeform  Kind = "Vrije Kast"

	// KindLegacyFreeform is the name freeform cabinets were saved under
	// before they were generalised from HPL niches.
	KindLegacyFreeform Kind = "Open Nis HPL"

	// Custom sub-kinds. They are computed exactly like a freeform cabinet.
	KindDishwasherPanel Kind = "Vaatwasserpaneel"
	KindSlidingDoorBase Kind = "Schuifdeur Onderkast"
	KindSlidingDoorTall Kind = "Schuifdeur Kolomkast"
	KindShelfTablet     Kind = "Tablet"
)

// StandardKinds lists the kinds that use the box formulas.
var StandardKinds = []Kind{KindUpper, KindBase, KindTall, KindDrawer}

// Kinds lists every kind a new entry can be created as, in picker order.
var Kinds = []Kind{
	KindUpper, KindBase, KindTall, KindDrawer, KindSidePanel, KindFreeform,
	KindDishwasherPanel, KindSlidingDoorBase, KindSlidingDoorTall, KindShelfTablet,
}

// IsStandard reports whether k is one of the four box cabinet kinds.
func (k Kind) IsStandard() bool {
	switch k {
	case KindUpper, KindBase, KindTall, KindDrawer:
		return true
	}
	return false
}

// IsFreeform reports whether k gets the fully custom treatment.
func (k Kind) IsFreeform() bool {
	switch k {
	case KindFreeform, KindLegacyFreeform,
		KindDishwasherPanel, KindSlidingDoorBase, KindSlidingDoorTall, KindShelfTablet:
		return true
	}
	return false
}

// Label returns the short code printed on labels and drawings.
func (k Kind) Label() string {
	switch k {
	case KindUpper:
		return "BK"
	case KindBase:
		return "OK"
	case KindTall:
		return "KK"
	case KindDrawer:
		return "LK"
	case KindSidePanel:
		return "ZP"
	default:
		if k.IsFreeform() {
			return "VK"
		}
		return "?"
	}
}

// ComplexityTier selects the fixed montage hours of a freeform cabinet.
type ComplexityTier string

const (
	ComplexityVeryEasy ComplexityTier = "heel_gemakkelijk"
	ComplexityEasy     ComplexityTier = "gemakkelijk"
	ComplexityMedium   ComplexityTier = "gemiddeld"
	ComplexityHard     ComplexityTier = "moeilijk"
	ComplexityVeryHard ComplexityTier = "heel_moeilijk"
)

// ComplexityTiers lists the tiers from easiest to hardest.
var ComplexityTiers = []ComplexityTier{
	ComplexityVeryEasy, ComplexityEasy, ComplexityMedium, ComplexityHard, ComplexityVeryHard,
}

// Faces toggles the individual panels of a freeform cabinet.
type Faces struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Top    bool `json:"top"`
	Back   bool `json:"back"`
}

// Any reports whether at least one face is active.
func (f Faces) Any() bool {
	return f.Left || f.Right || f.Bottom || f.Top || f.Back
}

// String returns the active faces as a compact code, e.g. "L+R+B".
func (f Faces) String() string {
	s := ""
	add := func(on bool, code string) {
		if !on {
			return
		}
		if s != "" {
			s += "+"
		}
		s += code
	}
	add(f.Left, "L")
	add(f.Right, "R")
	add(f.Bottom, "B")
	add(f.Top, "T")
	add(f.Back, "Rug")
	return s
}

// Dimensions are the outer sizes of a cabinet in mm.
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// Valid reports whether the cabinet contributes any quantities at all.
// Entries with a non-positive height or width are skipped silently.
func (d Dimensions) Valid() bool {
	return d.Height > 0 && d.Width > 0
}

// CabinetSpec is one cabinet entry in a job as it is edited and saved.
// It is a flat record; Variant narrows it to the fields a calculation uses.
type CabinetSpec struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Kind Kind   `json:"kind"`
	Dimensions

	Shelves  int `json:"shelves"`
	Dividers int `json:"dividers"`
	Drawers  int `json:"drawers"`
	Doors    int `json:"doors"`

	OpenFront   bool `json:"open_front,omitempty"`
	Doubled     bool `json:"doubled,omitempty"`
	IsSidePanel bool `json:"is_side_panel,omitempty"` // Legacy flag form of KindSidePanel

	// Freeform only
	MaterialID          *int           `json:"material_id,omitempty"`
	LegacyMaterialIndex *int           `json:"legacy_material_index,omitempty"` // Index into the tablet list in old saves
	Complexity          ComplexityTier `json:"complexity,omitempty"`
	Faces               Faces          `json:"faces"`

	Appliances int `json:"appliances,omitempty"` // Built-in appliances, tall cabinets
}

// NewCabinet creates a cabinet entry with a generated ID.
func NewCabinet(kind Kind, height, width, depth float64) CabinetSpec {
	return CabinetSpec{
		ID:         uuid.New().String()[:8],
		Kind:       kind,
		Dimensions: Dimensions{Height: height, Width: width, Depth: depth},
	}
}

// DefaultCabinet returns the preset a new entry of the given kind starts from.
func DefaultCabinet(kind Kind) CabinetSpec {
	switch kind {
	case KindUpper:
		c := NewCabinet(kind, 600, 600, 350)
		c.Shelves, c.Doors = 2, 2
		return c
	case KindTall:
		c := NewCabinet(kind, 2100, 600, 600)
		c.Shelves, c.Doors = 4, 2
		return c
	case KindBase:
		c := NewCabinet(kind, 900, 600, 600)
		c.Shelves, c.Doors = 1, 2
		return c
	case KindDrawer:
		c := NewCabinet(kind, 900, 600, 600)
		c.Drawers = 3
		return c
	case KindSidePanel:
		return NewCabinet(kind, 900, 600, 0)
	default:
		c := NewCabinet(kind, 900, 600, 600)
		c.Shelves = 2
		c.Complexity = ComplexityMedium
		if tablet := DefaultCatalog().Tablet; len(tablet) > 0 {
			id := tablet[0].ID
			c.MaterialID = &id
		}
		return c
	}
}

// MaterialKey returns the freeform material reference as a map key. A catalog
// id wins over a legacy index; an empty key means "not set".
func (c CabinetSpec) MaterialKey() MaterialKey {
	if c.MaterialID != nil {
		return MaterialKey(strconv.Itoa(*c.MaterialID))
	}
	if c.LegacyMaterialIndex != nil {
		return MaterialKey(strconv.Itoa(*c.LegacyMaterialIndex))
	}
	return ""
}

// Cabinet is the calculation view of a CabinetSpec: exactly one of
// SidePanel, FreeformCabinet or StandardCabinet.
type Cabinet interface {
	Dims() Dimensions
	cabinet()
}

// SidePanel is a loose exterior panel.
type SidePanel struct {
	Dimensions
}

// FreeformCabinet is a fully custom cabinet priced from one pinned material.
type FreeformCabinet struct {
	Dimensions
	Kind       Kind
	Faces      Faces
	Material   MaterialKey
	Complexity ComplexityTier
	Doors      int
	Shelves    int
	Dividers   int
}

// StandardCabinet is a box cabinet computed from the standard formulas.
type StandardCabinet struct {
	Dimensions
	Kind       Kind
	OpenFront  bool
	Doubled    bool
	Shelves    int
	Dividers   int
	Drawers    int
	Doors      int
	Appliances int
}

func (c SidePanel) Dims() Dimensions       { return c.Dimensions }
func (c FreeformCabinet) Dims() Dimensions { return c.Dimensions }
func (c StandardCabinet) Dims() Dimensions { return c.Dimensions }

func (SidePanel) cabinet()       {}
func (FreeformCabinet) cabinet() {}
func (StandardCabinet) cabinet() {}

// Variant narrows the entry to its calculation variant. Side panels take
// priority over freeform kinds, which take priority over the box kinds.
// Unknown kinds are computed as a standard box without kind-specific
// hardware.
func (c CabinetSpec) Variant() Cabinet {
	switch {
	case c.IsSidePanel || c.Kind == KindSidePanel:
		return SidePanel{Dimensions: c.Dimensions}
	case c.Kind.IsFreeform():
		return FreeformCabinet{
			Dimensions: c.Dimensions,
			Kind:       c.Kind,
			Faces:      c.Faces,
			Material:   c.MaterialKey(),
			Complexity: c.Complexity,
			Doors:      nonNegative(c.Doors),
			Shelves:    nonNegative(c.Shelves),
			Dividers:   nonNegative(c.Dividers),
		}
	default:
		return StandardCabinet{
			Dimensions: c.Dimensions,
			Kind:       c.Kind,
			OpenFront:  c.OpenFront,
			Doubled:    c.Doubled,
			Shelves:    nonNegative(c.Shelves),
			Dividers:   nonNegative(c.Dividers),
			Drawers:    nonNegative(c.Drawers),
			Doors:      nonNegative(c.Doors),
			Appliances: nonNegative(c.Appliances),
		}
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
