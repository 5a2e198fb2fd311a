package model

// MaterialCategory is a category-wide material list a user selects from.
type MaterialCategory string

const (
	MaterialInterior MaterialCategory = "interior"
	MaterialExterior MaterialCategory = "exterior"
	MaterialTablet   MaterialCategory = "tablet"
)

// MaterialKey is the stringified freeform material reference. It holds
// either a catalog id or, for old saved jobs, a position in the tablet list.
type MaterialKey string

// PopularFlags mark a material as commonly used for a category.
// They only affect ordering in pickers.
type PopularFlags struct {
	Interior bool `json:"interior"`
	Exterior bool `json:"exterior"`
	Tablet   bool `json:"tablet"`
}

// Material is one purchasable sheet.
type Material struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Width      float64      `json:"width"`  // mm
	Height     float64      `json:"height"` // mm
	PricePerM2 float64      `json:"price_per_m2"`
	Popular    PopularFlags `json:"popular"`
}

// PlateArea returns the area of one sheet in m².
func (m Material) PlateArea() float64 {
	return (m.Width / 1000) * (m.Height / 1000)
}

// PlatePrice returns the price of one full sheet.
func (m Material) PlatePrice() float64 {
	return m.PlateArea() * m.PricePerM2
}

// IsPopular reports whether the material is flagged for the category.
func (m Material) IsPopular(cat MaterialCategory) bool {
	switch cat {
	case MaterialInterior:
		return m.Popular.Interior
	case MaterialExterior:
		return m.Popular.Exterior
	case MaterialTablet:
		return m.Popular.Tablet
	}
	return false
}

// PlaceholderMaterial is used when a list is empty and nothing else resolves.
var PlaceholderMaterial = Material{ID: -1, Name: "Onbekend", Width: 1000, Height: 1000}

// Catalog holds the category lists the selections index into, plus the
// unified list freeform cabinets reference by id.
type Catalog struct {
	Materials []Material `json:"materials"`
	Interior  []Material `json:"interior"`
	Exterior  []Material `json:"exterior"`
	Tablet    []Material `json:"tablet"`
}

// List returns the selectable list for a category.
func (c Catalog) List(cat MaterialCategory) []Material {
	switch cat {
	case MaterialInterior:
		return c.Interior
	case MaterialExterior:
		return c.Exterior
	case MaterialTablet:
		return c.Tablet
	}
	return nil
}

// FindByID returns a pointer to the unified catalog entry with the given id, or nil.
func (c *Catalog) FindByID(id int) *Material {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first unified catalog entry with the given name, or nil.
func (c *Catalog) FindByName(name string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// SortedFor returns the unified list with the materials popular for the
// category first. Relative order is kept within both groups.
func (c Catalog) SortedFor(cat MaterialCategory) []Material {
	out := make([]Material, 0, len(c.Materials))
	for _, m := range c.Materials {
		if m.IsPopular(cat) {
			out = append(out, m)
		}
	}
	for _, m := range c.Materials {
		if !m.IsPopular(cat) {
			out = append(out, m)
		}
	}
	return out
}

// DefaultCatalog returns the stock boards: melamine (M18) for carcasses,
// laminate (L18, L36) for fronts and tops. Ids start above the length of
// any tablet list so legacy positions never match an id.
func DefaultCatalog() Catalog {
	materials := []Material{
		{ID: 101, Name: "M18 Wit", Width: 2800, Height: 2070, PricePerM2: 7.7, Popular: PopularFlags{Interior: true}},
		{ID: 102, Name: "M18 Zwart", Width: 2800, Height: 2070, PricePerM2: 9.3, Popular: PopularFlags{Interior: true}},
		{ID: 103, Name: "M18 Unikleur", Width: 2800, Height: 2070, PricePerM2: 10.5, Popular: PopularFlags{Interior: true}},
		{ID: 104, Name: "L18 Wit", Width: 3050, Height: 1300, PricePerM2: 24, Popular: PopularFlags{Interior: true, Exterior: true}},
		{ID: 105, Name: "L18 Unikleur", Width: 3050, Height: 1300, PricePerM2: 30, Popular: PopularFlags{Interior: true, Exterior: true, Tablet: true}},
		{ID: 106, Name: "L18 Duur", Width: 3050, Height: 1300, PricePerM2: 40, Popular: PopularFlags{Interior: true, Exterior: true, Tablet: true}},
		{ID: 107, Name: "L36 Duur", Width: 3050, Height: 1300, PricePerM2: 45, Popular: PopularFlags{Tablet: true}},
	}
	cat := Catalog{Materials: materials}
	for _, m := range materials {
		if m.Popular.Interior {
			cat.Interior = append(cat.Interior, m)
		}
		if m.Popular.Exterior {
			cat.Exterior = append(cat.Exterior, m)
		}
		if m.Popular.Tablet {
			cat.Tablet = append(cat.Tablet, m)
		}
	}
	return cat
}
