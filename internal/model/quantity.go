package model

// PartCategory tags a surface quantity with the material bucket it is bought from.
type PartCategory string

const (
	CategoryInterior PartCategory = "interior"
	CategoryBack     PartCategory = "back"
	CategoryShelf    PartCategory = "shelf"
	CategoryExterior PartCategory = "exterior"
	CategoryFreeform PartCategory = "freeform"
)

// PartCategories lists every category in report order.
var PartCategories = []PartCategory{
	CategoryInterior, CategoryBack, CategoryShelf, CategoryExterior, CategoryFreeform,
}

// PartQuantity is one tagged surface of a cabinet, waste already included.
type PartQuantity struct {
	Name        string       `json:"name"`
	AreaM2      float64      `json:"area_m2"`
	Category    PartCategory `json:"category"`
	MaterialKey MaterialKey  `json:"material_key,omitempty"` // Freeform parts only
}

// CabinetResult holds everything one cabinet needs.
type CabinetResult struct {
	Parts          []PartQuantity `json:"parts"`
	EdgeBandingM   float64        `json:"edge_banding_m"`
	Legs           int            `json:"legs"`
	Hinges         int            `json:"hinges"`
	Handles        int            `json:"handles"`
	DrawerHardware int            `json:"drawer_hardware"`
	ProfileM       float64        `json:"profile_m"`
	Hangers        int            `json:"hangers"`
	Appliances     int            `json:"appliances"`
	MontageHours   float64        `json:"montage_hours"`
}

// AreaByCategory sums the part areas of this cabinet per category.
func (r CabinetResult) AreaByCategory() map[PartCategory]float64 {
	out := make(map[PartCategory]float64)
	for _, p := range r.Parts {
		out[p.Category] += p.AreaM2
	}
	return out
}

// TotalArea returns the sum of all part areas.
func (r CabinetResult) TotalArea() float64 {
	var total float64
	for _, p := range r.Parts {
		total += p.AreaM2
	}
	return total
}

// IsEmpty reports whether the cabinet contributed nothing.
func (r CabinetResult) IsEmpty() bool {
	return len(r.Parts) == 0 && r.EdgeBandingM == 0 && r.MontageHours == 0 &&
		r.Legs == 0 && r.Hinges == 0 && r.Handles == 0 && r.DrawerHardware == 0 &&
		r.ProfileM == 0 && r.Hangers == 0 && r.Appliances == 0
}

// Hardware holds the summed accessory counts of a job.
type Hardware struct {
	EdgeBandingM   float64 `json:"edge_banding_m"`
	Legs           int     `json:"legs"`
	Hinges         int     `json:"hinges"`
	Handles        int     `json:"handles"`
	DrawerHardware int     `json:"drawer_hardware"`
	ProfileM       float64 `json:"profile_m"`
	Hangers        int     `json:"hangers"`
	Appliances     int     `json:"appliances"`
}

// AggregateTotals sums the cabinet results of a job.
type AggregateTotals struct {
	AreaByCategory         map[PartCategory]float64 `json:"area_by_category"`
	AreaByFreeformMaterial map[MaterialKey]float64  `json:"area_by_freeform_material"`
	Hardware
	MontageHours float64 `json:"montage_hours"`
}

// NewAggregateTotals returns zero totals with allocated maps.
func NewAggregateTotals() AggregateTotals {
	return AggregateTotals{
		AreaByCategory:         make(map[PartCategory]float64),
		AreaByFreeformMaterial: make(map[MaterialKey]float64),
	}
}

// Area returns the summed area of a category, 0 when absent.
func (t AggregateTotals) Area(cat PartCategory) float64 {
	return t.AreaByCategory[cat]
}

// PlateCounts are the sheets to buy per bucket.
type PlateCounts struct {
	Interior int `json:"interior"`
	Back     int `json:"back"`  // Only when backs use an alternative material
	Shelf    int `json:"shelf"` // Only when shelves use an alternative material
	Exterior int `json:"exterior"`
	Freeform int `json:"freeform"`
}

// Total returns the number of sheets over all buckets.
func (p PlateCounts) Total() int {
	return p.Interior + p.Back + p.Shelf + p.Exterior + p.Freeform
}

// FreeformPlates is the plate demand of one freeform material.
type FreeformPlates struct {
	Key      MaterialKey `json:"key"`
	Material Material    `json:"material"`
	AreaM2   float64     `json:"area_m2"`
	Plates   int         `json:"plates"`
}

// FlatTotals are the aggregate totals converted into purchasable sheets.
type FlatTotals struct {
	Plates             PlateCounts      `json:"plates"`
	FreeformByMaterial []FreeformPlates `json:"freeform_by_material"`

	InteriorM2 float64 `json:"interior_m2"`
	BackM2     float64 `json:"back_m2"`
	ShelfM2    float64 `json:"shelf_m2"`
	ExteriorM2 float64 `json:"exterior_m2"`
	FreeformM2 float64 `json:"freeform_m2"`

	// Materials the category buckets were converted against
	InteriorMaterial Material  `json:"interior_material"`
	BackMaterial     *Material `json:"back_material,omitempty"`
	ShelfMaterial    *Material `json:"shelf_material,omitempty"`
	ExteriorMaterial Material  `json:"exterior_material"`

	Hardware
	MontageHours float64 `json:"montage_hours"`

	Warnings []string `json:"warnings,omitempty"`
}

// LaborHours are the labor buckets of a job.
type LaborHours struct {
	Design    float64 `json:"design"`
	Workshop  float64 `json:"workshop"`
	Placement float64 `json:"placement"`
	Transport float64 `json:"transport"`
}

// Total returns the sum of all buckets.
func (l LaborHours) Total() float64 {
	return l.Design + l.Workshop + l.Placement + l.Transport
}
