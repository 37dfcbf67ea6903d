package types

// Vertical represents a facility vertical (what kind of site is being assessed)
type Vertical string

const (
	VerticalRetail    Vertical = "retail"
	VerticalWarehouse Vertical = "warehouse"
	VerticalOffice    Vertical = "office"
)

// AllVerticals returns all valid verticals
func AllVerticals() []Vertical {
	return []Vertical{
		VerticalRetail,
		VerticalWarehouse,
		VerticalOffice,
	}
}

// IsValid checks if the vertical is valid
func (v Vertical) IsValid() bool {
	switch v {
	case VerticalRetail, VerticalWarehouse, VerticalOffice:
		return true
	default:
		return false
	}
}

// String returns the string representation of the vertical
func (v Vertical) String() string {
	return string(v)
}
