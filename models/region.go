package models

import "fmt"

// Region is one of the fixed service-area codes a device subscribes to.
type Region string

const (
	RegionCenter Region = "CTR"
	RegionNorth  Region = "ZN"
	RegionSouth  Region = "ZS"
	RegionEast   Region = "ZL"
	RegionWest   Region = "ZO"
	RegionMetro  Region = "RM"

	// RegionUndefined is the sentinel used when no region is known and no
	// picker could be shown. It is never a valid subscription target.
	RegionUndefined Region = "NONE"
)

// Regions lists the selectable regions in picker order.
var Regions = []Region{
	RegionCenter,
	RegionNorth,
	RegionSouth,
	RegionEast,
	RegionWest,
	RegionMetro,
}

// Valid reports whether r belongs to the closed set of selectable regions.
func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// Defined reports whether r carries a real region rather than the
// undefined sentinel or an empty value.
func (r Region) Defined() bool {
	return r != RegionUndefined && r != ""
}

func (r Region) String() string {
	return string(r)
}

// ParseRegion converts raw input into a [Region], rejecting anything outside
// the selectable set.
func ParseRegion(raw string) (Region, error) {
	r := Region(raw)
	if !r.Valid() {
		return RegionUndefined, fmt.Errorf("unknown region %q", raw)
	}
	return r, nil
}
