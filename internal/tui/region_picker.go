package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-relief-sync/models"
)

var regionLabels = map[models.Region]string{
	models.RegionCenter: "Center",
	models.RegionNorth:  "North zone",
	models.RegionSouth:  "South zone",
	models.RegionEast:   "East zone",
	models.RegionWest:   "West zone",
	models.RegionMetro:  "Metropolitan region",
}

func regionLabel(r models.Region) string {
	if label, ok := regionLabels[r]; ok {
		return label
	}
	return "not defined"
}

type regionPickerModel struct {
	regions []models.Region
	idx     int
	saving  bool
	err     string
}

func newRegionPicker(regions []models.Region) *regionPickerModel {
	return &regionPickerModel{regions: regions}
}

func (p *regionPickerModel) up() {
	if p.idx > 0 {
		p.idx--
	}
}

func (p *regionPickerModel) down() {
	if p.idx < len(p.regions)-1 {
		p.idx++
	}
}

func (p *regionPickerModel) selected() models.Region {
	if len(p.regions) == 0 {
		return models.RegionUndefined
	}
	return p.regions[p.idx]
}

func (p *regionPickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select your region"))
	b.WriteString("\n\n")

	for i, r := range p.regions {
		line := fmt.Sprintf("%-4s %s", r, regionLabel(r))
		if i == p.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if p.saving {
		b.WriteString("\nSaving...\n")
	}
	if p.err != "" {
		b.WriteString("\n" + errorStyle.Render(p.err) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("up/down choose  enter confirm"))

	return overlayBoxStyle.Render(b.String())
}
