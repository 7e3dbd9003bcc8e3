package listing

import (
	"strings"

	"switchboard/internal/model"
	"switchboard/internal/util"
)

// unnumberedStreet is the registry's placeholder for an address without
// an exterior number; it is omitted from the formatted line.
const unnumberedStreet = "S/N"

// FormatLocation renders a location as the display line
// "street, No. X, Col. Y, C.P. Z", omitting absent components.
func FormatLocation(location util.Optional[model.Location]) string {
	if !location.IsSet {
		return ""
	}
	loc := location.Val

	var parts []string
	if loc.Street.IsSet {
		parts = append(parts, loc.Street.Val)
	}
	if loc.ExteriorNumber.IsSet && loc.ExteriorNumber.Val != unnumberedStreet {
		parts = append(parts, "No. "+loc.ExteriorNumber.Val)
	}
	if loc.Neighborhood.IsSet {
		parts = append(parts, "Col. "+loc.Neighborhood.Val)
	}
	if loc.PostalCode.IsSet {
		parts = append(parts, "C.P. "+loc.PostalCode.Val)
	}
	return strings.Join(parts, ", ")
}
