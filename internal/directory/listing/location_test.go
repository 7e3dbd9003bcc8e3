package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"switchboard/internal/directory/listing"
	"switchboard/internal/model"
	"switchboard/internal/util"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name     string
		location util.Optional[model.Location]
		want     string
	}{
		{
			name:     "unset",
			location: util.None[model.Location](),
			want:     "",
		},
		{
			name: "full address",
			location: util.Some(model.Location{
				Street:         util.Some("Independencia"),
				ExteriorNumber: util.Some("102"),
				Neighborhood:   util.Some("Centro"),
				PostalCode:     util.Some("50000"),
			}),
			want: "Independencia, No. 102, Col. Centro, C.P. 50000",
		},
		{
			name: "unnumbered street is omitted",
			location: util.Some(model.Location{
				Street:         util.Some("Main"),
				ExteriorNumber: util.Some("S/N"),
				Neighborhood:   util.Some("Centro"),
				PostalCode:     util.Some("50000"),
			}),
			want: "Main, Col. Centro, C.P. 50000",
		},
		{
			name: "street only",
			location: util.Some(model.Location{
				Street: util.Some("Hidalgo"),
			}),
			want: "Hidalgo",
		},
		{
			name: "no street",
			location: util.Some(model.Location{
				Neighborhood: util.Some("La Merced"),
				PostalCode:   util.Some("50080"),
			}),
			want: "Col. La Merced, C.P. 50080",
		},
		{
			name:     "all fields unset",
			location: util.Some(model.Location{}),
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.FormatLocation(tt.location))
		})
	}
}
