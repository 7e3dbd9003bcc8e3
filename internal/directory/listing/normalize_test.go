package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  finanzas  ", want: "FINANZAS"},
		{in: "Núñez", want: "NUNEZ"},
		{in: "DIRECCIÓN", want: "DIRECCION"},
		{in: "already UPPER", want: "ALREADY UPPER"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in), "normalize(%q)", tt.in)
	}
}

func TestIsDivisionRow(t *testing.T) {
	tests := []struct {
		name       string
		unit       string
		department string
		want       bool
	}{
		{name: "reserved unit with prefix", unit: "Legislature", department: "Directorate of Administration", want: true},
		{name: "reserved unit accent folded", unit: "legislature", department: "DIRECTORATE General", want: true},
		{name: "reserved unit without prefix", unit: "Legislature", department: "Finance", want: false},
		{name: "other unit with prefix", unit: "Archives", department: "Directorate of Records", want: false},
		{name: "prefix not at start", unit: "Legislature", department: "Sub-Directorate of Records", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDivisionRow(tt.unit, tt.department))
		})
	}
}
