package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/unitwalk/dimension"
	"github.com/rshade/unitwalk/prefix"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		q    dimension.Quantity
		want string
	}{
		{
			name: "metres per second",
			q:    dimension.Quantity{Coefficient: 1000, Exponents: dimension.Exponents{"metre": 1, "second": -1}},
			want: "1,000 metres per second",
		},
		{
			name: "inverse per second",
			q:    dimension.Quantity{Coefficient: 1, Exponents: dimension.Exponents{"second": -1}},
			want: "1 inverse per second",
		},
		{
			name: "dimensionless",
			q:    dimension.Quantity{Coefficient: 1, Exponents: dimension.Exponents{}},
			want: "1 inverse",
		},
		{
			name: "plural skipped after trailing s",
			q:    dimension.Quantity{Coefficient: 3, Exponents: dimension.Exponents{"siemens": 1}},
			want: "3 siemens",
		},
		{
			name: "plural skipped after trailing z",
			q:    dimension.Quantity{Coefficient: 50, Exponents: dimension.Exponents{"hertz": 1}},
			want: "50 hertz",
		},
		{
			name: "multi unit numerator pluralizes only the last",
			q:    dimension.Quantity{Coefficient: 2000, Exponents: dimension.Exponents{"ampère": 1, "ohm": 1}},
			want: "2,000 ampère ohms",
		},
		{
			name: "numerator exponent suffix",
			q:    dimension.Quantity{Coefficient: 4, Exponents: dimension.Exponents{"metre": 2}},
			want: "4 metres^2",
		},
		{
			name: "denominator exponent suffix",
			q:    dimension.Quantity{Coefficient: 9.81, Exponents: dimension.Exponents{"metre": 1, "second": -2}},
			want: "9.81 metres per second^-2",
		},
		{
			name: "multi unit denominator",
			q:    dimension.Quantity{Coefficient: 1, Exponents: dimension.Exponents{"volt": 1, "ampère": -1, "ohm": -1}},
			want: "1 volts per ampère ohm",
		},
		{
			name: "fractional coefficient",
			q:    dimension.Quantity{Coefficient: 70.2, Exponents: dimension.Exponents{"metre": 1, "minute": -1}},
			want: "70.2 metres per minute",
		},
		{
			name: "grouped thousands with fraction",
			q:    dimension.Quantity{Coefficient: 1234.5, Exponents: dimension.Exponents{"volt": 1}},
			want: "1,234.5 volts",
		},
		{
			name: "negative coefficient keeps its sign",
			q:    dimension.Quantity{Coefficient: -2500, Exponents: dimension.Exponents{"volt": 1}},
			want: "-2,500 volts",
		},
		{
			name: "denominator only with exponent",
			q:    dimension.Quantity{Coefficient: 2, Exponents: dimension.Exponents{"second": -3}},
			want: "2 inverse per second^-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.q))
		})
	}
}

func TestFormatWithPrefixes(t *testing.T) {
	tests := []struct {
		name string
		q    dimension.Quantity
		sel  prefix.Selection
		want string
	}{
		{
			name: "kilovolt fold",
			q:    dimension.Quantity{Coefficient: 2000, Exponents: dimension.Exponents{"volt": 1}},
			sel:  prefix.Selection{Numerator: "kilo", Exponent: -3},
			want: "2 kilovolts",
		},
		{
			name: "millisecond denominator fold",
			q:    dimension.Quantity{Coefficient: 2000, Exponents: dimension.Exponents{"metre": 1, "second": -1}},
			sel:  prefix.Selection{Denominator: "milli", Exponent: -3},
			want: "2 metres per millisecond",
		},
		{
			name: "both slots folded",
			q:    dimension.Quantity{Coefficient: 2000, Exponents: dimension.Exponents{"metre": 1, "second": -1}},
			sel:  prefix.Selection{Numerator: "kilo", Denominator: "milli", Exponent: -6},
			want: "0.002 kilometres per millisecond",
		},
		{
			name: "empty selection is plain formatting",
			q:    dimension.Quantity{Coefficient: 1000, Exponents: dimension.Exponents{"metre": 1, "second": -1}},
			sel:  prefix.Selection{},
			want: "1,000 metres per second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithPrefixes(tt.q, tt.sel))
		})
	}
}
