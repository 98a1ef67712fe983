package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3990", 3990},
		{"3,990", 3990},
		{"1,314.97", 1314.97},
		{" 19.00 ", 19},
		{"", 0},
		{"n/a", 0},
		{"12.34.56", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseNumber(tc.in), "input %q", tc.in)
	}
}

func TestReconstructRate(t *testing.T) {
	assert.Equal(t, 0.07894, ReconstructRate("07894"))
	assert.Equal(t, 0.0, ReconstructRate(""))
	assert.Equal(t, 0.0, ReconstructRate("   "))
	assert.Equal(t, 0.0, ReconstructRate("0"))
	assert.Equal(t, 0.5, ReconstructRate("5"))
}
