package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    int64
	}{
		{"plain", "85000", 85000},
		{"grouped", "320,000", 320000},
		{"grouped millions", "1,250,000", 1250000},
		{"surrounding space", " 95,000 ", 95000},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"mixed", "12a34", 0},
		{"decimal rejected", "12.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.display))
		})
	}
}

func TestToDisplay(t *testing.T) {
	f := NewFormatter(language.English)

	assert.Equal(t, "320,000", f.ToDisplay(320000))
	assert.Equal(t, "85,000", f.ToDisplay(85000))
	assert.Equal(t, "0", f.ToDisplay(0))
	assert.Equal(t, "1,000,000", f.ToDisplay(1000000))
}

func TestRoundTrip(t *testing.T) {
	f := NewFormatter(language.English)

	for _, n := range []int64{0, 1, 999, 1000, 85000, 320000, 1250000, 999999999} {
		assert.Equal(t, n, ToNumber(f.ToDisplay(n)), "round trip for %d", n)
	}
}
