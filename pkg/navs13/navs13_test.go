package navs13

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_Formatting(t *testing.T) {
	n := MustParse("7564965766560")

	assert.Equal(t, "756.4965.7665.60", n.String())
	assert.Equal(t, "7564965766560", n.Compact())
	assert.Equal(t, [3]uint8{7, 5, 6}, n.CountryCode())
	assert.False(t, n.IsZero())
}

func TestNumber_ZeroValue(t *testing.T) {
	var n Number
	assert.True(t, n.IsZero())
	assert.Equal(t, "000.0000.0000.00", n.String())
}

func TestNumber_ValueSemantics(t *testing.T) {
	n := MustParse("756.1234.5678.97")
	digits := n.Digits()
	digits[0] = 9

	assert.Equal(t, uint8(7), n.Digits()[0])
}

func TestNumber_CountryCodeIsACopy(t *testing.T) {
	n := MustParse("756.1234.5678.97")
	cc := n.CountryCode()
	cc[0], cc[1], cc[2] = 4, 7, 1

	assert.Equal(t, [3]uint8{7, 5, 6}, n.CountryCode())
	assert.Equal(t, [3]uint8{7, 5, 6}, Generate(NewSequenceSource(4, 7, 1)).CountryCode())

	_, err := Parse("471.9512.0028.89")
	assert.Equal(t, InvalidCountryCode, KindOf(err))
}
