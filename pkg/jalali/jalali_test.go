package jalali

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGregorianString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1399/01/01", "2020-03-20"},
		{"1403/01/01", "2024-03-20"},
		{"1403/05/20", "2024-08-10"},
		{"1403-05-20", "2024-08-10"},
		{" 1402/10/11 ", "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToGregorianString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToGregorianString_Invalid(t *testing.T) {
	for _, in := range []string{"", "1403/05", "1403/13/01", "1403/00/10", "abcd/01/01", "1403/07/31"} {
		t.Run(in, func(t *testing.T) {
			_, err := ToGregorianString(in)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestConverter(t *testing.T) {
	got, err := NewConverter().ToGregorianString("1403/05/20")
	require.NoError(t, err)
	assert.Equal(t, "2024-08-10", got)
}

func TestMonthLength(t *testing.T) {
	assert.Equal(t, 31, monthLength(1403, 1))
	assert.Equal(t, 30, monthLength(1403, 7))
	assert.Equal(t, 30, monthLength(1403, 12))
	assert.Equal(t, 29, monthLength(1402, 12))
}
