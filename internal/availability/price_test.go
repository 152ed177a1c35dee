package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdultPrice(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantPrice string
		wantOK    bool
	}{
		{"single class", "Y:1250000", "1250000", true},
		{"valid then placeholder", "X:100 Y:-", "100", true},
		{"placeholder then valid", "X:- Y:100", "100", true},
		{"all placeholders", "X:- Y:-", "", false},
		{"bare placeholder", "-", "", false},
		{"bare number", "980000", "980000", true},
		{"several colons", "Y:A:1:2300000", "2300000", true},
		{"two valid keeps last", "Y:100 M:200", "200", true},
		{"empty string", "", "", false},
		{"double space", "Y:100  C:-", "100", true},
		{"empty last segment", "Y: C:-", "", false},
		{"trailing colon", "Y:", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ParseAdultPrice(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}
