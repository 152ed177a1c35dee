package airport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "مشهد", Name("MHD"))
	assert.Equal(t, "مشهد", Name(" mhd "))
	assert.Equal(t, "", Name("XXX"))
	assert.Equal(t, "تهران", NewDirectory().CityName("THR"))
}
