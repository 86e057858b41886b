package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrail(t *testing.T) {
	var trail Trail
	trail.Addf("tax", "%d on base %d", 50, 200)
	trail.Addf("legal-reserve", "")

	assert.Equal(t, []string{"tax: 50 on base 200", "legal-reserve"}, trail.Strings())
}

func TestTrail_Empty(t *testing.T) {
	var trail Trail
	assert.Empty(t, trail.Strings())
}
