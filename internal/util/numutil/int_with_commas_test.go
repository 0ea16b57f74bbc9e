package numutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntWithCommas(t *testing.T) {
	assert.Equal(t, "0", IntWithCommas(0))
	assert.Equal(t, "999", IntWithCommas(999))
	assert.Equal(t, "1,000", IntWithCommas(1000))
	assert.Equal(t, "12,345", IntWithCommas(12345))
	assert.Equal(t, "1,000,000", IntWithCommas(1000000))
	assert.Equal(t, "-12,345", IntWithCommas(-12345))
}
