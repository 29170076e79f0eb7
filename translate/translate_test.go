package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("'X' is not a register", From("'%v' is not a register", "X"))
	assert.Equal("line 7", From("line %d", 7))
}
