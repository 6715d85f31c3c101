package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueIsValid(t *testing.T) {
	assert.True(t, ValueZero.IsValid())
	assert.True(t, ValueInfinite.IsValid())
	assert.False(t, ValueNA.IsValid())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "0", ValueZero.String())
	assert.Equal(t, "N/A", ValueNA.String())
	assert.Equal(t, "-64", Value(-64).String())
}
