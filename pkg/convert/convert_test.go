package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/libris/pkg/convert"
)

func TestFlag(t *testing.T) {
	for _, on := range []string{"true", "TRUE", "True", "1", " true "} {
		assert.True(t, convert.Flag(on), on)
	}
	for _, off := range []string{"", "false", "0", "yes", "no", "2"} {
		assert.False(t, convert.Flag(off), off)
	}
}

func TestOptionalInt(t *testing.T) {
	n, ok := convert.OptionalInt("42")
	assert.True(t, ok)
	assert.Equal(t, 42, *n)

	n, ok = convert.OptionalInt("")
	assert.True(t, ok)
	assert.Nil(t, n)

	n, ok = convert.OptionalInt("abc")
	assert.False(t, ok)
	assert.Nil(t, n)
}
