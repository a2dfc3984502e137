package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/camcolor/pkg/emath"
)

func TestParseWB(t *testing.T) {
	wb, err := parseWB("2.0, 1.0,1.4")
	assert.NoError(t, err)
	assert.Equal(t, emath.Vec4{2, 1, 1.4, 0}, wb)

	wb, err = parseWB("2,1,1.4,1")
	assert.NoError(t, err)
	assert.Equal(t, emath.Vec4{2, 1, 1.4, 1}, wb)

	for _, bad := range []string{"", "1,2", "1,2,3,4,5", "1,x,3"} {
		_, err := parseWB(bad)
		assert.Error(t, err, bad)
	}
}
