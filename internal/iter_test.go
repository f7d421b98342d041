package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(Single("H"), slices.Values([]string{"T1", "T2"}), Single("E"))
	assert.Equal([]string{"H", "T1", "T2", "E"}, slices.Collect(seq))

	// Early stop.
	var got []string
	for val := range seq {
		got = append(got, val)
		if val == "T1" {
			break
		}
	}
	assert.Equal([]string{"H", "T1"}, got)

	assert.Empty(slices.Collect(Concat[int]()))
}
