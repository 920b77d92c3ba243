package mapper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{}, MapSlice[int, string](nil, func(i int) string { return "" }))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, func(i int) string { return fmt.Sprint(i) }))
}

func TestMapSliceWithError(t *testing.T) {
	out, err := MapSliceWithError([]int{1, 2}, func(i int) (int, error) { return i * 10, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, out)

	boom := errors.New("boom")
	_, err = MapSliceWithError([]int{1, 2}, func(i int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		return i, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "item 1")
}
