package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddThenRemoveAllMatching(t *testing.T) {
	c := NewController(nil)

	c.AddToCart(7)
	c.AddToCart(9)
	c.AddToCart(7)
	assert.Equal(t, []int{7, 9, 7}, c.Items())
	assert.Equal(t, 2, c.Count(7))

	c.RemoveItem(7)
	assert.Equal(t, []int{9}, c.Items())
	assert.Equal(t, 1, c.Len())
}

func TestRemoveItem(t *testing.T) {
	tests := map[string]struct {
		start  []int
		remove int
		want   []int
	}{
		"adjacent duplicates are not skipped": {
			start:  []int{5, 5, 5, 5},
			remove: 5,
			want:   []int{},
		},
		"interleaved keeps order of the rest": {
			start:  []int{1, 2, 1, 3, 1, 4},
			remove: 1,
			want:   []int{2, 3, 4},
		},
		"missing id is a no-op": {
			start:  []int{1, 2},
			remove: 3,
			want:   []int{1, 2},
		},
		"empty cart": {
			start:  nil,
			remove: 1,
			want:   []int{},
		},
		"last element": {
			start:  []int{1, 2, 2},
			remove: 2,
			want:   []int{1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewController(nil)
			for _, id := range tt.start {
				c.AddToCart(id)
			}
			c.RemoveItem(tt.remove)

			got := c.Items()
			if got == nil {
				got = []int{}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := NewController(nil)
	c.AddToCart(1)
	items := c.Items()
	items[0] = 99
	assert.Equal(t, []int{1}, c.Items())
}
