package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictAssignsIDsInFirstSeenOrder(t *testing.T) {
	d := NewDict()

	assert.Equal(t, int32(0), d.ID("Europe"))
	assert.Equal(t, int32(1), d.ID("Asia"))
	assert.Equal(t, int32(0), d.ID("Europe"))
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "Asia", d.Key(1))

	_, ok := d.Lookup("Oceania")
	assert.False(t, ok)
}

func TestBucketStoreSize(t *testing.T) {
	s := newBucketStore[int]()
	s.add("odd", 1)
	s.add("even", 2)
	s.add("odd", 3)

	assert.Equal(t, 3, s.size())
	g := s.groups()
	assert.Equal(t, []string{"odd", "even"}, g.Keys())
}
