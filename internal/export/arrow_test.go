package export

import (
	"bytes"
	"coursework/internal/models"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(name, region string) models.CountryCard {
	return models.CountryCard{Name: name, Region: region, Capital: "N/A", Currencies: "N/A", Languages: "N/A"}
}

func readAll(t *testing.T, data []byte) (groups, subgroups, names []string, counts []int64, nulls int) {
	t.Helper()
	r, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(memory.NewGoAllocator()))
	require.NoError(t, err)
	defer r.Release()

	assert.True(t, r.Schema().Equal(Schema))
	for r.Next() {
		rec := r.Record()
		g := rec.Column(colGroup).(*array.String)
		s := rec.Column(colSubgroup).(*array.String)
		c := rec.Column(colGroupCount).(*array.Int64)
		n := rec.Column(colCountry).(*array.String)
		for i := 0; i < int(rec.NumRows()); i++ {
			groups = append(groups, g.Value(i))
			if s.IsNull(i) {
				nulls++
			} else {
				subgroups = append(subgroups, s.Value(i))
			}
			counts = append(counts, c.Value(i))
			names = append(names, n.Value(i))
		}
	}
	require.NoError(t, r.Err())
	return
}

func TestEncode_Flat(t *testing.T) {
	view := models.CountryView{
		Filter: "region",
		Groups: []models.CountryGroup{
			{Key: "Europe", Count: 2, Countries: []models.CountryCard{card("France", "Europe"), card("Poland", "Europe")}},
			{Key: "Asia", Count: 1, Countries: []models.CountryCard{card("Japan", "Asia")}},
		},
	}

	data, rows, err := Encode(view)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	groups, subgroups, names, counts, nulls := readAll(t, data)
	assert.Equal(t, []string{"Europe", "Europe", "Asia"}, groups)
	assert.Empty(t, subgroups)
	assert.Equal(t, 3, nulls)
	assert.Equal(t, []string{"France", "Poland", "Japan"}, names)
	assert.Equal(t, []int64{2, 2, 1}, counts)
}

func TestEncode_TwoLevel(t *testing.T) {
	view := models.CountryView{
		Filter: "subregion",
		Groups: []models.CountryGroup{
			{Key: "Europe", Count: 3, Groups: []models.CountryGroup{
				{Key: "Western Europe", Count: 2, Countries: []models.CountryCard{card("France", "Europe"), card("Germany", "Europe")}},
				{Key: "Central Europe", Count: 1, Countries: []models.CountryCard{card("Poland", "Europe")}},
			}},
		},
	}

	data, rows, err := Encode(view)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	groups, subgroups, names, _, nulls := readAll(t, data)
	assert.Equal(t, []string{"Europe", "Europe", "Europe"}, groups)
	assert.Equal(t, []string{"Western Europe", "Western Europe", "Central Europe"}, subgroups)
	assert.Zero(t, nulls)
	assert.Equal(t, []string{"France", "Germany", "Poland"}, names)
}

func TestEncode_Empty(t *testing.T) {
	data, rows, err := Encode(models.CountryView{Filter: "region"})
	require.NoError(t, err)
	assert.Zero(t, rows)

	_, _, names, _, _ := readAll(t, data)
	assert.Empty(t, names)
}
