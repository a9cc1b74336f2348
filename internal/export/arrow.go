// Package export writes grouped country views as Arrow IPC streams, one
// row per country and group it appears in.
package export

import (
	"coursework/internal/models"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/valyala/bytebufferpool"
)

// ContentType is the media type of an Arrow IPC stream.
const ContentType = "application/vnd.apache.arrow.stream"

// Column order of the exported record.
const (
	colGroup = iota
	colSubgroup
	colGroupCount
	colCountry
	colCapital
	colCurrencies
	colLanguages
	colRegion
)

// Schema is the layout of every exported record. subgroup is null for
// single-level views.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "group", Type: arrow.BinaryTypes.String},
	{Name: "subgroup", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "group_count", Type: arrow.PrimitiveTypes.Int64},
	{Name: "country", Type: arrow.BinaryTypes.String},
	{Name: "capital", Type: arrow.BinaryTypes.String},
	{Name: "currencies", Type: arrow.BinaryTypes.String},
	{Name: "languages", Type: arrow.BinaryTypes.String},
	{Name: "region", Type: arrow.BinaryTypes.String},
}, nil)

// WriteView streams view to w and returns the number of rows written.
func WriteView(w io.Writer, view models.CountryView) (int, error) {
	mem := memory.NewGoAllocator()
	b := array.NewRecordBuilder(mem, Schema)
	defer b.Release()

	rows := 0
	for _, g := range view.Groups {
		if len(g.Groups) == 0 {
			rows += appendCards(b, g.Key, nil, g.Count, g.Countries)
			continue
		}
		for _, sub := range g.Groups {
			key := sub.Key
			rows += appendCards(b, g.Key, &key, g.Count, sub.Countries)
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(Schema), ipc.WithAllocator(mem))
	if err := wr.Write(rec); err != nil {
		_ = wr.Close()
		return 0, fmt.Errorf("write arrow record: %w", err)
	}
	if err := wr.Close(); err != nil {
		return 0, fmt.Errorf("close arrow stream: %w", err)
	}
	return rows, nil
}

func appendCards(b *array.RecordBuilder, group string, subgroup *string, count int, cards []models.CountryCard) int {
	for _, c := range cards {
		b.Field(colGroup).(*array.StringBuilder).Append(group)
		if subgroup == nil {
			b.Field(colSubgroup).(*array.StringBuilder).AppendNull()
		} else {
			b.Field(colSubgroup).(*array.StringBuilder).Append(*subgroup)
		}
		b.Field(colGroupCount).(*array.Int64Builder).Append(int64(count))
		b.Field(colCountry).(*array.StringBuilder).Append(c.Name)
		b.Field(colCapital).(*array.StringBuilder).Append(c.Capital)
		b.Field(colCurrencies).(*array.StringBuilder).Append(c.Currencies)
		b.Field(colLanguages).(*array.StringBuilder).Append(c.Languages)
		b.Field(colRegion).(*array.StringBuilder).Append(c.Region)
	}
	return len(cards)
}

// Encode returns the IPC stream of view as a byte slice.
func Encode(view models.CountryView) ([]byte, int, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	rows, err := WriteView(buf, view)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, rows, nil
}
