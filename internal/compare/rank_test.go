package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
)

func phone(id string, price int, specs catalog.Specs) catalog.Phone {
	return catalog.Phone{ID: id, Name: id, Price: price, Specs: specs}
}

func TestRankAttribute_Battery(t *testing.T) {
	items := []catalog.Phone{
		phone("s24", 1299, catalog.Specs{Battery: "5000 mAh"}),
		phone("ip15", 999, catalog.Specs{Battery: "3274 mAh"}),
		phone("np2", 599, catalog.Specs{Battery: "4700 mAh"}),
	}

	got := compare.RankAttribute(compare.AttrBattery, items)

	assert.Equal(t, map[string]compare.Class{
		"s24":  compare.ClassBest,
		"np2":  compare.ClassMiddle,
		"ip15": compare.ClassWorst,
	}, got)
}

func TestRankAttribute_ScreenSizeDecimal(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 1, catalog.Specs{ScreenSize: `6.82"`}),
		phone("b", 1, catalog.Specs{ScreenSize: `6.8"`}),
		phone("c", 1, catalog.Specs{ScreenSize: `6.1"`}),
	}

	got := compare.RankAttribute(compare.AttrScreenSize, items)

	assert.Equal(t, compare.ClassBest, got["a"])
	assert.Equal(t, compare.ClassMiddle, got["b"])
	assert.Equal(t, compare.ClassWorst, got["c"])
}

func TestRankAttribute_ScreenSizeReadsLeadingDecimal(t *testing.T) {
	items := []catalog.Phone{
		phone("inches", 1, catalog.Specs{ScreenSize: "6.7 inches"}),
		phone("hyphen", 1, catalog.Specs{ScreenSize: "6.2-inch"}),
		phone("mark", 1, catalog.Specs{ScreenSize: `6.1”`}),
		phone("none", 1, catalog.Specs{ScreenSize: "large"}),
	}

	got := compare.RankAttribute(compare.AttrScreenSize, items)

	assert.Equal(t, map[string]compare.Class{
		"inches": compare.ClassBest,
		"hyphen": compare.ClassMiddle,
		"mark":   compare.ClassWorst,
		"none":   compare.ClassMiddle,
	}, got)
}

func TestRankAttribute_TieAtTopSharesBest(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 1, catalog.Specs{RAM: "12 GB"}),
		phone("b", 1, catalog.Specs{RAM: "12 GB"}),
		phone("c", 1, catalog.Specs{RAM: "8 GB"}),
	}

	got := compare.RankAttribute(compare.AttrRAM, items)

	assert.Equal(t, compare.ClassBest, got["a"])
	assert.Equal(t, compare.ClassBest, got["b"])
	assert.Equal(t, compare.ClassWorst, got["c"])
}

func TestRankAttribute_AllEqualAreBest(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 1, catalog.Specs{Storage: "128 GB"}),
		phone("b", 1, catalog.Specs{Storage: "128 GB"}),
	}

	got := compare.RankAttribute(compare.AttrStorage, items)

	assert.Equal(t, compare.ClassBest, got["a"])
	assert.Equal(t, compare.ClassBest, got["b"])
}

func TestRankAttribute_ProcessorIsAlwaysNeutral(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 1, catalog.Specs{Processor: "A17 Pro"}),
		phone("b", 1, catalog.Specs{Processor: "Snapdragon 8 Gen 3"}),
	}

	got := compare.RankAttribute(compare.AttrProcessor, items)

	assert.Equal(t, compare.ClassMiddle, got["a"])
	assert.Equal(t, compare.ClassMiddle, got["b"])
}

func TestRankAttribute_UnparseableValueFallsBackToMiddle(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 1, catalog.Specs{Camera: "unknown"}),
		phone("b", 1, catalog.Specs{Camera: "50 MP"}),
		phone("c", 1, catalog.Specs{Camera: "200 MP"}),
	}

	got := compare.RankAttribute(compare.AttrCamera, items)

	assert.Equal(t, compare.ClassMiddle, got["a"])
	assert.Equal(t, compare.ClassWorst, got["b"])
	assert.Equal(t, compare.ClassBest, got["c"])
}

func TestRankAttribute_FewerThanTwoItemsIsEmpty(t *testing.T) {
	one := []catalog.Phone{phone("a", 1, catalog.Specs{Battery: "1 mAh"})}

	assert.Empty(t, compare.RankAttribute(compare.AttrBattery, one))
	assert.Empty(t, compare.RankAttribute(compare.AttrBattery, nil))
	assert.Empty(t, compare.RankPrice(one))
}

func TestRankPrice_CheapestBestDearestWorst(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 999, catalog.Specs{}),
		phone("b", 449, catalog.Specs{}),
		phone("c", 799, catalog.Specs{}),
	}

	got := compare.RankPrice(items)

	assert.Equal(t, compare.ClassWorst, got["a"])
	assert.Equal(t, compare.ClassBest, got["b"])
	assert.Equal(t, compare.ClassMiddle, got["c"])
}

func TestRankPrice_EqualPricesAreBothBest(t *testing.T) {
	items := []catalog.Phone{
		phone("a", 999, catalog.Specs{}),
		phone("b", 999, catalog.Specs{}),
	}

	got := compare.RankPrice(items)

	assert.Equal(t, map[string]compare.Class{"a": compare.ClassBest, "b": compare.ClassBest}, got)
	assert.Equal(t, got, compare.RankAttribute(compare.AttrPrice, items))
}

func TestRankAttribute_CatalogPhones(t *testing.T) {
	items := catalog.Resolve([]string{"galaxy-s24-ultra", "iphone-15-pro", "nothing-phone-2"})
	require.Len(t, items, 3)

	got := compare.RankAttribute(compare.AttrBattery, items)

	assert.Equal(t, compare.ClassBest, got["galaxy-s24-ultra"])
	assert.Equal(t, compare.ClassMiddle, got["nothing-phone-2"])
	assert.Equal(t, compare.ClassWorst, got["iphone-15-pro"])
}

func TestParseAttributeKey(t *testing.T) {
	tests := []struct {
		input string
		want  compare.AttributeKey
	}{
		{"battery", compare.AttrBattery},
		{"screen-size", compare.AttrScreenSize},
		{"ScreenSize", compare.AttrScreenSize},
		{"screen", compare.AttrScreenSize},
		{"RAM", compare.AttrRAM},
		{"price", compare.AttrPrice},
	}
	for _, tt := range tests {
		got, ok := compare.ParseAttributeKey(tt.input)
		assert.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, ok := compare.ParseAttributeKey("weight")
	assert.False(t, ok)
}

func TestAttributes_NonComparableEntriesAreNeverParsed(t *testing.T) {
	for _, attr := range compare.Attributes {
		if attr.Comparable {
			assert.NotNil(t, attr.Parse, attr.Key)
			continue
		}
		items := []catalog.Phone{
			phone("a", 1, catalog.Specs{Processor: "A17 Pro"}),
			phone("b", 1, catalog.Specs{Processor: "Tensor G3"}),
		}
		got := compare.RankAttribute(attr.Key, items)
		assert.Equal(t, compare.ClassMiddle, got["a"], attr.Key)
		assert.Equal(t, compare.ClassMiddle, got["b"], attr.Key)
	}
}

func TestSelectRows(t *testing.T) {
	rows := compare.Table(catalog.Resolve([]string{"iphone-15-pro", "pixel-8-pro"}))

	picked := compare.SelectRows(rows, []compare.AttributeKey{compare.AttrRAM, compare.AttrBattery})
	require.Len(t, picked, 2)
	assert.Equal(t, compare.AttrBattery, picked[0].Key)
	assert.Equal(t, compare.AttrRAM, picked[1].Key)

	assert.Equal(t, rows, compare.SelectRows(rows, nil))
}

func TestTable(t *testing.T) {
	items := catalog.Resolve([]string{"iphone-15-pro", "pixel-8-pro"})

	rows := compare.Table(items)

	require.Len(t, rows, len(compare.Attributes)+1)
	price := rows[0]
	assert.Equal(t, compare.AttrPrice, price.Key)
	assert.True(t, price.Highlight)
	require.Len(t, price.Cells, 2)
	assert.Equal(t, "iphone-15-pro", price.Cells[0].PhoneID)
	assert.Equal(t, "$999", price.Cells[0].Display)
	assert.Equal(t, compare.ClassBest, price.Cells[0].Class)
	assert.Equal(t, compare.ClassBest, price.Cells[1].Class)

	processor := rows[len(rows)-1]
	assert.Equal(t, compare.AttrProcessor, processor.Key)
	assert.False(t, processor.Highlight)

	battery := rows[1]
	assert.Equal(t, "Battery", battery.Label)
	assert.Equal(t, compare.ClassWorst, battery.Cells[0].Class)
	assert.Equal(t, compare.ClassBest, battery.Cells[1].Class)

	assert.Nil(t, compare.Table(items[:1]))
}
