package domain

import "strings"

type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryFish       Category = "Fish"
	CategoryProduce    Category = "Produce"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat"
	CategoryGrains     Category = "Grains"
	CategoryCondiments Category = "Condiments"
	CategoryOther      Category = "Other"
)

var Categories = []Category{
	CategoryFish,
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryGrains,
	CategoryCondiments,
	CategoryOther,
}

// ParseCategory maps a raw category string onto the fixed taxonomy.
// Anything unrecognized lands in Other.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c
		}
	}
	return CategoryOther
}

type Column int

const (
	ColumnLeft  Column = 1
	ColumnRight Column = 2
)

// Static assignment of categories to the two display columns.
var categoryColumns = map[Category]Column{
	CategoryFish:       ColumnLeft,
	CategoryProduce:    ColumnLeft,
	CategoryDairy:      ColumnLeft,
	CategoryMeat:       ColumnRight,
	CategoryGrains:     ColumnRight,
	CategoryCondiments: ColumnRight,
	CategoryOther:      ColumnRight,
}

func (c Category) Column() Column {
	if col, ok := categoryColumns[c]; ok {
		return col
	}
	return ColumnRight
}
