package models

import (
	"bytes"
	"encoding/json"
)

// CatalogRow is one row of the product/brand/category join feeding the
// nested catalog response. Grouping happens by name, not id.
type CatalogRow struct {
	CategoryName string
	BrandName    string
	Title        string
	Price        float64
	ImageUrl     string
	Info         string
}

type Catalog struct {
	Categories []*CatalogCategory `json:"categories"`
}

type CatalogCategory struct {
	Name   string    `json:"name"`
	Brands *BrandMap `json:"brands"`
}

type CatalogBrand struct {
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

type CatalogItem struct {
	Title string       `json:"title"`
	Price string       `json:"price"`
	Image CatalogImage `json:"image"`
	Info  string       `json:"info"`
}

type CatalogImage struct {
	Fields CatalogImageFields `json:"fields"`
}

type CatalogImageFields struct {
	File CatalogImageFile `json:"file"`
}

type CatalogImageFile struct {
	Url string `json:"url"`
}

// BrandMap is an ordered association from brand name to brand node. It
// serializes as a JSON object whose keys keep first-seen insertion order,
// which plain map iteration would not guarantee.
type BrandMap struct {
	brands []*CatalogBrand
	index  map[string]*CatalogBrand
}

func NewBrandMap() *BrandMap {
	return &BrandMap{index: make(map[string]*CatalogBrand)}
}

func (m *BrandMap) Get(name string) *CatalogBrand {
	return m.index[name]
}

func (m *BrandMap) Add(brand *CatalogBrand) {
	m.index[brand.Name] = brand
	m.brands = append(m.brands, brand)
}

func (m *BrandMap) Len() int {
	return len(m.brands)
}

func (m *BrandMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, brand := range m.brands {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(brand.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(brand)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
