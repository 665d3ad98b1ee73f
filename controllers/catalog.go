package controllers

import (
	"beautystoreapi/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// preferredCategories fixes the order of the catalog response. A listed
// category with no rows keeps its slot as null; a category in the data but
// not on the list is dropped from the response.
var preferredCategories = []string{
	"Skin Care Products",
	"Hair Products",
	"Make-Up Products",
	"Accessories",
}

const catalogQuery = `
	SELECT c.name, b.name, p.title, p.price, p.image_url, p.info
	FROM products p
	JOIN brands b ON p.brand_id = b.id
	JOIN categories c ON b.category_id = c.id`

func (api *API) GetCatalog(c *gin.Context) {
	flat, err := api.getCatalogRows()
	if err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildCatalog(flat))
}

func (api *API) getCatalogRows() (flat []models.CatalogRow, err error) {
	rows, err := api.Db.Query(catalogQuery)
	if err != nil {
		api.Log.Println(err)
		return
	}

	defer rows.Close()

	for rows.Next() {
		var row models.CatalogRow
		err = rows.Scan(&row.CategoryName, &row.BrandName, &row.Title, &row.Price, &row.ImageUrl, &row.Info)
		if err != nil {
			api.Log.Println(err)
			return
		}

		flat = append(flat, row)
	}

	err = rows.Err()
	return
}

// buildCatalog groups the flat join rows into category -> brand -> items in
// a single pass, keeping first-seen order at each level, then reorders the
// top level along preferredCategories.
func buildCatalog(flat []models.CatalogRow) models.Catalog {
	byName := make(map[string]*models.CatalogCategory)

	for _, row := range flat {
		category, ok := byName[row.CategoryName]
		if !ok {
			category = &models.CatalogCategory{Name: row.CategoryName, Brands: models.NewBrandMap()}
			byName[row.CategoryName] = category
		}

		brand := category.Brands.Get(row.BrandName)
		if brand == nil {
			brand = &models.CatalogBrand{Name: row.BrandName, Items: []models.CatalogItem{}}
			category.Brands.Add(brand)
		}

		brand.Items = append(brand.Items, models.CatalogItem{
			Title: row.Title,
			Price: strconv.FormatFloat(row.Price, 'f', 2, 64),
			Image: models.CatalogImage{
				Fields: models.CatalogImageFields{
					File: models.CatalogImageFile{Url: row.ImageUrl},
				},
			},
			Info: row.Info,
		})
	}

	catalog := models.Catalog{Categories: make([]*models.CatalogCategory, 0, len(preferredCategories))}
	for _, name := range preferredCategories {
		catalog.Categories = append(catalog.Categories, byName[name])
	}

	return catalog
}
