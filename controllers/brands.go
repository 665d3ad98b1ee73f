package controllers

import (
	"beautystoreapi/models"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *API) GetBrands(c *gin.Context) {
	rows, err := api.Db.Query(`SELECT id, name, category_id FROM brands`)
	if err != nil {
		api.storeError(c, err)
		return
	}

	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(&brand.Id, &brand.Name, &brand.CategoryId); err != nil {
			api.storeError(c, err)
			return
		}

		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, brands)
}

func (api *API) GetBrand(c *gin.Context) {
	id := c.Param("id")

	var brand models.Brand
	err := api.Db.QueryRow(`SELECT id, name, category_id FROM brands WHERE id = $1`, id).
		Scan(&brand.Id, &brand.Name, &brand.CategoryId)
	if err == sql.ErrNoRows {
		sendError(c, http.StatusNotFound, "Brand not found")
		return
	}
	if err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

func (api *API) CreateBrand(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if brand.CategoryId == 0 {
		sendError(c, http.StatusBadRequest, "Category ID is required")
		return
	}

	if _, err := api.Db.Exec(`INSERT INTO brands (name, category_id) VALUES ($1, $2)`,
		brand.Name, brand.CategoryId); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusCreated, "Brand added successfully")
}

// UpdateBrand checks that the target category exists before writing. The
// check and the update are two independent statements, so a concurrent
// category delete can still slip between them.
func (api *API) UpdateBrand(c *gin.Context) {
	id := c.Param("id")

	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var categoryId int64
	err := api.Db.QueryRow(`SELECT id FROM categories WHERE id = $1`, brand.CategoryId).Scan(&categoryId)
	if err == sql.ErrNoRows {
		sendError(c, http.StatusBadRequest, "Invalid category_id. Category does not exist.")
		return
	}
	if err != nil {
		api.storeError(c, err)
		return
	}

	if _, err := api.Db.Exec(`UPDATE brands SET name = $1, category_id = $2 WHERE id = $3`,
		brand.Name, brand.CategoryId, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Brand updated successfully")
}

func (api *API) DeleteBrand(c *gin.Context) {
	id := c.Param("id")

	if _, err := api.Db.Exec(`DELETE FROM brands WHERE id = $1`, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Brand deleted successfully")
}
