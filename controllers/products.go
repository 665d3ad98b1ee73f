package controllers

import (
	"beautystoreapi/models"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *API) GetProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	err := api.Db.QueryRow(`
		SELECT id, title, price, image_url, brand_id, info
		FROM products
		WHERE id = $1`, id).
		Scan(&product.Id, &product.Title, &product.Price, &product.ImageUrl, &product.BrandId, &product.Info)
	if err == sql.ErrNoRows {
		sendError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (api *API) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := api.Db.Exec(`
		INSERT INTO products (title, price, image_url, brand_id, info)
		VALUES ($1, $2, $3, $4, $5)`,
		product.Title, product.Price, product.ImageUrl, product.BrandId, product.Info); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusCreated, "Product added successfully")
}

func (api *API) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := api.Db.Exec(`
		UPDATE products
		SET title = $1, price = $2, image_url = $3, brand_id = $4, info = $5
		WHERE id = $6`,
		product.Title, product.Price, product.ImageUrl, product.BrandId, product.Info, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Product updated successfully")
}

// DeleteProduct succeeds even when no row matched; affected-row counts are
// not surfaced to the caller.
func (api *API) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := api.Db.Exec(`DELETE FROM products WHERE id = $1`, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Product deleted successfully")
}

func (api *API) DeleteProductByName(c *gin.Context) {
	var req models.DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// the products schema names this column title, not name
	if _, err := api.Db.Exec(`DELETE FROM products WHERE title = $1`, req.Name); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Product deleted successfully")
}
