package controllers

import (
	"beautystoreapi/models"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *API) GetCategories(c *gin.Context) {
	rows, err := api.Db.Query(`SELECT id, name FROM categories`)
	if err != nil {
		api.storeError(c, err)
		return
	}

	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.Id, &category.Name); err != nil {
			api.storeError(c, err)
			return
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (api *API) GetCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	err := api.Db.QueryRow(`SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.Id, &category.Name)
	if err == sql.ErrNoRows {
		sendError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		api.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (api *API) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := api.Db.Exec(`INSERT INTO categories (name) VALUES ($1)`, category.Name); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusCreated, "Category added successfully")
}

func (api *API) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := api.Db.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, category.Name, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Category updated successfully")
}

func (api *API) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if _, err := api.Db.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		api.storeError(c, err)
		return
	}

	sendMessage(c, http.StatusOK, "Category deleted successfully")
}
