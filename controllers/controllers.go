package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var (
	s1 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1,
			"color": ["#96b753"]
		},
		"font": {
			"bold": true
		},
		"alignment": {
			"shrink_to_fit": true,
			"horizontal": "center"
		}
	}
	`
	s2 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1
		},
		"alignment": {
			"shrink_to_fit": true
		}
	}
	`
)

type GenericResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type API struct {
	Db  *sql.DB
	Log *logrus.Logger
}

func NewAPI() *API {
	return &API{Log: logrus.New()}
}

func sendMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"message": msg,
	})
}

func sendError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}

// storeError logs the store failure server-side and answers with a generic
// 500. SQLSTATE detail stays in the logs, never in the response.
func (api *API) storeError(c *gin.Context, err error) {
	entry := api.Log.WithError(err)
	if pqErr, ok := err.(*pq.Error); ok {
		entry = entry.WithField("sqlstate", string(pqErr.Code))
	}
	if requestId := c.GetString("request_id"); requestId != "" {
		entry = entry.WithField("request_id", requestId)
	}
	entry.Error("store failure")

	sendError(c, http.StatusInternalServerError, "Internal Server Error")
}
