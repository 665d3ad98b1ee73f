package controllers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parsePayload(p interface{}) *bytes.Buffer {
	data, _ := json.Marshal(p)
	return bytes.NewBuffer(data)
}
