package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// ExportProducts streams the flat product join as an xlsx workbook.
func (api *API) ExportProducts(c *gin.Context) {
	flat, err := api.getCatalogRows()
	if err != nil {
		api.storeError(c, err)
		return
	}

	if len(flat) == 0 {
		sendError(c, http.StatusNotFound, "No products to export")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	if err := f.SetColWidth(sheet, "A", "E", 40); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "Category"},
		excelize.Cell{StyleID: headerStyle, Value: "Brand"},
		excelize.Cell{StyleID: headerStyle, Value: "Title"},
		excelize.Cell{StyleID: headerStyle, Value: "Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Info"}}); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	for n, item := range flat {
		row := make([]interface{}, 5)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: item.CategoryName}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: item.BrandName}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: item.Title}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: fmt.Sprintf("$%s", humanize.Commaf(item.Price))}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: item.Info}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			api.Log.Println(err)
			sendError(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	fileName := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		api.Log.Println(err)
		sendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
}
