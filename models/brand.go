package models

type Brand struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryId int64  `json:"category_id"`
}
