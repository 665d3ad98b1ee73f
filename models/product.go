package models

type Product struct {
	Id       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageUrl string  `json:"image_url"`
	BrandId  int64   `json:"brand_id"`
	Info     string  `json:"info"`
}

// DeleteProductRequest carries the body of DELETE /products. The wire field
// has always been called name even though the column it matches is title.
type DeleteProductRequest struct {
	Name string `json:"name"`
}
