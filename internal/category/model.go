package category

import "time"

type Category struct {
	ID        string    `json:"id"`
	LabelRU   string    `json:"labelRu"`
	LabelEN   string    `json:"labelEn"`
	Img       string    `json:"img"`
	CreatedAt time.Time `json:"createdAt"`
}

type Subcategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	LabelRU    string    `json:"labelRu"`
	LabelEN    string    `json:"labelEn"`
	Img        string    `json:"img"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CategoryParams carries the writable fields of a category. Img is filled
// by the service once the upload is stored.
type CategoryParams struct {
	ID      string
	LabelRU string
	LabelEN string
	Img     string
}

type SubcategoryParams struct {
	ID         string
	CategoryID string
	LabelRU    string
	LabelEN    string
	Img        string
}
