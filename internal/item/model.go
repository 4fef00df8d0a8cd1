package item

import "time"

type Item struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"categoryId"`
	SubcategoryID string    `json:"subcategoryId"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	DescriptionRU string    `json:"descriptionRu"`
	DescriptionEN string    `json:"descriptionEn"`
	Img           string    `json:"img"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Params struct {
	ID            string
	CategoryID    string
	SubcategoryID string
	Name          string
	Price         float64
	DescriptionRU string
	DescriptionEN string
	Img           string
}

// Filter narrows listings; zero values mean no constraint.
type Filter struct {
	CategoryID    string
	SubcategoryID string
}
