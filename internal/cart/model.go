package cart

// Line is one entry of a session's cart, keyed by item id. The JSON shape
// matches what the storefront keeps under its "cartItems" storage key.
type Line struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Img           string  `json:"img"`
	CategoryID    string  `json:"categoryId"`
	SubcategoryID string  `json:"subcategoryId"`
	TimeAdded     string  `json:"timeAdded"`
	Quantity      int     `json:"quantity"`
}
