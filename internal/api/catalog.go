package api

import (
	"net/http"
	"strconv"

	"accstore-be/internal/category"
	"accstore-be/internal/item"
	"accstore-be/internal/page"
	"accstore-be/internal/storage"

	"github.com/gin-gonic/gin"
)

// imageFromForm pulls the optional image part out of a multipart write.
// The returned closer must be called after the service is done with it.
func imageFromForm(c *gin.Context) (*storage.Upload, func()) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, func() {}
	}

	f, err := file.Open()
	if err != nil {
		return nil, func() {}
	}
	return &storage.Upload{Filename: file.Filename, Reader: f}, func() { f.Close() }
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) createCategory(c *gin.Context) {
	params := category.CategoryParams{
		ID:      c.PostForm("id"),
		LabelRU: c.PostForm("labelRu"),
		LabelEN: c.PostForm("labelEn"),
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	created, err := h.categories.CreateCategory(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateCategory(c *gin.Context) {
	params := category.CategoryParams{
		ID:      c.Param("id"),
		LabelRU: c.PostForm("labelRu"),
		LabelEN: c.PostForm("labelEn"),
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	updated, err := h.categories.UpdateCategory(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listSubcategories(c *gin.Context) {
	subcategories, err := h.categories.ListSubcategories(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *Handler) createSubcategory(c *gin.Context) {
	params := category.SubcategoryParams{
		ID:         c.PostForm("id"),
		CategoryID: c.PostForm("categoryId"),
		LabelRU:    c.PostForm("labelRu"),
		LabelEN:    c.PostForm("labelEn"),
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	created, err := h.categories.CreateSubcategory(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateSubcategory(c *gin.Context) {
	params := category.SubcategoryParams{
		ID:         c.Param("id"),
		CategoryID: c.PostForm("categoryId"),
		LabelRU:    c.PostForm("labelRu"),
		LabelEN:    c.PostForm("labelEn"),
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	updated, err := h.categories.UpdateSubcategory(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteSubcategory(c *gin.Context) {
	if err := h.categories.DeleteSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context(), item.Filter{
		CategoryID:    c.Query("categoryId"),
		SubcategoryID: c.Query("subcategoryId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getItem(c *gin.Context) {
	it, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func itemParamsFromForm(c *gin.Context, id string) (item.Params, error) {
	price := 0.0
	if raw := c.PostForm("price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return item.Params{}, item.ErrInvalidPrice
		}
		price = parsed
	}

	return item.Params{
		ID:            id,
		CategoryID:    c.PostForm("categoryId"),
		SubcategoryID: c.PostForm("subcategoryId"),
		Name:          c.PostForm("name"),
		Price:         price,
		DescriptionRU: c.PostForm("descriptionRu"),
		DescriptionEN: c.PostForm("descriptionEn"),
	}, nil
}

func (h *Handler) createItem(c *gin.Context) {
	params, err := itemParamsFromForm(c, c.PostForm("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	created, err := h.items.Create(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateItem(c *gin.Context) {
	params, err := itemParamsFromForm(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	image, closeImage := imageFromForm(c)
	defer closeImage()

	updated, err := h.items.Update(c.Request.Context(), params, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteItem(c *gin.Context) {
	if err := h.items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type pageRequest struct {
	ID          string `json:"id"`
	TitleRU     string `json:"titleRu"`
	TitleEN     string `json:"titleEn"`
	ContentType string `json:"contentType"`
	ContentRU   string `json:"contentRu"`
	ContentEN   string `json:"contentEn"`
}

func (r pageRequest) params(id string) page.Params {
	if id == "" {
		id = r.ID
	}
	return page.Params{
		ID:          id,
		TitleRU:     r.TitleRU,
		TitleEN:     r.TitleEN,
		ContentType: page.ContentType(r.ContentType),
		ContentRU:   r.ContentRU,
		ContentEN:   r.ContentEN,
	}
}

func (h *Handler) listPages(c *gin.Context) {
	pages, err := h.pages.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *Handler) getPage(c *gin.Context) {
	p, err := h.pages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) createPage(c *gin.Context) {
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.pages.Create(c.Request.Context(), req.params(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updatePage(c *gin.Context) {
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.pages.Update(c.Request.Context(), req.params(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deletePage(c *gin.Context) {
	if err := h.pages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
