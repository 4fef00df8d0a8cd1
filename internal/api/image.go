package api

import (
	"net/http"

	"accstore-be/internal/storage"

	"github.com/gin-gonic/gin"
)

// resolver is implemented by the local storage driver to map an image URL
// back to an on-disk path for serving.
type resolver interface {
	Resolve(url string) (string, error)
}

func (h *Handler) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer f.Close()

	url, err := h.images.Upload(c.Request.Context(), file.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *Handler) deleteImage(c *gin.Context) {
	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
		return
	}

	if err := h.images.Delete(c.Request.Context(), imageURL); err != nil {
		if err == storage.ErrFileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// serveImage only applies to the local driver; with S3 the recorded URLs
// point at the bucket directly.
func (h *Handler) serveImage(c *gin.Context) {
	res, ok := h.images.(resolver)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}

	path, err := res.Resolve(storage.ImagePathPrefix + c.Param("file"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.File(path)
}
