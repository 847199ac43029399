package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joannadeng/49.capstone-project-backend/internal/service"
)

const maxImageSize = 5 << 20 // 5 MiB

// ImageHandler serves image uploads for created recipes.
type ImageHandler struct {
	imageService service.IImageService
}

func NewImageHandler(imageService service.IImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload handles POST /users/:username/createRecipe/:id/image with a
// multipart "image" field.
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.imageService == nil {
		writeError(c, http.StatusServiceUnavailable, "image uploads are not configured")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		writeError(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		writeError(c, http.StatusBadRequest, "image exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	imageURL, err := h.imageService.UploadRecipeImage(c.Request.Context(), c.Param("username"), recipeID, file, contentType)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
