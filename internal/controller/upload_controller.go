package controller

import (
	"net/http"

	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// @Summary Upload a question image
// @Description Stores the image and returns the path to save as the question's imagePath
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /api/uploads/question-image [post]
func (c *UploadController) UploadQuestionImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.Error(ctx, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	imagePath, err := c.StorageService.UploadQuestionImage(ctx.Request.Context(), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	util.Created(ctx, gin.H{"imagePath": imagePath})
}
