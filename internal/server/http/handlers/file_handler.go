package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sugarline/cakeshop/internal/server/http/dto"
)

const maxUploadBytes = 8 << 20

// FileHandler manages file upload endpoints.
type FileHandler struct {
	facade FileFacade
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(facade FileFacade) *FileHandler {
	return &FileHandler{facade: facade}
}

// Upload handles POST /api/files. The file is forwarded to the platform and
// the returned reference is used by message images and studio textures.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil || header.Size == 0 || header.Size > maxUploadBytes {
		c.Status(http.StatusBadRequest)
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	ref, err := h.facade.UploadFile(c.Request.Context(), CurrentToken(c), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FileResponse{Ref: ref})
}
