package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/server/http/dto"
)

// StudioHandler manages 3D customization scene endpoints.
type StudioHandler struct {
	facade StudioFacade
}

// NewStudioHandler constructs StudioHandler.
func NewStudioHandler(facade StudioFacade) *StudioHandler {
	return &StudioHandler{facade: facade}
}

// Scene handles GET /api/sessions/:id/studio.
func (h *StudioHandler) Scene(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	scene, err := h.facade.StudioScene(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}

// SetColor handles PUT /api/sessions/:id/studio/colors.
func (h *StudioHandler) SetColor(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.StudioColorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Part == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	scene, err := h.facade.SetStudioColor(c.Request.Context(), id, req.Part, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}

// SetTexture handles PUT /api/sessions/:id/studio/textures.
func (h *StudioHandler) SetTexture(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.StudioTextureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Part == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	scene, err := h.facade.SetStudioTexture(c.Request.Context(), id, req.Part, req.TextureRef)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}

// AddText handles POST /api/sessions/:id/studio/texts.
func (h *StudioHandler) AddText(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.StudioTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	scene, err := h.facade.AddStudioText(c.Request.Context(), id, model.StudioText{
		Content:  req.Content,
		Color:    req.Color,
		Font:     req.Font,
		Position: req.Position,
		Scale:    req.Scale,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StudioResponse{Scene: *scene})
}

// RemoveText handles DELETE /api/sessions/:id/studio/texts/:textID.
func (h *StudioHandler) RemoveText(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	scene, err := h.facade.RemoveStudioText(c.Request.Context(), id, c.Param("textID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}

// AddTopping handles POST /api/sessions/:id/studio/toppings.
func (h *StudioHandler) AddTopping(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.StudioToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Kind == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	scene, err := h.facade.AddStudioTopping(c.Request.Context(), id, model.StudioTopping{
		Kind:     req.Kind,
		Position: req.Position,
		Rotation: req.Rotation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StudioResponse{Scene: *scene})
}

// RemoveTopping handles DELETE /api/sessions/:id/studio/toppings/:toppingID.
func (h *StudioHandler) RemoveTopping(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	scene, err := h.facade.RemoveStudioTopping(c.Request.Context(), id, c.Param("toppingID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}

// Clear handles DELETE /api/sessions/:id/studio.
func (h *StudioHandler) Clear(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	scene, err := h.facade.ClearStudio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudioResponse{Scene: *scene})
}
