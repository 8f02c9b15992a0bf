package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/server/http/dto"
)

// SessionHandler manages cake configuration session endpoints.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Start handles POST /api/sessions.
func (h *SessionHandler) Start(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BakeryID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.StartSession(c.Request.Context(), CurrentCustomerID(c), req.BakeryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.facade.Session(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectOption handles PUT /api/sessions/:id/options.
func (h *SessionHandler) SelectOption(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" || req.OptionID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.SelectOption(c.Request.Context(), id, model.OptionCategory(req.Category), req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// ToggleDecoration handles PUT /api/sessions/:id/decorations.
func (h *SessionHandler) ToggleDecoration(c *gin.Context) {
	h.toggle(c, h.facade.ToggleDecoration)
}

// ToggleExtra handles PUT /api/sessions/:id/extras.
func (h *SessionHandler) ToggleExtra(c *gin.Context) {
	h.toggle(c, h.facade.ToggleExtra)
}

func (h *SessionHandler) toggle(c *gin.Context, fn func(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.ToggleOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := fn(c.Request.Context(), id, req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SetMessageType handles PUT /api/sessions/:id/message/type.
func (h *SessionHandler) SetMessageType(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.MessageTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	messageType := model.MessageType(req.Type)
	switch messageType {
	case model.MessageNone, model.MessagePiped, model.MessageEdible:
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.SetMessageType(c.Request.Context(), id, messageType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SetMessageText handles PUT /api/sessions/:id/message/text.
func (h *SessionHandler) SetMessageText(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.MessageTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.SetMessageText(c.Request.Context(), id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SetPlaqueColor handles PUT /api/sessions/:id/message/plaque-color.
func (h *SessionHandler) SetPlaqueColor(c *gin.Context) {
	h.setColor(c, h.facade.SetPlaqueColor)
}

// SetPipingColor handles PUT /api/sessions/:id/message/piping-color.
func (h *SessionHandler) SetPipingColor(c *gin.Context) {
	h.setColor(c, h.facade.SetPipingColor)
}

func (h *SessionHandler) setColor(c *gin.Context, fn func(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.MessageColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := fn(c.Request.Context(), id, req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SetUploadedImage handles PUT /api/sessions/:id/message/image.
func (h *SessionHandler) SetUploadedImage(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.UploadedImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.SetUploadedImage(c.Request.Context(), id, req.Ref)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Reset handles POST /api/sessions/:id/reset.
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.facade.ResetConfiguration(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// CompleteStage handles POST /api/sessions/:id/stages/:stage/complete.
func (h *SessionHandler) CompleteStage(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	stage := model.WizardStage(c.Param("stage"))
	switch stage {
	case model.StageCake, model.StageDecoration, model.StageMessage, model.StageExtras:
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	session, err := h.facade.CompleteStage(c.Request.Context(), id, stage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Submission handles GET /api/sessions/:id/submission.
func (h *SessionHandler) Submission(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	submission, err := h.facade.Materialize(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Name:        submission.Name,
		Description: submission.Description,
		Price:       submission.Price.String(),
	})
}

// AddToCart handles POST /api/sessions/:id/cart.
func (h *SessionHandler) AddToCart(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddSessionToCart(c.Request.Context(), CurrentToken(c), id, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// Discard handles DELETE /api/sessions/:id.
func (h *SessionHandler) Discard(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.facade.DiscardSession(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
