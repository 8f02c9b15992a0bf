package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/server/http/dto"
	"github.com/sugarline/cakeshop/internal/server/http/middleware"
)

// CurrentCustomerID extracts the authenticated customer identifier from context.
func CurrentCustomerID(c *gin.Context) string {
	val, ok := c.Get(middleware.CustomerIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// CurrentToken extracts the raw bearer token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func toSessionResponse(session *model.ConfigSession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:          session.ID.String(),
		BakeryID:    session.BakeryID,
		Config:      session.Config,
		Progress:    session.Progress,
		ActiveStage: string(session.Progress.Active()),
	}
}

// respondError maps domain errors onto HTTP statuses shared by all handlers.
func respondError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"stage":   string(validation.Stage),
			"missing": validation.Missing,
		})
		return
	}

	var partial *domainErrors.PartialSubmissionError
	if errors.As(err, &partial) {
		c.JSON(http.StatusBadGateway, dto.PartialSubmissionResponse{
			OrderID: partial.OrderID,
			Message: "order created but not finalized",
		})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrUnknownOption):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrStageLocked),
		errors.Is(err, domainErrors.ErrIncompleteConfig),
		errors.Is(err, domainErrors.ErrSuperseded):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrVoucherNotUsable),
		errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrAddressUnresolved):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrShippingUnavailable):
		c.Status(http.StatusBadGateway)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
