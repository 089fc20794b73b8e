package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/cart-widget/internal/catalog"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/repository"
	"github.com/nikolayk812/cart-widget/internal/widget"
	"go.uber.org/zap"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrCurrencyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, widget.ErrTargetDetached):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		message = "internal error"
	}

	c.JSON(status, Response{Status: "error", Message: message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Status: "error", Message: message})
}
