package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/supplier_orders/internal/apiclient"
	"github.com/Gunvolt24/supplier_orders/internal/usecase"
	"github.com/Gunvolt24/supplier_orders/pkg/validate"
	"github.com/gin-gonic/gin"
)

// errorResponse сопоставляет ошибку сервиса с HTTP-статусом панели:
// нет сессии - 401, неверный ввод - 400, ошибка бэкенда - его статус,
// транспортная ошибка - 502, истёкший таймаут - 504.
func errorResponse(err error) (int, gin.H) {
	body := gin.H{"error": err.Error()}

	var apiErr *apiclient.Error
	switch {
	case errors.Is(err, usecase.ErrAuthRequired):
		body["status"] = http.StatusUnauthorized
	case errors.Is(err, validate.ErrInvalidStatus), errors.Is(err, usecase.ErrOrderIDRequired):
		body["status"] = http.StatusBadRequest
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		body["status"] = status
		body["data"] = apiErr.Data
	case errors.Is(err, context.DeadlineExceeded):
		body["status"] = http.StatusGatewayTimeout
	default:
		body["status"] = http.StatusBadGateway
	}
	return body["status"].(int), body
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "status": http.StatusBadRequest})
}
