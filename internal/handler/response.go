package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "userhub/internal/errors"
)

func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func respondValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
		Detail: err.Error(),
		Code:   "VALIDATION_ERROR",
	})
}
