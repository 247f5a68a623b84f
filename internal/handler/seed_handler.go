package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userhub/internal/seed"
	"userhub/internal/service"
)

// SeedHandler loads the demo data set on demand.
type SeedHandler struct {
	svc service.UserService
}

// NewSeedHandler creates a seed handler.
func NewSeedHandler(svc service.UserService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// SeedUsers godoc
// @Summary Load the demo user data set
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /seed/users [post]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	seeded, err := seed.Apply(c.Request().Context(), h.svc)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "demo users seeded",
		"seeded":  seeded,
	})
}
