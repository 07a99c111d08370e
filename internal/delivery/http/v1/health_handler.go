package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r gin.IRouter, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
}

// Root godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.Response
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, "Server is running", nil)
}

// Health godoc
// @Summary      Dependency status
// @Description  Reports whether the mail provider has credentials and whether Redis answers.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "ok", h.healthUC.Check(c.Request.Context()))
}
