package controller

import (
	"net/http"

	"github.com/featherduino/optionsScreener/model"
	"github.com/featherduino/optionsScreener/service"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	chains service.OptionChainService
}

func NewHealthController(chains service.OptionChainService) *HealthController {
	return &HealthController{chains: chains}
}

func (ctrl *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.Index)

	healthGroup := router.Group("/health")
	{
		healthGroup.GET("/", ctrl.HealthCheck)
		healthGroup.HEAD("/", ctrl.HealthCheck)
		healthGroup.GET("/auth", ctrl.AuthHealth)
	}
}

// Index returns the service banner.
// @Summary      Service Banner
// @Tags         System
// @Produce      json
// @Success      200  {object}  model.IndexResponse
// @Router       / [get]
func (ctrl *HealthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, model.IndexResponse{Msg: "TrueData OptionChain Microservice Running"})
}

// HealthCheck reports liveness regardless of vendor state.
// @Summary      System Health Check
// @Tags         System
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health/ [get]
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}

// AuthHealth exposes vendor-token freshness without leaking the token.
// @Summary      Vendor Token Status
// @Tags         System
// @Produce      json
// @Success      200  {object}  model.TokenStatus
// @Router       /health/auth [get]
func (ctrl *HealthController) AuthHealth(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.chains.TokenStatus())
}
