package controller

import (
	"errors"
	"net/http"

	"github.com/featherduino/optionsScreener/customerrors"
	"github.com/featherduino/optionsScreener/model"
	"github.com/featherduino/optionsScreener/service"

	"github.com/gin-gonic/gin"
)

type ScreenerController struct {
	screener service.ScreenerService
}

func NewScreenerController(screener service.ScreenerService) *ScreenerController {
	return &ScreenerController{screener: screener}
}

func (ctrl *ScreenerController) RegisterRoutes(router *gin.Engine) {
	screenerGroup := router.Group("/optionscreener")
	{
		screenerGroup.GET("/overview", ctrl.Overview)
		screenerGroup.GET("/heatmap", ctrl.Heatmap)
		screenerGroup.GET("/top-symbols", ctrl.TopSymbols)
		screenerGroup.GET("/quote", ctrl.Quote)
		screenerGroup.GET("/optionsScanner", ctrl.OptionsScanner)
	}
}

// Overview proxies the screener market overview.
// @Summary      Proxy Screener Overview
// @Tags         OptionScreener
// @Produce      json
// @Param        date  query  string  false  "Trading date (yyyy-mm-dd)"
// @Success      200  {object}  object
// @Failure      502  {object}  model.ScreenerErrorResponse
// @Failure      503  {object}  model.ScreenerErrorResponse
// @Router       /optionscreener/overview [get]
func (ctrl *ScreenerController) Overview(c *gin.Context) {
	ctrl.proxyWithDate(c, "/overview")
}

// Heatmap proxies the screener heatmap slice.
// @Summary      Proxy Screener Heatmap
// @Tags         OptionScreener
// @Produce      json
// @Param        date  query  string  false  "Trading date (yyyy-mm-dd)"
// @Success      200  {object}  object
// @Failure      502  {object}  model.ScreenerErrorResponse
// @Failure      503  {object}  model.ScreenerErrorResponse
// @Router       /optionscreener/heatmap [get]
func (ctrl *ScreenerController) Heatmap(c *gin.Context) {
	ctrl.proxyWithDate(c, "/heatmap")
}

// TopSymbols proxies the screener top-symbols list.
// @Summary      Proxy Screener Top Symbols
// @Tags         OptionScreener
// @Produce      json
// @Param        date  query  string  false  "Trading date (yyyy-mm-dd)"
// @Success      200  {object}  object
// @Failure      502  {object}  model.ScreenerErrorResponse
// @Failure      503  {object}  model.ScreenerErrorResponse
// @Router       /optionscreener/top-symbols [get]
func (ctrl *ScreenerController) TopSymbols(c *gin.Context) {
	ctrl.proxyWithDate(c, "/top-symbols")
}

func (ctrl *ScreenerController) proxyWithDate(c *gin.Context, path string) {
	ctrl.proxy(c, path, map[string]string{"date": c.Query("date")})
}

// Quote proxies a single-symbol screener quote.
// @Summary      Proxy Screener Quote
// @Tags         OptionScreener
// @Produce      json
// @Param        symbol  query  string  false  "Underlying symbol"
// @Success      200  {object}  object
// @Failure      502  {object}  model.ScreenerErrorResponse
// @Failure      503  {object}  model.ScreenerErrorResponse
// @Router       /optionscreener/quote [get]
func (ctrl *ScreenerController) Quote(c *gin.Context) {
	ctrl.proxy(c, "/quote", map[string]string{"symbol": c.Query("symbol")})
}

// OptionsScanner forwards every query parameter as-is.
// @Summary      Proxy Options Scanner
// @Tags         OptionScreener
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  model.ScreenerErrorResponse
// @Failure      503  {object}  model.ScreenerErrorResponse
// @Router       /optionscreener/optionsScanner [get]
func (ctrl *ScreenerController) OptionsScanner(c *gin.Context) {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	ctrl.proxy(c, "/optionsScanner", params)
}

func (ctrl *ScreenerController) proxy(c *gin.Context, path string, params map[string]string) {
	body, err := ctrl.screener.Fetch(c.Request.Context(), path, params)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, customerrors.ErrScreenerNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, model.ScreenerErrorResponse{Detail: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
