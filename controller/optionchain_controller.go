package controller

import (
	"net/http"
	"strings"

	"github.com/featherduino/optionsScreener/model"
	"github.com/featherduino/optionsScreener/service"

	"github.com/gin-gonic/gin"
)

type OptionChainController struct {
	chains service.OptionChainService
}

func NewOptionChainController(chains service.OptionChainService) *OptionChainController {
	return &OptionChainController{chains: chains}
}

func (ctrl *OptionChainController) RegisterRoutes(router *gin.Engine) {
	chainGroup := router.Group("/optionchain")
	{
		chainGroup.GET("/:symbol", ctrl.GetOptionChain)
	}
}

// GetOptionChain resolves the nearest expiry for a symbol, fetches the chain
// and returns the ranked strikes with chart views and OI history. Vendor
// failures never surface as HTTP errors; they degrade to structured bodies.
// @Summary      Get Option Chain with Ranked Strikes
// @Description  Fetches the option chain for the nearest expiry and ranks the most interesting strikes.
// @Tags         OptionChain
// @Produce      json
// @Param        symbol  path      string  true  "Underlying symbol (e.g. NIFTY)"
// @Success      200     {object}  model.ChainPayload
// @Router       /optionchain/{symbol} [get]
func (ctrl *OptionChainController) GetOptionChain(c *gin.Context) {
	ctx := c.Request.Context()
	symbol := strings.ToUpper(c.Param("symbol"))

	expiries, expiryErr := ctrl.chains.GetExpiries(ctx, symbol)
	expiry := service.PickNearestExpiry(expiries)
	if expiry == "" {
		c.JSON(http.StatusOK, model.NoExpiryResponse{
			Error:       "No valid expiry",
			Symbol:      symbol,
			ExpiryError: expiryErr,
		})
		return
	}

	result := ctrl.chains.FetchChain(ctx, symbol, expiry)
	if len(result.Rows) == 0 {
		c.JSON(http.StatusOK, model.ChainSummary{
			Symbol:     symbol,
			Expiry:     expiry,
			TotalRows:  0,
			TopStrikes: []model.OptionRow{},
			ChainError: result.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, model.ChainPayload{
		ChainSummary: model.ChainSummary{
			Symbol:     symbol,
			Expiry:     expiry,
			TotalRows:  len(result.Rows),
			TopStrikes: service.ImportantStrikes(result.Rows),
		},
		Charts:  service.BuildChartViews(result.Rows),
		History: ctrl.chains.RecordHistory(symbol, expiry, result.Rows),
	})
}
