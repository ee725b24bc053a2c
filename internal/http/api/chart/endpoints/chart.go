package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/jyotish/internal/chart"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api/chart/packets"
)

type ChartController struct {
	service *chart.Service
}

func newChartController(service *chart.Service) *ChartController {
	return &ChartController{service: service}
}

// ChartModule mounts POST /calculate_chart.
func ChartModule(service *chart.Service) api.Module {
	ctl := newChartController(service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/calculate_chart", ctl.calculateChart)
	})
}

func (c *ChartController) calculateChart(ctx *gin.Context) (any, *api.APIError) {
	var request chart.BirthData
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err)
	}

	computed, err := c.service.Calculate(ctx.Request.Context(), request)
	if err != nil {
		return nil, api.FromError(err)
	}
	return packets.NewChartResponse(computed), nil
}
