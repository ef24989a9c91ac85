package handlers

import (
	"net/http"

	"rent-vs-buy/internal/analysis"
	"rent-vs-buy/internal/api/models"

	"github.com/gin-gonic/gin"
)

// SellYearHandler ranks candidate sale years for a scenario
type SellYearHandler struct{}

// NewSellYearHandler creates a new sell-year handler
func NewSellYearHandler() *SellYearHandler {
	return &SellYearHandler{}
}

// RankSellYears handles POST /api/v1/sell-years
func (h *SellYearHandler) RankSellYears(c *gin.Context) {
	var req models.SellYearsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	outcomes, err := analysis.RankSellYears(toScenario(req.Scenario))
	if err != nil {
		status, code := classifyEngineError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > len(outcomes) {
		limit = len(outcomes)
	}

	rankings := make([]models.SellYearRanking, 0, limit)
	for i, o := range outcomes[:limit] {
		rankings = append(rankings, models.SellYearRanking{
			Rank:         i + 1,
			SellYear:     o.SellYear,
			SaleYearCash: o.SaleYearCash,
			FinalNetCash: o.FinalNetCash,
		})
	}

	c.JSON(http.StatusOK, models.SellYearsResponse{Rankings: rankings})
}
