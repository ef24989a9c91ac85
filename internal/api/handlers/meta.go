package handlers

import (
	"net/http"

	"rent-vs-buy/internal/api/models"
	"rent-vs-buy/internal/model"

	"github.com/gin-gonic/gin"
)

// ListMethods handles GET /api/v1/methods
func ListMethods(c *gin.Context) {
	methods := []models.MethodInfo{
		{
			Name:        string(model.MethodAnnuity),
			Description: "Level monthly payment for the life of the loan; the principal share grows over time.",
		},
		{
			Name:        string(model.MethodLinear),
			Description: "Equal principal installments each month; the total payment decreases as interest on the declining balance shrinks.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

// ListModes handles GET /api/v1/modes
func ListModes(c *gin.Context) {
	modes := []models.ModeInfo{
		{
			Name:        string(model.ModeBreakEven),
			Description: "Cumulative cost of renting vs owning per year, the first year owning is strictly cheaper, and net sale proceeds per year.",
			Outputs:     []string{"break_even_year", "rent_series", "own_series", "sale_proceeds_by_year"},
		},
		{
			Name:        string(model.ModeCashFlow),
			Description: "Cumulative net cash per year under rent-only, buy-and-hold, and buy-then-sell strategies.",
			Outputs:     []string{"rent_cash_series", "buy_cash_series", "buy_and_sell_cash_series"},
		},
	}
	c.JSON(http.StatusOK, gin.H{"modes": modes})
}
