package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"rent-vs-buy/internal/api/models"
	"rent-vs-buy/internal/cache"
	"rent-vs-buy/internal/model"
	"rent-vs-buy/internal/simulate"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles scenario analysis requests
type AnalyzeHandler struct {
	engine *simulate.Engine
	cache  cache.Cache
}

// NewAnalyzeHandler creates a new analyze handler. The cache may be nil to
// disable memoization.
func NewAnalyzeHandler(c cache.Cache) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine: simulate.New(),
		cache:  c,
	}
}

// RunAnalysis handles POST /api/v1/analyze
func (h *AnalyzeHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Evaluations are deterministic: identical requests can be replayed from
	// the cache.
	key, cacheable := h.cacheKey(req)
	if cacheable {
		if raw, ok := h.cache.Get(key); ok {
			var cached models.AnalyzeResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.Cached = true
				c.JSON(http.StatusOK, cached)
				return
			}
			// A corrupt entry is recomputed and overwritten.
			log.Printf("analyze: discarding unreadable cache entry %s", key)
		}
	}

	result, err := h.engine.Run(toScenario(req.Scenario))
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

	response := buildAnalyzeResponse(result, req.Options.IncludeLedger)
	if cacheable {
		if raw, err := json.Marshal(response); err == nil {
			if err := h.cache.Set(key, string(raw)); err != nil {
				log.Printf("analyze: cache set failed: %v", err)
			}
		}
	}
	c.JSON(http.StatusOK, response)
}

// Compare handles POST /api/v1/analyze/compare
func (h *AnalyzeHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations)+1)

	baseResult, err := h.engine.Run(toScenario(req.Base))
	if err != nil {
		status, code := classifyEngineError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: "base scenario: " + err.Error(),
			},
		})
		return
	}
	comparison = append(comparison, models.ComparisonResult{
		Name:    "base",
		Summary: summarize(baseResult),
	})

	for _, v := range req.Variations {
		// A variation overlays the base: zero-valued fields inherit.
		merged := overlayScenario(req.Base, v.Scenario)
		result, err := h.engine.Run(toScenario(merged))
		if err != nil {
			status, code := classifyEngineError(err)
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    code,
					Message: "variation " + v.Name + ": " + err.Error(),
				},
			})
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    v.Name,
			Summary: summarize(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

func (h *AnalyzeHandler) cacheKey(req models.AnalyzeRequest) (string, bool) {
	if h.cache == nil || req.Options.NoCache {
		return "", false
	}
	payload, err := json.Marshal(struct {
		Scenario      models.ScenarioParams `json:"scenario"`
		IncludeLedger bool                  `json:"include_ledger"`
	}{req.Scenario, req.Options.IncludeLedger})
	if err != nil {
		return "", false
	}
	return cache.Key(payload), true
}

func buildAnalyzeResponse(result *simulate.Result, includeLedger bool) models.AnalyzeResponse {
	resp := models.AnalyzeResponse{
		Status: "completed",
		Mode:   string(result.Mode),
		Loan:   loanSummary(result.Loan),
	}

	if result.BreakEven != nil {
		resp.BreakEven = &models.BreakEvenPayload{
			BreakEvenYear:      result.BreakEven.BreakEvenYear,
			RentSeries:         result.BreakEven.RentSeries,
			OwnSeries:          result.BreakEven.OwnSeries,
			SaleProceedsByYear: result.BreakEven.SaleProceedsByYear,
		}
	}

	if result.CashFlow != nil {
		payload := &models.CashFlowPayload{
			RentCashSeries:       result.CashFlow.RentSeries,
			BuyCashSeries:        result.CashFlow.BuySeries,
			BuyAndSellCashSeries: result.CashFlow.BuyAndSellSeries,
		}
		if includeLedger {
			payload.Ledger = make([]models.LedgerRow, 0, len(result.CashFlow.Ledger))
			for _, r := range result.CashFlow.Ledger {
				payload.Ledger = append(payload.Ledger, models.LedgerRow{
					Year:           r.Year,
					Phase:          string(r.Phase),
					Salary:         r.Salary,
					NetSavings:     r.NetSavings,
					RentCost:       r.RentCost,
					OwnCost:        r.OwnCost,
					SaleProceeds:   r.SaleProceeds,
					CashRent:       r.CashRent,
					CashBuy:        r.CashBuy,
					CashBuyAndSell: r.CashBuyAndSell,
				})
			}
		}
		resp.CashFlow = payload
	}

	return resp
}

func loanSummary(loan *model.Loan) models.LoanSummary {
	s := models.LoanSummary{
		DownPayment: loan.DownPayment,
		LoanAmount:  loan.LoanAmount,
		TermMonths:  len(loan.Schedule),
	}
	if len(loan.Schedule) > 0 {
		s.FirstMonthlyPayment = loan.Schedule[0]
	}
	s.TotalPayments = loan.Schedule.Total()
	return s
}

func summarize(result *simulate.Result) models.ScenarioSummary {
	summary := models.ScenarioSummary{Mode: string(result.Mode)}
	if result.BreakEven != nil {
		summary.BreakEvenYear = result.BreakEven.BreakEvenYear
		summary.FinalRentCost = lastOf(result.BreakEven.RentSeries)
		summary.FinalOwnCost = lastOf(result.BreakEven.OwnSeries)
	}
	if result.CashFlow != nil {
		summary.FinalCashRent = lastOf(result.CashFlow.RentSeries)
		summary.FinalCashBuy = lastOf(result.CashFlow.BuySeries)
		summary.FinalCashBuyAndSell = lastOf(result.CashFlow.BuyAndSellSeries)
	}
	return summary
}

func lastOf(series []float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	v := series[len(series)-1]
	return &v
}

func toScenario(p models.ScenarioParams) model.Scenario {
	return model.Scenario{
		HouseValue:              p.HouseValue,
		LoanFraction:            p.LoanFraction,
		LoanRatePct:             p.LoanRatePct,
		LoanTermYears:           p.LoanTermYears,
		AppreciationRatePct:     p.AppreciationRatePct,
		InitialMaintenance:      p.InitialMaintenance,
		MaintenanceInflationPct: p.MaintenanceInflationPct,
		InitialRent:             p.InitialRent,
		RentInflationPct:        p.RentInflationPct,
		SellTaxRatePct:          p.SellTaxRatePct,
		HorizonYears:            p.HorizonYears,
		InitialInvestment:       p.InitialInvestment,
		AnnualSalary:            p.AnnualSalary,
		SalaryGrowthPct:         p.SalaryGrowthPct,
		OpportunityCostRatePct:  p.OpportunityCostRatePct,
		AnnualExpenditure:       p.AnnualExpenditure,
		SellYear:                p.SellYear,
		Method:                  model.Method(p.Method),
		Mode:                    model.Mode(p.Mode),
	}
}

// overlayScenario fills zero-valued fields of a variation from the base.
func overlayScenario(base, override models.ScenarioParams) models.ScenarioParams {
	out := base
	if override.HouseValue != 0 {
		out.HouseValue = override.HouseValue
	}
	if override.LoanFraction != 0 {
		out.LoanFraction = override.LoanFraction
	}
	if override.LoanRatePct != 0 {
		out.LoanRatePct = override.LoanRatePct
	}
	if override.LoanTermYears != 0 {
		out.LoanTermYears = override.LoanTermYears
	}
	if override.AppreciationRatePct != 0 {
		out.AppreciationRatePct = override.AppreciationRatePct
	}
	if override.InitialMaintenance != 0 {
		out.InitialMaintenance = override.InitialMaintenance
	}
	if override.MaintenanceInflationPct != 0 {
		out.MaintenanceInflationPct = override.MaintenanceInflationPct
	}
	if override.InitialRent != 0 {
		out.InitialRent = override.InitialRent
	}
	if override.RentInflationPct != 0 {
		out.RentInflationPct = override.RentInflationPct
	}
	if override.SellTaxRatePct != 0 {
		out.SellTaxRatePct = override.SellTaxRatePct
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.InitialInvestment != 0 {
		out.InitialInvestment = override.InitialInvestment
	}
	if override.AnnualSalary != 0 {
		out.AnnualSalary = override.AnnualSalary
	}
	if override.SalaryGrowthPct != 0 {
		out.SalaryGrowthPct = override.SalaryGrowthPct
	}
	if override.OpportunityCostRatePct != 0 {
		out.OpportunityCostRatePct = override.OpportunityCostRatePct
	}
	if override.AnnualExpenditure != 0 {
		out.AnnualExpenditure = override.AnnualExpenditure
	}
	if override.SellYear != 0 {
		out.SellYear = override.SellYear
	}
	if override.Method != "" {
		out.Method = override.Method
	}
	if override.Mode != "" {
		out.Mode = override.Mode
	}
	return out
}

// classifyEngineError maps engine failures to HTTP status and error code.
// Everything in the taxonomy is a caller mistake; only unexpected failures
// surface as 500.
func classifyEngineError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrDomain):
		return http.StatusBadRequest, "DOMAIN_ERROR"
	case errors.Is(err, model.ErrInvalidMethod):
		return http.StatusBadRequest, "INVALID_METHOD"
	case errors.Is(err, simulate.ErrInvalidSellYear):
		return http.StatusBadRequest, "INVALID_SELL_YEAR"
	case errors.Is(err, simulate.ErrUnknownMode):
		return http.StatusBadRequest, "UNKNOWN_MODE"
	default:
		return http.StatusInternalServerError, "ENGINE_ERROR"
	}
}
