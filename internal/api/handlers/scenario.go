package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rent-vs-buy/internal/api/models"
	"rent-vs-buy/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler serves the scenario preset catalog
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	return &ScenarioHandler{scenarioDir: dir}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: failed to read %s: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.scenarioDir, entry.Name())
		sc, err := config.LoadScenarioFile(path)
		if err != nil {
			log.Printf("ScenarioHandler: skipping %s: %v", path, err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := sc.Name
		if name == "" {
			name = id
		}

		scenarios = append(scenarios, models.ScenarioInfo{
			ID:         id,
			Name:       name,
			File:       path,
			HouseValue: sc.HouseValue,
			Mode:       sc.Mode,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
