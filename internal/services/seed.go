package services

import (
	"encoding/json"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedEAs returns the fixed demo catalog. Fresh ids each call; the reseed
// replaces the whole table so stale references are expected to dangle.
func SeedEAs() []models.EA {
	return []models.EA{
		{
			ID:          uuid.New(),
			Name:        "TrendMaster Pro",
			Description: "Advanced trend-following EA with smart money management. Perfect for EUR/USD and GBP/USD.",
			Price:       299,
			Features:    featureList("Multiple TF Analysis", "Auto Lot Sizing", "Trailing Stop", "News Filter"),
			Rating:      4.9,
			Reviews:     234,
			Image:       "📈",
			DownloadURL: "/downloads/trendmaster-pro.zip",
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "GridHunter Elite",
			Description: "Grid trading system with built-in recovery mode. Ideal for ranging markets.",
			Price:       349,
			Features:    featureList("Grid Strategy", "Recovery Mode", "Martingale Option", "Multi Currency"),
			Rating:      4.8,
			Reviews:     189,
			Image:       "🕸️",
			DownloadURL: "/downloads/gridhunter-elite.zip",
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "ScalpStorm",
			Description: "High-frequency scalping EA for quick profits. Low drawdown, high win rate.",
			Price:       249,
			Features:    featureList("Fast Execution", "Low Spread", "Micro Lots", "5 Min Charts"),
			Rating:      4.7,
			Reviews:     156,
			Image:       "⚡",
			DownloadURL: "/downloads/scalpstorm.zip",
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        "GoldNavigator",
			Description: "Specialized gold trading robot with XAU/USD optimization. Steady profits.",
			Price:       399,
			Features:    featureList("Gold Special", "Swing Trading", "Daily Pips Target", "VIP Support"),
			Rating:      4.9,
			Reviews:     312,
			Image:       "🥇",
			DownloadURL: "/downloads/goldnavigator.zip",
			IsActive:    true,
		},
	}
}

func featureList(features ...string) datatypes.JSON {
	b, _ := json.Marshal(features)
	return datatypes.JSON(b)
}
