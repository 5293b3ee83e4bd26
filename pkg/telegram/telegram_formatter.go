package telegram

import (
	"fmt"
	"strings"

	"fpl-price-tracker/internal/entity"
)

// FormatPredictionsForTelegram formats a run's riser and faller predictions
// into a single Markdown message for Telegram.
func FormatPredictionsForTelegram(risers, fallers []entity.Prediction) string {
	if len(risers) == 0 && len(fallers) == 0 {
		return "No price change candidates for this run."
	}

	var sb strings.Builder
	sb.WriteString("📊 *FPL Price Change Watch*\n")
	if len(risers) > 0 {
		sb.WriteString(fmt.Sprintf("_as of %s UTC_\n", risers[0].Timestamp))
	} else {
		sb.WriteString(fmt.Sprintf("_as of %s UTC_\n", fallers[0].Timestamp))
	}

	writeSection := func(title, icon string, predictions []entity.Prediction) {
		if len(predictions) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s *%s*\n", icon, title))
		for i, p := range predictions {
			sb.WriteString(fmt.Sprintf("%d. %s (£%.1fm) %.0f/hr, progress %.2f\n",
				i+1, p.Name, p.NowCost, p.NetDeltaPerHr, p.Progress))
		}
	}

	writeSection("Rising Candidates", "📈", risers)
	writeSection("Falling Candidates", "📉", fallers)

	return sb.String()
}
