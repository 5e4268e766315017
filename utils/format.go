package utils

import (
	"fmt"
	"strings"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// FormatNutrition renders a vector as the labeled lines the chat/report
// surfaces display. Pure formatting, no logic.
func FormatNutrition(v models.NutrientVector) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Calories: %.1f cal\n", v.Calories))
	sb.WriteString(fmt.Sprintf("Protein: %.1fg\n", v.Protein))
	sb.WriteString(fmt.Sprintf("Carbs: %.1fg\n", v.Carbs))
	sb.WriteString(fmt.Sprintf("Fat: %.1fg\n", v.Fat))
	sb.WriteString(fmt.Sprintf("Fiber: %.1fg\n", v.Fiber))
	sb.WriteString(fmt.Sprintf("Sodium: %.1fmg\n", v.Sodium))
	sb.WriteString(fmt.Sprintf("Sugar: %.1fg", v.Sugar))
	return sb.String()
}
