package nutrition

import "strings"

// Summary is the normalized nutrition profile of a single food.
type Summary struct {
	FoodName       string   `json:"foodName"`
	Calories       float64  `json:"calories"`
	Protein        string   `json:"protein"`
	Fat            string   `json:"fat"`
	Carbs          string   `json:"carbs"`
	Vitamins       []string `json:"vitamins,omitempty"`
	Minerals       []string `json:"minerals,omitempty"`
	HealthBenefits []string `json:"healthBenefits"`
}

// Text renders the summary as the multi-line report returned to clients.
func (s Summary) Text() string {
	var b strings.Builder
	b.WriteString("Nutrition information for " + s.FoodName + "\n")
	b.WriteString("Calories: " + formatNumber(s.Calories) + " kcal\n")
	b.WriteString("Protein: " + s.Protein + "\n")
	b.WriteString("Fat: " + s.Fat + "\n")
	b.WriteString("Carbohydrates: " + s.Carbs + "\n")
	b.WriteString("Vitamins: " + joinOrNA(s.Vitamins) + "\n")
	b.WriteString("Minerals: " + joinOrNA(s.Minerals) + "\n")
	b.WriteString("Health benefits: " + strings.Join(s.HealthBenefits, ", "))
	return b.String()
}

func joinOrNA(entries []string) string {
	if len(entries) == 0 {
		return "N/A"
	}
	return strings.Join(entries, ", ")
}
