package nutrition

import (
	"strconv"
	"strings"
)

// NutrientRecord is a single nutrient entry as returned by FoodData Central.
type NutrientRecord struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}

// Health benefit annotations, in evaluation order.
const (
	BenefitLowCalorie = "Low in calories, good for weight management"
	BenefitVitaminC   = "Rich in Vitamin C, supports immune system"
	BenefitPotassium  = "Good source of Potassium, supports heart health"
	BenefitCalcium    = "Contains Calcium, supports bone health"
	BenefitGeneral    = "General source of nutrients and minerals"
)

// lowCalorieThreshold is exclusive.
const lowCalorieThreshold = 50

var mineralNames = []string{"Iron", "Calcium", "Potassium", "Magnesium", "Zinc", "Phosphorus"}

// Extract maps the nutrient records of a food into a Summary.
// Missing nutrients default to zero and empty lists are left nil.
// Macronutrients always carry a " g" suffix; the declared unit is not converted.
func Extract(foodName string, records []NutrientRecord) Summary {
	s := Summary{
		FoodName: foodName,
		Calories: firstValue(records, "energy"),
		Protein:  grams(firstValue(records, "protein")),
		Fat:      grams(firstValue(records, "total lipid")),
		Carbs:    grams(firstValue(records, "carbohydrate")),
	}

	for _, r := range records {
		if strings.HasPrefix(r.NutrientName, "Vitamin") {
			s.Vitamins = append(s.Vitamins, formatRecord(r))
		}
		if isMineral(r.NutrientName) {
			s.Minerals = append(s.Minerals, formatRecord(r))
		}
	}

	s.HealthBenefits = healthBenefits(s)
	return s
}

func healthBenefits(s Summary) []string {
	var benefits []string
	if s.Calories < lowCalorieThreshold {
		benefits = append(benefits, BenefitLowCalorie)
	}
	if anyContains(s.Vitamins, "Vitamin C") {
		benefits = append(benefits, BenefitVitaminC)
	}
	if anyContains(s.Minerals, "Potassium") {
		benefits = append(benefits, BenefitPotassium)
	}
	if anyContains(s.Minerals, "Calcium") {
		benefits = append(benefits, BenefitCalcium)
	}
	if len(benefits) == 0 {
		benefits = []string{BenefitGeneral}
	}
	return benefits
}

// firstValue returns the value of the first record whose name contains
// substr, ignoring case.
func firstValue(records []NutrientRecord, substr string) float64 {
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.NutrientName), substr) {
			return r.Value
		}
	}
	return 0
}

func isMineral(name string) bool {
	for _, m := range mineralNames {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func anyContains(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func formatRecord(r NutrientRecord) string {
	return r.NutrientName + ": " + formatNumber(r.Value) + r.UnitName
}

func grams(v float64) string {
	return formatNumber(v) + " g"
}

// formatNumber renders v in its shortest form, e.g. 52 or 0.3.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
