package nutrition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Macronutrients(t *testing.T) {
	records := []NutrientRecord{
		{NutrientName: "Energy", Value: 52, UnitName: "KCAL"},
		{NutrientName: "Protein", Value: 0.3, UnitName: "G"},
		{NutrientName: "Total lipid (fat)", Value: 0.17, UnitName: "G"},
		{NutrientName: "Carbohydrate, by difference", Value: 13.8, UnitName: "G"},
	}

	s := Extract("Apples, raw", records)

	assert.Equal(t, "Apples, raw", s.FoodName)
	assert.Equal(t, float64(52), s.Calories)
	assert.Equal(t, "0.3 g", s.Protein)
	assert.Equal(t, "0.17 g", s.Fat)
	assert.Equal(t, "13.8 g", s.Carbs)
	assert.NotContains(t, s.HealthBenefits, BenefitLowCalorie)
}

func TestExtract_Calories(t *testing.T) {
	tests := []struct {
		name       string
		records    []NutrientRecord
		wantCal    float64
		wantLowCal bool
	}{
		{
			name:       "below threshold",
			records:    []NutrientRecord{{NutrientName: "Energy", Value: 40, UnitName: "KCAL"}},
			wantCal:    40,
			wantLowCal: true,
		},
		{
			name:       "at threshold",
			records:    []NutrientRecord{{NutrientName: "Energy", Value: 50, UnitName: "KCAL"}},
			wantCal:    50,
			wantLowCal: false,
		},
		{
			name:       "no energy record",
			records:    []NutrientRecord{{NutrientName: "Protein", Value: 1, UnitName: "G"}},
			wantCal:    0,
			wantLowCal: true,
		},
		{
			name: "first energy record wins",
			records: []NutrientRecord{
				{NutrientName: "Energy (Atwater General Factors)", Value: 61, UnitName: "KCAL"},
				{NutrientName: "Energy", Value: 255, UnitName: "KJ"},
			},
			wantCal:    61,
			wantLowCal: false,
		},
		{
			name:       "case insensitive match",
			records:    []NutrientRecord{{NutrientName: "ENERGY", Value: 12, UnitName: "KCAL"}},
			wantCal:    12,
			wantLowCal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Extract("food", tt.records)
			assert.Equal(t, tt.wantCal, s.Calories)
			if tt.wantLowCal {
				assert.Contains(t, s.HealthBenefits, BenefitLowCalorie)
			} else {
				assert.NotContains(t, s.HealthBenefits, BenefitLowCalorie)
			}
		})
	}
}

func TestExtract_MissingMacrosDefaultToZero(t *testing.T) {
	s := Extract("water", nil)

	assert.Equal(t, float64(0), s.Calories)
	assert.Equal(t, "0 g", s.Protein)
	assert.Equal(t, "0 g", s.Fat)
	assert.Equal(t, "0 g", s.Carbs)
	assert.Nil(t, s.Vitamins)
	assert.Nil(t, s.Minerals)
	assert.Equal(t, []string{BenefitLowCalorie}, s.HealthBenefits)
}

func TestExtract_DeclaredUnitIsNotConverted(t *testing.T) {
	s := Extract("food", []NutrientRecord{{NutrientName: "Protein", Value: 250, UnitName: "MG"}})
	assert.Equal(t, "250 g", s.Protein)
}

func TestExtract_VitaminsAndMinerals(t *testing.T) {
	records := []NutrientRecord{
		{NutrientName: "Energy", Value: 89, UnitName: "KCAL"},
		{NutrientName: "Vitamin C, total ascorbic acid", Value: 8.7, UnitName: "MG"},
		{NutrientName: "Potassium, K", Value: 358, UnitName: "MG"},
		{NutrientName: "vitamin d", Value: 1, UnitName: "UG"},
		{NutrientName: "Vitamin B-6", Value: 0.367, UnitName: "MG"},
		{NutrientName: "Calcium, Ca", Value: 5, UnitName: "MG"},
		{NutrientName: "Iron, Fe", Value: 0.26, UnitName: "MG"},
	}

	s := Extract("Bananas, raw", records)

	assert.Equal(t, []string{
		"Vitamin C, total ascorbic acid: 8.7MG",
		"Vitamin B-6: 0.367MG",
	}, s.Vitamins)
	assert.Equal(t, []string{
		"Potassium, K: 358MG",
		"Calcium, Ca: 5MG",
		"Iron, Fe: 0.26MG",
	}, s.Minerals)
	assert.Equal(t, []string{BenefitVitaminC, BenefitPotassium, BenefitCalcium}, s.HealthBenefits)
}

func TestExtract_FallbackBenefit(t *testing.T) {
	records := []NutrientRecord{
		{NutrientName: "Energy", Value: 120, UnitName: "KCAL"},
		{NutrientName: "Protein", Value: 4, UnitName: "G"},
	}

	s := Extract("bread", records)

	assert.Equal(t, []string{BenefitGeneral}, s.HealthBenefits)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "vitamins")
	assert.NotContains(t, fields, "minerals")
	assert.Equal(t, float64(120), fields["calories"])
}

func TestSummary_Text(t *testing.T) {
	s := Summary{
		FoodName:       "Apples, raw",
		Calories:       52,
		Protein:        "0.3 g",
		Fat:            "0.2 g",
		Carbs:          "14 g",
		Vitamins:       []string{"Vitamin C: 4.6MG", "Vitamin K: 2.2UG"},
		HealthBenefits: []string{BenefitVitaminC},
	}

	want := "Nutrition information for Apples, raw\n" +
		"Calories: 52 kcal\n" +
		"Protein: 0.3 g\n" +
		"Fat: 0.2 g\n" +
		"Carbohydrates: 14 g\n" +
		"Vitamins: Vitamin C: 4.6MG, Vitamin K: 2.2UG\n" +
		"Minerals: N/A\n" +
		"Health benefits: Rich in Vitamin C, supports immune system"

	assert.Equal(t, want, s.Text())
}
