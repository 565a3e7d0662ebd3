package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

func TestProductFootprint_Formula(t *testing.T) {
	calc := NewCalculator(nil)

	// electronics: 100 × 1 × 1.5 = 150
	p := model.Product{Name: "Laptop", Category: category.Electronics, Price: 100, Quantity: 1}
	assert.InDelta(t, 150.0, calc.ProductFootprint(p), 0.0001)

	// food: 50 × 2 × 0.4 = 40
	p = model.Product{Name: "Meal Kit", Category: category.Food, Price: 50, Quantity: 2}
	assert.InDelta(t, 40.0, calc.ProductFootprint(p), 0.0001)
}

func TestProductFootprint_Defaults(t *testing.T) {
	calc := NewCalculator(nil)

	// missing quantity counts as 1
	p := model.Product{Category: category.Clothing, Price: 10}
	assert.InDelta(t, 8.0, calc.ProductFootprint(p), 0.0001)

	// negative price clamps to zero, never a negative footprint
	p = model.Product{Category: category.Clothing, Price: -10, Quantity: 2}
	assert.Equal(t, 0.0, calc.ProductFootprint(p))

	// unknown category uses the 0.7 default rate, not the other rate
	p = model.Product{Category: "mystery", Price: 10, Quantity: 1}
	assert.InDelta(t, 7.0, calc.ProductFootprint(p), 0.0001)
}

func TestTransactionFootprint_SumsProducts(t *testing.T) {
	calc := NewCalculator(nil)

	tx := model.Transaction{
		Products: []model.Product{
			{Category: category.Electronics, Price: 100, Quantity: 1}, // 150
			{Category: category.Groceries, Price: 25, Quantity: 2},    // 20
		},
	}
	assert.InDelta(t, 170.0, calc.TransactionFootprint(tx), 0.0001)
}

func TestTransactionFootprint_EmptyProducts(t *testing.T) {
	calc := NewCalculator(nil)

	assert.Equal(t, 0.0, calc.TransactionFootprint(model.Transaction{}))
	assert.Equal(t, 0.0, calc.TransactionFootprint(model.Transaction{Products: []model.Product{}}))
}

func TestTransactionFootprint_CustomRates(t *testing.T) {
	rates := category.DefaultRates().WithOverrides(map[category.Category]float64{
		category.Electronics: 2.0,
	})
	calc := NewCalculator(rates)

	tx := model.Transaction{
		Products: []model.Product{{Category: category.Electronics, Price: 10, Quantity: 1}},
	}
	assert.InDelta(t, 20.0, calc.TransactionFootprint(tx), 0.0001)
}
