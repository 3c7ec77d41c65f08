package order_test

import (
	"encoding/json"
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNewItem(t *testing.T) {
	t.Run("should compute line total", func(t *testing.T) {
		item := order.NewItem(" burger ", kernel.MustMoney("10.50"), 3)

		assert.Equal(t, "burger", item.ItemID())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "31.50", item.LineTotal().String())
	})

	t.Run("should degrade negative quantity to zero", func(t *testing.T) {
		item := order.NewItem("fries", kernel.MustMoney("4"), -2)

		assert.Equal(t, 0, item.Quantity())
		assert.True(t, item.LineTotal().IsZero())
	})

	t.Run("should accept zero value price", func(t *testing.T) {
		item := order.NewItem("water", kernel.Money{}, 2)

		assert.True(t, item.UnitPrice().IsZero())
		assert.True(t, item.LineTotal().IsZero())
	})
}

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"nil", nil, 0},
		{"int", 3, 3},
		{"negative int", -3, 0},
		{"int32", int32(2), 2},
		{"int64", int64(5), 5},
		{"integral float", 2.0, 2},
		{"fractional float", 2.5, 0},
		{"negative float", -1.0, 0},
		{"NaN", math.NaN(), 0},
		{"json number", json.Number("4"), 4},
		{"numeric string", " 7 ", 7},
		{"float string", "3.0", 3},
		{"garbage string", "two", 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run("should coerce "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.CoerceQuantity(tt.input))
		})
	}
}
