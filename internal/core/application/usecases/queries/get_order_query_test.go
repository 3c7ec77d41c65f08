package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create query for valid id", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := queries.GetOrderQuery{}.Validate()

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetRestaurantOrdersQuery(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should create unfiltered query for empty status", func(t *testing.T) {
		query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, "  ")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		_, filtered := query.Status()
		assert.False(t, filtered)
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("should accept status synonyms", func(t *testing.T) {
		cases := map[string]order.Status{
			"Placed":           order.Placed,
			"preparing":        order.Processing,
			"out_for_delivery": order.InRoute,
			"In Route":         order.InRoute,
			"cancelled":        order.Canceled,
		}
		for raw, expected := range cases {
			query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, raw)

			require.NoError(t, err, raw)
			status, filtered := query.Status()
			assert.True(t, filtered, raw)
			assert.Equal(t, expected, status, raw)
		}
	})

	t.Run("should reject unknown and action-only statuses", func(t *testing.T) {
		for _, raw := range []string{"shipped", "received"} {
			_, err := queries.NewGetRestaurantOrdersQuery(restaurantID, raw)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("should reject zero restaurant id", func(t *testing.T) {
		_, err := queries.NewGetRestaurantOrdersQuery(kernel.UUID{}, "")

		require.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := queries.GetRestaurantOrdersQuery{}.Validate()

		require.ErrorIs(t, err, queries.ErrGetRestaurantOrdersQueryIsNotConstructed)
	})
}
