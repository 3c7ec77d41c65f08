package services_test

import (
	"net/http"
	"sync"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

var (
	engine  = services.NewStatusEngine()
	forward = order.ForwardSequence()
)

func TestStatusEngine_InvalidInput(t *testing.T) {
	t.Run("should reject missing status", func(t *testing.T) {
		for _, requested := range []string{"", "   "} {
			d := engine.Decide(order.Placed, requested, order.RoleRestaurantOwner)

			assert.False(t, d.OK())
			assert.Equal(t, http.StatusBadRequest, d.Code())
			assert.Equal(t, order.InvalidRequest, d.Kind())
			assert.Equal(t, "Invalid or missing orderStatus", d.Message())
		}
	})

	t.Run("should reject unsupported status with raw input in message", func(t *testing.T) {
		d := engine.Decide(order.Placed, "Shipped", order.RoleRestaurantOwner)

		assert.False(t, d.OK())
		assert.Equal(t, http.StatusBadRequest, d.Code())
		assert.Equal(t, `Unsupported status "Shipped"`, d.Message())
	})
}

func TestStatusEngine_NoOpIsIdempotent(t *testing.T) {
	for _, role := range []order.Role{order.RoleCustomer, order.RoleRestaurantOwner} {
		for _, s := range forward {
			t.Run("should treat "+s.String()+" to itself as no-op for "+role.String(), func(t *testing.T) {
				d := engine.Decide(s, s.String(), role)

				assert.True(t, d.OK())
				assert.False(t, d.PersistChange())
				assert.Equal(t, order.Unchanged, d.Outcome())
				assert.Equal(t, s, d.Next())
				assert.Equal(t, "Status unchanged", d.Message())
			})
		}
	}

	t.Run("should treat Canceled to Canceled as no-op", func(t *testing.T) {
		d := engine.Decide(order.Canceled, "cancelled", order.RoleCustomer)

		assert.True(t, d.OK())
		assert.False(t, d.PersistChange())
		assert.Equal(t, order.Canceled, d.Next())
		assert.Equal(t, "Order already canceled", d.Message())
	})
}

func TestStatusEngine_ForwardOnly(t *testing.T) {
	for ci := range forward {
		for ni := 0; ni < ci; ni++ {
			current, requested := forward[ci], forward[ni]

			t.Run("should refuse "+current.String()+" back to "+requested.String(), func(t *testing.T) {
				for _, role := range []order.Role{order.RoleCustomer, order.RoleRestaurantOwner, order.RoleDriver} {
					d := engine.Decide(current, requested.String(), role)

					assert.False(t, d.OK())
					assert.Equal(t, http.StatusConflict, d.Code())
					assert.Equal(t, "Status cannot move backwards", d.Message())
				}
			})
		}
	}
}

func TestStatusEngine_RoleGating(t *testing.T) {
	t.Run("should forbid customers any forward move", func(t *testing.T) {
		for ci := range forward {
			for ni := ci + 1; ni < len(forward); ni++ {
				d := engine.Decide(forward[ci], forward[ni].String(), order.RoleCustomer)

				assert.False(t, d.OK())
				assert.Equal(t, http.StatusForbidden, d.Code())
				assert.Equal(t, "Status not allowed for your role", d.Message())
			}
		}
	})

	t.Run("should let restaurant owners move forward from any lower state", func(t *testing.T) {
		for ci := range forward {
			for ni := ci + 1; ni < len(forward); ni++ {
				d := engine.Decide(forward[ci], forward[ni].String(), order.RoleRestaurantOwner)

				assert.True(t, d.OK())
				assert.True(t, d.PersistChange())
				assert.Equal(t, order.Transitioned, d.Outcome())
				assert.Equal(t, forward[ni], d.Next())
				assert.Equal(t, "Order status updated", d.Message())
			}
		}
	})

	t.Run("should forbid drivers and admins everything", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleDriver, order.RoleAdmin, order.RoleUnknown} {
			assert.Equal(t, http.StatusForbidden, engine.Decide(order.Placed, "Processing", role).Code())
			assert.Equal(t, http.StatusForbidden, engine.Decide(order.Placed, "Canceled", role).Code())
			assert.Equal(t, http.StatusForbidden, engine.Decide(order.Delivered, "Received", role).Code())
		}
	})

	t.Run("should forbid requesting Placed from outside the sequence", func(t *testing.T) {
		d := engine.Decide(order.Canceled, "placed", order.RoleRestaurantOwner)

		assert.Equal(t, http.StatusForbidden, d.Code())
	})

	t.Run("should accept synonyms", func(t *testing.T) {
		d := engine.Decide(order.Ready, "out_for_delivery", order.RoleRestaurantOwner)

		assert.True(t, d.PersistChange())
		assert.Equal(t, order.InRoute, d.Next())
	})
}

func TestStatusEngine_ReopenFromOutsideSequence(t *testing.T) {
	t.Run("should accept permitted forward target from Canceled", func(t *testing.T) {
		d := engine.Decide(order.Canceled, "Ready", order.RoleRestaurantOwner)

		assert.True(t, d.OK())
		assert.True(t, d.PersistChange())
		assert.Equal(t, order.Ready, d.Next())
	})

	t.Run("should accept permitted forward target from unknown current text", func(t *testing.T) {
		d := engine.Evaluate("garbage", "Delivered", order.RoleRestaurantOwner)

		assert.True(t, d.PersistChange())
		assert.Equal(t, order.Delivered, d.Next())
	})
}

func TestStatusEngine_Received(t *testing.T) {
	t.Run("should acknowledge delivered orders without persisting", func(t *testing.T) {
		d := engine.Decide(order.Delivered, "received", order.RoleCustomer)

		assert.True(t, d.OK())
		assert.False(t, d.PersistChange())
		assert.Equal(t, order.Acknowledged, d.Outcome())
		assert.Equal(t, order.Delivered, d.Next())
		assert.Equal(t, "Order receipt acknowledged", d.Message())
	})

	t.Run("should refuse receipt before delivery", func(t *testing.T) {
		for _, current := range []order.Status{order.Placed, order.Processing, order.Ready, order.InRoute, order.Canceled} {
			d := engine.Decide(current, "Received", order.RoleCustomer)

			assert.Equal(t, http.StatusConflict, d.Code(), current.String())
			assert.Equal(t, "Order must be Delivered before it can be marked as Received", d.Message())
		}
	})

	t.Run("should forbid restaurant owners", func(t *testing.T) {
		d := engine.Decide(order.Delivered, "Received", order.RoleRestaurantOwner)

		assert.Equal(t, http.StatusForbidden, d.Code())
	})
}

func TestStatusEngine_Cancellation(t *testing.T) {
	t.Run("should refuse canceling delivered orders", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleCustomer, order.RoleRestaurantOwner} {
			d := engine.Decide(order.Delivered, "cancel", role)

			assert.Equal(t, http.StatusConflict, d.Code())
			assert.Equal(t, "Delivered orders cannot be canceled", d.Message())
		}
	})

	t.Run("should cancel every other in-progress state for both roles", func(t *testing.T) {
		for _, current := range []order.Status{order.Placed, order.Processing, order.Ready, order.InRoute} {
			for _, role := range []order.Role{order.RoleCustomer, order.RoleRestaurantOwner} {
				d := engine.Decide(current, "Canceled", role)

				assert.True(t, d.OK())
				assert.True(t, d.PersistChange())
				assert.Equal(t, order.Canceled, d.Next())
				assert.Equal(t, "Order canceled", d.Message())
			}
		}
	})
}

func TestStatusEngine_Evaluate(t *testing.T) {
	t.Run("should normalize current status text", func(t *testing.T) {
		d := engine.Evaluate("preparing", "Processing", order.RoleRestaurantOwner)

		assert.Equal(t, order.Unchanged, d.Outcome())
		assert.Equal(t, order.Processing, d.Next())
	})

	t.Run("should be safe for concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d := engine.Evaluate("Ready", "In Route", order.RoleRestaurantOwner)
				assert.Equal(t, order.InRoute, d.Next())
			}()
		}
		wg.Wait()
	})
}
