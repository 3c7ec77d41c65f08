// Package coupon models promotional percent-off coupons.
//
// A Coupon is read-only input to pricing: nothing in the order lifecycle mutates it.
// Validity is a pure predicate over the coupon and a point in time, see Coupon.IsValidAt.
package coupon
