package tests

import (
	"math"
	"testing"

	"ravintola-sinet/config"
	"ravintola-sinet/delivery-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	restaurantLat = 62.60242470943839
	restaurantLng = 29.762670098205916
)

// kmNorth is the latitude offset of a point the given distance due north.
func kmNorth(km float64) float64 {
	return km / 6371.0 * 180 / math.Pi
}

func defaultEstimator() service.Estimator {
	return service.Estimator{
		OriginLat:   restaurantLat,
		OriginLng:   restaurantLng,
		Schedule:    service.NewFeeSchedule(3.00, 2, 1.00, 10.00),
		MaxRadiusKm: 10,
	}
}

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		expected float64
	}{
		{name: "same_point", lat: restaurantLat, lng: restaurantLng, expected: 0},
		{name: "five_km_north", lat: restaurantLat + kmNorth(5), lng: restaurantLng, expected: 5},
		{name: "one_degree_north", lat: restaurantLat + 1, lng: restaurantLng, expected: 111.19},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.HaversineKm(restaurantLat, restaurantLng, testCase.lat, testCase.lng)
			assert.InDelta(t, testCase.expected, got, 0.01)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := service.HaversineKm(60.1699, 24.9384, 61.4978, 23.7610)
	b := service.HaversineKm(61.4978, 23.7610, 60.1699, 24.9384)
	assert.InDelta(t, a, b, 1e-9)
	assert.InDelta(t, 160.0, a, 5.0)
}

func TestFeeSchedule_Fee(t *testing.T) {
	schedule := service.NewFeeSchedule(3.00, 2, 1.00, 10.00)

	tests := []struct {
		name     string
		distance float64
		expected string
	}{
		{name: "zero_distance", distance: 0, expected: "0.00"},
		{name: "within_base", distance: 1.2, expected: "3.00"},
		{name: "at_base_edge", distance: 2, expected: "3.00"},
		{name: "per_km_after_base", distance: 5, expected: "6.00"},
		{name: "fractional_km", distance: 3.5, expected: "4.50"},
		{name: "capped", distance: 25, expected: "10.00"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, schedule.Fee(testCase.distance).StringFixed(2))
		})
	}
}

func TestLoadDelivery_DefaultSchedule(t *testing.T) {
	for _, key := range []string{"DELIVERY_BASE_FEE", "DELIVERY_BASE_KM", "DELIVERY_PER_KM", "DELIVERY_MAX_FEE", "DELIVERY_MAX_RADIUS_KM"} {
		t.Setenv(key, "")
	}
	delivery := config.LoadDelivery()
	schedule := service.NewFeeSchedule(delivery.BaseFee, delivery.BaseKm, delivery.PerKm, delivery.MaxFee)

	tests := []struct {
		name     string
		distance float64
		expected string
	}{
		{name: "within_base", distance: 1.5, expected: "1.99"},
		{name: "at_base_edge", distance: 2, expected: "1.99"},
		{name: "five_km", distance: 5, expected: "4.96"},
		{name: "eight_km", distance: 8, expected: "7.93"},
		{name: "capped_at_twelve_km", distance: 12, expected: "8.99"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, schedule.Fee(testCase.distance).StringFixed(2))
		})
	}
	assert.Equal(t, 10.0, delivery.MaxRadiusKm)
}

func TestFeeSchedule_Monotonic(t *testing.T) {
	schedule := service.NewFeeSchedule(3.00, 2, 1.00, 10.00)
	previous := schedule.Fee(0.01)
	for d := 0.25; d <= 30; d += 0.25 {
		fee := schedule.Fee(d)
		assert.True(t, fee.GreaterThanOrEqual(previous), "fee dropped at %.2f km", d)
		assert.True(t, fee.LessThanOrEqual(money("10.00")))
		previous = fee
	}
}

func TestFeeSchedule_Uncapped(t *testing.T) {
	schedule := service.NewFeeSchedule(2, 0, 0.5, 0)
	assert.Equal(t, "4.50", schedule.Fee(5).StringFixed(2))
	assert.Equal(t, "27.00", schedule.Fee(50).StringFixed(2))
}

func TestEstimator_Estimate(t *testing.T) {
	estimator := service.Estimator{
		OriginLat:   restaurantLat,
		OriginLng:   restaurantLng,
		Schedule:    service.NewFeeSchedule(2, 0, 0.5, 0),
		MaxRadiusKm: 4,
	}

	tests := []struct {
		name        string
		lat, lng    float64
		expectedErr error
		distance    float64
		fee         string
		inRange     bool
	}{
		{name: "outside_radius_still_priced", lat: restaurantLat + kmNorth(5), lng: restaurantLng, distance: 5, fee: "4.50", inRange: false},
		{name: "inside_radius", lat: restaurantLat + kmNorth(2), lng: restaurantLng, distance: 2, fee: "3.00", inRange: true},
		{name: "at_restaurant", lat: restaurantLat, lng: restaurantLng, distance: 0, fee: "0.00", inRange: true},
		{name: "latitude_out_of_bounds", lat: 91, lng: 0, expectedErr: service.ErrInvalidCoordinates},
		{name: "longitude_out_of_bounds", lat: 0, lng: -181, expectedErr: service.ErrInvalidCoordinates},
		{name: "nan", lat: math.NaN(), lng: 0, expectedErr: service.ErrInvalidCoordinates},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			estimate, err := estimator.Estimate(testCase.lat, testCase.lng)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, testCase.distance, estimate.DistanceKm, 0.01)
			assert.Equal(t, testCase.fee, estimate.DeliveryFee.StringFixed(2))
			assert.Equal(t, testCase.inRange, estimate.InRange)
			assert.Equal(t, 4.0, estimate.MaxRadiusKm)
		})
	}
}
