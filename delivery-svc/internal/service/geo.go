package service

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"ravintola-sinet/delivery-svc/internal/domain"
)

const earthRadiusKm = 6371.0

var (
	ErrOutOfRange         = errors.New("delivery location is out of range")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// FeeSchedule charges BaseFee up to BaseKm and PerKm for every kilometre
// after that. A positive MaxFee caps the result.
type FeeSchedule struct {
	BaseFee decimal.Decimal
	BaseKm  decimal.Decimal
	PerKm   decimal.Decimal
	MaxFee  decimal.Decimal
}

func NewFeeSchedule(baseFee, baseKm, perKm, maxFee float64) FeeSchedule {
	return FeeSchedule{
		BaseFee: decimal.NewFromFloat(baseFee),
		BaseKm:  decimal.NewFromFloat(baseKm),
		PerKm:   decimal.NewFromFloat(perKm),
		MaxFee:  decimal.NewFromFloat(maxFee),
	}
}

func (f FeeSchedule) Fee(distanceKm float64) decimal.Decimal {
	if distanceKm <= 0 {
		return decimal.Zero
	}
	distance := decimal.NewFromFloat(distanceKm)
	fee := f.BaseFee
	if distance.GreaterThan(f.BaseKm) {
		fee = fee.Add(distance.Sub(f.BaseKm).Mul(f.PerKm))
	}
	if f.MaxFee.IsPositive() && fee.GreaterThan(f.MaxFee) {
		fee = f.MaxFee
	}
	return fee.Round(2)
}

type Estimator struct {
	OriginLat   float64
	OriginLng   float64
	Schedule    FeeSchedule
	MaxRadiusKm float64
}

func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Estimate prices delivery to a point. The fee is reported even when the
// point lies outside the service radius.
func (e Estimator) Estimate(lat, lng float64) (domain.Estimate, error) {
	if !ValidCoordinates(lat, lng) {
		return domain.Estimate{}, ErrInvalidCoordinates
	}
	distance := HaversineKm(e.OriginLat, e.OriginLng, lat, lng)
	return domain.Estimate{
		DistanceKm:  math.Round(distance*100) / 100,
		DeliveryFee: e.Schedule.Fee(distance),
		InRange:     distance <= e.MaxRadiusKm,
		MaxRadiusKm: e.MaxRadiusKm,
	}, nil
}
