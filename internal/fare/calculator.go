package fare

import (
	"context"

	"github.com/dortiz91/aerolinea/internal/domain"
)

// Per-kilometer rates and discounts, integer currency units. The tax is
// applied after the discount; every intermediate result truncates toward zero,
// which integer arithmetic gives for free.
const (
	taxRatePercent = 28

	highSeasonCostPerKM = 1000

	lowSeasonCostPerKMIndividual = 600
	lowSeasonCostPerKMCorporate  = 900
)

// Corporate discounts in basis points, keyed by company size.
const (
	discountSmallBP  = 200
	discountMediumBP = 1000
	discountLargeBP  = 2000
)

// DistanceSource resolves the distance in kilometers between two airports.
type DistanceSource interface {
	Distance(ctx context.Context, origin, destination string) (int, error)
}

// DistanceCache is an optional cache in front of the distance source. A miss
// is reported as (0, nil).
type DistanceCache interface {
	GetDistance(ctx context.Context, origin, destination string) (int, error)
	SetDistance(ctx context.Context, origin, destination string, km int) error
}

// seasonRates is the variant-specific part of the fare computation. The
// shared formula lives in applyRates.
type seasonRates interface {
	costPerKM(c *domain.Customer) int64
	discountBasisPoints(c *domain.Customer) int64
}

type highSeason struct{}

func (highSeason) costPerKM(*domain.Customer) int64 {
	return highSeasonCostPerKM
}

func (highSeason) discountBasisPoints(*domain.Customer) int64 {
	return 0
}

type lowSeason struct{}

func (lowSeason) costPerKM(c *domain.Customer) int64 {
	if c.Kind == domain.CustomerCorporate {
		return lowSeasonCostPerKMCorporate
	}
	return lowSeasonCostPerKMIndividual
}

func (lowSeason) discountBasisPoints(c *domain.Customer) int64 {
	if c.Kind != domain.CustomerCorporate {
		return 0
	}
	switch c.Size {
	case domain.CompanySmall:
		return discountSmallBP
	case domain.CompanyMedium:
		return discountMediumBP
	default:
		return discountLargeBP
	}
}

// seasonFor selects the rate variant by flight month: January-May and
// September-November are low season, the rest is high season.
func seasonFor(month int) seasonRates {
	switch {
	case month >= 1 && month <= 5, month >= 9 && month <= 11:
		return lowSeason{}
	default:
		return highSeason{}
	}
}

// Calculator computes tax-inclusive ticket fares. The distance lookup is the
// only collaborator; the optional cache sits in front of it.
type Calculator struct {
	distances DistanceSource
	cache     DistanceCache
}

func NewCalculator(distances DistanceSource, cache DistanceCache) *Calculator {
	return &Calculator{distances: distances, cache: cache}
}

// Calculate returns the fare for one seat on the flight. It is a pure
// function of the flight's route and date and the customer's kind and size.
func (c *Calculator) Calculate(ctx context.Context, flight *domain.Flight, customer *domain.Customer) (int64, error) {
	km, err := c.distance(ctx, flight.Route.Origin, flight.Route.Destination)
	if err != nil {
		return 0, err
	}
	rates := seasonFor(flight.Date.Month)
	return applyRates(int64(km), rates.costPerKM(customer), rates.discountBasisPoints(customer)), nil
}

// applyRates is the shared fare formula: discounted base cost plus tax, each
// step truncated to integer units.
func applyRates(km, costPerKM, discountBP int64) int64 {
	base := costPerKM * km
	net := base - base*discountBP/10000
	return net + net*taxRatePercent/100
}

func (c *Calculator) distance(ctx context.Context, origin, destination string) (int, error) {
	if c.cache != nil {
		if km, err := c.cache.GetDistance(ctx, origin, destination); err == nil && km > 0 {
			return km, nil
		}
	}

	km, err := c.distances.Distance(ctx, origin, destination)
	if err != nil {
		return 0, err
	}
	if c.cache != nil {
		_ = c.cache.SetDistance(ctx, origin, destination, km)
	}
	return km, nil
}
