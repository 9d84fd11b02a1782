package impact

import (
	"context"
	"math"

	"Food2Plate-Backend/domain"
)

// trendMonths is the fixed window the dashboard chart renders.
var trendMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

type (
	ImpactService interface {
		GetImpactStats(ctx context.Context) (*domain.ImpactStats, error)
	}

	impactService struct {
		impactRepository ImpactRepository
	}
)

func NewImpactService(impactRepository ImpactRepository) ImpactService {
	return &impactService{impactRepository: impactRepository}
}

// MonthlyTrend scales the current totals over the chart window with a
// rising factor per month. The points are synthesized, not historical.
func MonthlyTrend(co2SavedKg int, mealsProvided int) []domain.MonthlyPoint {
	points := make([]domain.MonthlyPoint, 0, len(trendMonths))
	for idx, month := range trendMonths {
		factor := 0.1 + float64(idx)*0.15
		points = append(points, domain.MonthlyPoint{
			Month:      month,
			CO2SavedKg: int(math.Round(float64(co2SavedKg) * factor)),
			FoodSaved:  int(math.Round(float64(mealsProvided) * factor)),
		})
	}
	return points
}

func (s *impactService) GetImpactStats(ctx context.Context) (*domain.ImpactStats, error) {
	donations, err := s.impactRepository.CountCompletedDonations(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.impactRepository.CountCompletedReservations(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.impactRepository.CountProfiles(ctx)
	if err != nil {
		return nil, err
	}

	meals := int(reservations) * domain.MEALS_PER_RESERVATION
	co2 := int(math.Round(float64(meals) * domain.CO2_KG_PER_MEAL))

	return &domain.ImpactStats{
		TotalDonations:    int(donations),
		TotalReservations: int(reservations),
		MealsProvided:     meals,
		CO2SavedKg:        co2,
		ActiveUsers:       int(users),
		MonthlyTrend:      MonthlyTrend(co2, meals),
	}, nil
}
