package domain

var (
	MessageSuccessGetImpactStats = "impact statistics retrieved successfully"
	MessageFailedGetImpactStats  = "failed to retrieve impact statistics"
)

const (
	MEALS_PER_RESERVATION = 3
	CO2_KG_PER_MEAL       = 2.5
)

type (
	ImpactStats struct {
		TotalDonations    int            `json:"total_donations"`
		TotalReservations int            `json:"total_reservations"`
		MealsProvided     int            `json:"meals_provided"`
		CO2SavedKg        int            `json:"co2_saved_kg"`
		ActiveUsers       int            `json:"active_users"`
		MonthlyTrend      []MonthlyPoint `json:"monthly_trend"`
	}

	// MonthlyPoint is synthesized from current totals, not historical
	// snapshots. The trend panel is a placeholder until real time-series
	// data exists.
	MonthlyPoint struct {
		Month      string `json:"month"`
		CO2SavedKg int    `json:"co2_saved_kg"`
		FoodSaved  int    `json:"food_saved"`
	}
)
