package booking

type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int64  `json:"count"`
}

type AppointmentStatistics struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	Upcoming7Days int64            `json:"upcoming_7_days"`
	MonthlyTrend  []MonthlyCount   `json:"monthly_trend"`
	BySpecialty   []SpecialtyCount `json:"by_specialty"`
}

type PatientStatistics struct {
	TotalPatients int64 `json:"total_patients"`
	NewPatients   int64 `json:"new_patients"` // last 30 days
}
