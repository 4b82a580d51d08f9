package entity

// SpendingSummary - the aggregated dashboard the backend computes per user
type SpendingSummary struct {
	// MonthlyTotal - sum of all subscription amounts
	MonthlyTotal float64 `json:"monthly_total"`
	// TopExpensive - the N most expensive subscriptions, amount descending
	TopExpensive []Subscription `json:"top3_expensive"`
	// CategorySpending - per-category totals
	CategorySpending []CategoryTotal `json:"category_spending"`
	// MonthlyHistory - spend per month label for the trailing months
	MonthlyHistory map[string]float64 `json:"monthly_history"`
}

// CategoryTotal - one per-category spending entry
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
