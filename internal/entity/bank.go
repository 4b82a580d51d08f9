package entity

import (
	"math"
	"strconv"
)

// Transaction - a bank transaction as returned by the aggregator,
// passed through the backend untouched.
type Transaction struct {
	ID           string                 `json:"id,omitempty"`
	Descriptions TransactionDescription `json:"descriptions"`
	Amount       TransactionAmount      `json:"amount"`
	Dates        TransactionDates       `json:"dates"`
}

// TransactionDescription - display wins over original when both are set
type TransactionDescription struct {
	Display  string `json:"display,omitempty"`
	Original string `json:"original,omitempty"`
}

// Text returns the best available description.
func (d TransactionDescription) Text() string {
	if d.Display != "" {
		return d.Display
	}
	return d.Original
}

// TransactionAmount - scaled decimal in the aggregator's wire encoding
type TransactionAmount struct {
	Value        ScaledValue `json:"value"`
	CurrencyCode string      `json:"currencyCode,omitempty"`
}

// ScaledValue - unscaledValue * 10^-scale; both arrive as strings
type ScaledValue struct {
	UnscaledValue string `json:"unscaledValue"`
	Scale         string `json:"scale"`
}

// Float converts the scaled pair to an absolute amount. Malformed
// values come back as 0, false.
func (v ScaledValue) Float() (float64, bool) {
	unscaled, err := strconv.ParseFloat(v.UnscaledValue, 64)
	if err != nil {
		return 0, false
	}
	scale, err := strconv.Atoi(v.Scale)
	if err != nil {
		return 0, false
	}
	return math.Abs(unscaled / math.Pow10(scale)), true
}

// TransactionDates - booked date as ISO string
type TransactionDates struct {
	Booked string `json:"booked,omitempty"`
}

// DetectedSubscription - one AI detection result from the backend's
// transaction or PDF analysis.
type DetectedSubscription struct {
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category,omitempty"`
	Frequency       string  `json:"frequency,omitempty"`
	Confidence      int     `json:"confidence"`
	RenewalDate     string  `json:"renewal_date"`
	TransactionDate string  `json:"transaction_date,omitempty"`
	Reasoning       string  `json:"reasoning,omitempty"`
	Source          string  `json:"source,omitempty"`
}
