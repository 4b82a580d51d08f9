package entity

// User - the account record returned by signup
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
