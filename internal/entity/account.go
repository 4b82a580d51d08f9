package entity

// Account - a linked bank account, as much of it as this client reads
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MerchantLink - curated cancellation link served by the backend
type MerchantLink struct {
	MerchantName string `json:"merchant_name"`
	CancelURL    string `json:"cancel_url"`
}
