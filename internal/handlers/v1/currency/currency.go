package currency

// Currency is the API response model for a currency.
type Currency struct {
	ID   int64  `json:"id" doc:"Currency ID"`
	Code string `json:"code" doc:"3-letter currency code"`
	Name string `json:"name" doc:"Display name"`
}
