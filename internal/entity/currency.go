package entity

// Currency rates are expressed as units of the currency per one US dollar.
type Currency struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}
