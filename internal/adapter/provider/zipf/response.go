package zipf

// apiResponse is the frequency service wire format for a single word lookup.
type apiResponse struct {
	Word     string  `json:"word"`
	Language string  `json:"language"`
	Zipf     float64 `json:"zipf"`
}
