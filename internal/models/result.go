package models

// MatchResult is the similarity between a resume and a job description as a
// percentage in [0, 100] with two-decimal precision.
type MatchResult struct {
	Percentage float64 `json:"match_percentage"`
}

type ExtractResponse struct {
	ExtractedText string `json:"extracted_text"`
}

type MatchResponse struct {
	MatchPercentage float64  `json:"match_percentage"`
	Filename        string   `json:"filename"`
	Tips            []string `json:"tips,omitempty"`
}

type ChargeRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type ChargeResponse struct {
	Message  string `json:"message"`
	ChargeID string `json:"charge_id,omitempty"`
}
