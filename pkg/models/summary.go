package models

// Summary is the aggregated statistics computed from one scan of a results
// directory. It is rebuilt from scratch on every scan and never shared
// across requests.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Broken  int `json:"broken"`

	// DurationMS is the sum of stop-start over all records. Inputs are not
	// validated, so the sum may be negative for malformed timestamps.
	DurationMS int64 `json:"duration_ms"`

	// FlakyRate is the percentage of records marked flaky, 0 when Total is 0.
	FlakyRate float64 `json:"flaky_rate"`

	ByCategory       map[string]int     `json:"by_category"`
	PassRateByModule map[string]float64 `json:"pass_rate_by_module"`

	SelfHealingAttempts int `json:"self_healing_attempts"`
	SelfHealingSuccess  int `json:"self_healing_success"`
	AIDataCount         int `json:"ai_data_count"`
}
