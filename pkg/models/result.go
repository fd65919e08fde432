package models

// Status values emitted by the test runner for results and steps.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusBroken  = "broken"
)

// Result is one test execution record as written by the runner into
// <uuid>-result.json. Only the fields the aggregation reads are declared;
// unknown fields in the file are ignored by the decoder.
type Result struct {
	Status string  `json:"status"`
	Start  int64   `json:"start"`
	Stop   int64   `json:"stop"`
	Labels []Label `json:"labels"`
	Flaky  bool    `json:"flaky"`
	Steps  []Step  `json:"steps"`
}

// Label is one name/value pair from a result's label list. The name
// vocabulary is open; the aggregation only interprets suite, feature,
// epic and package.
type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Step is one step inside a test result.
type Step struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}
