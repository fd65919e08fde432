// Package exposition serializes a Summary into the Prometheus plaintext
// exposition format. The metric set, HELP/TYPE text, and family order are a
// fixed contract with the scrape configuration and must not change; families
// are therefore emitted by hand in declaration order rather than through a
// metrics registry, which would sort them by name and hold state across
// requests.
package exposition

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
)

// Render returns the exposition body for one Summary. now supplies the
// test_metrics_last_update_timestamp value; callers pass time.Now(), tests
// pass a fixed instant.
func Render(s models.Summary, now time.Time) string {
	var b strings.Builder

	scalar(&b, "test_total", "Total number of tests", "gauge", itoa(s.Total))
	scalar(&b, "test_passed_total", "Number of passed tests", "gauge", itoa(s.Passed))
	scalar(&b, "test_failed_total", "Number of failed tests", "gauge", itoa(s.Failed))
	scalar(&b, "test_skipped_total", "Number of skipped tests", "gauge", itoa(s.Skipped))
	scalar(&b, "test_broken_total", "Number of broken tests", "gauge", itoa(s.Broken))

	scalar(&b, "test_execution_duration_ms", "Total test execution duration in milliseconds", "gauge",
		strconv.FormatInt(s.DurationMS, 10))
	scalar(&b, "test_flaky_rate", "Percentage of flaky tests", "gauge", ftoa(s.FlakyRate))

	header(&b, "test_count_by_category", "Test count by category", "gauge")
	for _, category := range sortedKeys(s.ByCategory) {
		line(&b, "test_count_by_category", "category", category, itoa(s.ByCategory[category]))
	}

	header(&b, "test_pass_rate_by_module", "Pass rate by module", "gauge")
	for _, module := range sortedFloatKeys(s.PassRateByModule) {
		line(&b, "test_pass_rate_by_module", "module", module, ftoa(s.PassRateByModule[module]))
	}

	scalar(&b, "self_healing_attempt_count", "Number of self-healing attempts", "counter",
		itoa(s.SelfHealingAttempts))
	scalar(&b, "self_healing_success_count", "Number of successful self-healing events", "counter",
		itoa(s.SelfHealingSuccess))
	scalar(&b, "ai_data_generation_count", "Number of AI-generated test data items", "counter",
		itoa(s.AIDataCount))

	scalar(&b, "test_metrics_last_update_timestamp", "Last update timestamp", "gauge",
		strconv.FormatInt(now.Unix(), 10))

	return b.String()
}

func header(b *strings.Builder, name, help, typ string) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(help)
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(typ)
	b.WriteByte('\n')
}

func scalar(b *strings.Builder, name, help, typ, value string) {
	header(b, name, help, typ)
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

func line(b *strings.Builder, name, labelName, labelValue, value string) {
	b.WriteString(name)
	b.WriteByte('{')
	b.WriteString(labelName)
	b.WriteString(`="`)
	b.WriteString(labelValue)
	b.WriteString(`"} `)
	b.WriteString(value)
	b.WriteByte('\n')
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// ftoa renders rates in the shortest decimal form that round-trips, which is
// locale-independent and never produces exponents for percentage-range values.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Label lines are emitted in sorted key order so a single response is
// deterministic regardless of map iteration.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
