// Package aggregate folds a directory of test result files into a single
// Summary. Each scan is a pure pass over the directory contents at call
// time; nothing is retained between scans.
package aggregate

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
)

// resultPattern matches the files the test runner writes, one per test.
const resultPattern = "*-result.json"

// Category label names counted into Summary.ByCategory.
var categoryLabels = map[string]bool{
	"suite":   true,
	"feature": true,
	"epic":    true,
}

// Defaults used when a scan finds no categorized or module-labeled records,
// so dashboards always have the expected series to plot.
func defaultCategories() map[string]int {
	return map[string]int{"smoke": 0, "regression": 0, "api": 0, "ui": 0}
}

func defaultModuleRates() map[string]float64 {
	return map[string]float64{"core": 0, "ui": 0, "api": 0}
}

// moduleStats is the per-module accumulator for pass rates. It lives only
// for the duration of one Scan call.
type moduleStats struct {
	total  int
	passed int
}

// Scan reads every *-result.json file directly under dir and folds the
// parseable ones into a Summary. Files that cannot be read or decoded are
// logged and skipped without contributing to any counter. A missing or
// unreadable directory behaves like an empty one: the server keeps serving
// default/zero metrics rather than failing the scrape.
func Scan(dir string) models.Summary {
	var s models.Summary
	s.ByCategory = make(map[string]int)
	s.PassRateByModule = make(map[string]float64)

	modules := make(map[string]*moduleStats)
	flaky := 0

	// Glob only errors on a malformed pattern; a missing directory simply
	// yields no matches, which is the degraded behavior we want.
	files, _ := filepath.Glob(filepath.Join(dir, resultPattern))

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable result file", "file", path, "error", err)
			continue
		}

		var result models.Result
		if err := json.Unmarshal(data, &result); err != nil {
			slog.Warn("skipping malformed result file", "file", path, "error", err)
			continue
		}

		s.Total++

		switch result.Status {
		case models.StatusPassed:
			s.Passed++
		case models.StatusFailed:
			s.Failed++
		case models.StatusSkipped:
			s.Skipped++
		case models.StatusBroken:
			s.Broken++
		}

		// No clamping: stop < start and mismatched units pass through as-is.
		s.DurationMS += result.Stop - result.Start

		for _, label := range result.Labels {
			if categoryLabels[label.Name] {
				s.ByCategory[label.Value]++
			}
			if label.Name == "package" {
				module := moduleName(label.Value)
				ms, ok := modules[module]
				if !ok {
					ms = &moduleStats{}
					modules[module] = ms
				}
				ms.total++
				if result.Status == models.StatusPassed {
					ms.passed++
				}
			}
		}

		if result.Flaky {
			flaky++
		}

		for _, step := range result.Steps {
			name := strings.ToLower(step.Name)
			if strings.Contains(name, "self-healing") || strings.Contains(name, "healed") {
				s.SelfHealingAttempts++
				if step.Status == models.StatusPassed {
					s.SelfHealingSuccess++
				}
			}
			// Not exclusive with the self-healing check: one step name may
			// count toward both.
			if strings.Contains(name, "ai-generated") || strings.Contains(name, "llm") {
				s.AIDataCount++
			}
		}
	}

	if s.Total > 0 {
		s.FlakyRate = float64(flaky) / float64(s.Total) * 100
	}

	for module, ms := range modules {
		if ms.total > 0 {
			s.PassRateByModule[module] = float64(ms.passed) / float64(ms.total) * 100
		} else {
			s.PassRateByModule[module] = 0
		}
	}

	if len(s.ByCategory) == 0 {
		s.ByCategory = defaultCategories()
	}
	if len(s.PassRateByModule) == 0 {
		s.PassRateByModule = defaultModuleRates()
	}

	return s
}

// moduleName extracts the module from a package label value: the segment
// before the last dot when a dot exists, otherwise the raw value. The rule
// is a literal port of the runner's convention ("com.enterprise.qa.api.tests"
// → "api") and intentionally does not normalize edge cases like trailing dots.
func moduleName(pkg string) string {
	if !strings.Contains(pkg, ".") {
		return pkg
	}
	parts := strings.Split(pkg, ".")
	return parts[len(parts)-2]
}
