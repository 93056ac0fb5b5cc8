// CLAUDE:SUMMARY Rollup summary over enriched codes: severity counts, per-category stats, priority and recommendations.
package dtc

// Recommendation texts appended by rule triggers in Summarize.
const (
	recImmediate    = "Critical faults present - seek immediate attention before further driving."
	recEngine       = "Run a full engine diagnostic to isolate the reported engine faults."
	recTransmission = "Have the transmission inspected by a specialist workshop."
	recSafety       = "Schedule a safety-system inspection; restraint or crash-sensor faults were reported."
)

// Summarize folds an enriched code list into the analysis rollup.
// An empty list is valid input and yields a zero summary with low priority.
func Summarize(codes []Code) Summary {
	s := Summary{
		Categories: make(map[Category]CategoryStat, len(codes)),
		Priority:   SeverityLow,
	}

	var hasEngine, hasTransmission, hasSafety bool
	for _, c := range codes {
		s.TotalErrors++
		switch c.Severity {
		case SeverityHigh:
			s.CriticalErrors++
		case SeverityLow:
			s.LowErrors++
		default:
			s.MediumErrors++
		}

		stat := s.Categories[c.Category]
		stat.Count++
		stat.Codes = append(stat.Codes, c.Code)
		stat.EstimatedCost += c.EstimatedCost
		s.Categories[c.Category] = stat

		s.EstimatedTotalCost += c.EstimatedCost

		switch c.Category {
		case CategoryEngine:
			hasEngine = true
		case CategoryTransmission:
			hasTransmission = true
		case CategorySafety:
			hasSafety = true
		}
	}

	switch {
	case s.CriticalErrors > 0:
		s.Priority = SeverityHigh
	case s.MediumErrors > 2:
		s.Priority = SeverityMedium
	}

	if s.CriticalErrors > 0 {
		s.Recommendations = append(s.Recommendations, recImmediate)
	}
	if hasEngine {
		s.Recommendations = append(s.Recommendations, recEngine)
	}
	if hasTransmission {
		s.Recommendations = append(s.Recommendations, recTransmission)
	}
	if hasSafety {
		s.Recommendations = append(s.Recommendations, recSafety)
	}

	return s
}
