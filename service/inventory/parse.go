package inventory

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/elC0mpa/aws-finlens/service/catalog"
)

// preferredCostColumns are checked first, in order, when extracting the
// baseline monthly cost from an inventory record
var preferredCostColumns = []string{
	"currentmonthlycostusd",
	"monthlycostusd",
	"monthlycost",
	"estimatedmonthlycostusd",
	"estimatedmonthlycost",
	"unblendedcostusd",
	"unblendedcost",
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// toFloat extracts a float from free-form report cell text ("$1,234.50",
// "12 GB", ...). Unparsable values count as zero.
func toFloat(value string) float64 {
	text := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if text == "" {
		return 0
	}

	match := numberPattern.FindString(text)
	if match == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// extractMonthlyCost pulls the monthly cost out of one inventory record,
// preferring the well-known column names
func extractMonthlyCost(record map[string]string) float64 {
	normalized := make(map[string]string, len(record))
	for key, value := range record {
		normalized[catalog.NormalizeKey(key)] = value
	}

	for _, key := range preferredCostColumns {
		if value, ok := normalized[key]; ok {
			return toFloat(value)
		}
	}

	keys := make([]string, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if isMonthlyCostColumn(key) {
			return toFloat(normalized[key])
		}
	}

	return 0
}

// hasMonthlyCostField reports whether a record carries a recognizable
// monthly cost column at all
func hasMonthlyCostField(record map[string]string) bool {
	for key := range record {
		normalized := catalog.NormalizeKey(key)
		for _, preferred := range preferredCostColumns {
			if normalized == preferred {
				return true
			}
		}
		if isMonthlyCostColumn(normalized) {
			return true
		}
	}
	return false
}

func isMonthlyCostColumn(normalizedKey string) bool {
	return strings.Contains(normalizedKey, "monthly") &&
		strings.Contains(normalizedKey, "cost") &&
		!strings.Contains(normalizedKey, "optimized") &&
		!strings.Contains(normalizedKey, "saving")
}
