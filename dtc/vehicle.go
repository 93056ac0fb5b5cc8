// CLAUDE:SUMMARY Vehicle metadata extraction: VIN, mileage and scan date via independent regex passes.
package dtc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// 17 chars after a "VIN:" style label. I, O and Q are not valid VIN
	// letters but scan tools differ, so plain alphanumerics are accepted.
	vinRe = regexp.MustCompile(`(?i)\bVIN\b[:\s#]*([A-Z0-9]{17})`)

	// "184,532 km", "114000 kilometers", "87,341 miles".
	mileageRe = regexp.MustCompile(`(?i)\b([\d][\d.,]*)\s*(km|kilometers?|miles?|mi)\b`)

	// "2024-03-17", "17.03.2024", "3/17/24".
	scanDateRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{1,2}[./-]\d{1,2}[./-]\d{2,4})\b`)
)

// ExtractVehicleInfo recovers VIN, mileage and scan date from report text.
// The three passes are independent; each missing field is simply left zero.
func ExtractVehicleInfo(text string) VehicleInfo {
	var info VehicleInfo

	if m := vinRe.FindStringSubmatch(text); m != nil {
		info.VIN = strings.ToUpper(m[1])
	}

	if m := mileageRe.FindStringSubmatch(text); m != nil {
		digits := strings.NewReplacer(",", "", ".", "").Replace(m[1])
		if v, err := strconv.ParseInt(digits, 10, 64); err == nil && v > 0 {
			info.Mileage = v
			if strings.HasPrefix(strings.ToLower(m[2]), "k") {
				info.MileageUnit = "km"
			} else {
				info.MileageUnit = "miles"
			}
		}
	}

	if m := scanDateRe.FindStringSubmatch(text); m != nil {
		info.ScanDate = m[1]
	}

	return info
}
