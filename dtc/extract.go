// CLAUDE:SUMMARY Code extraction: ordered candidate passes (fault block, line-anchored OBD-II, generic token) merged by a deterministic reducer.
package dtc

import (
	"regexp"
	"strings"
)

// Candidate is a code occurrence found by one extraction pass. Description
// is whatever text sat next to the code in the document, possibly empty.
type Candidate struct {
	Code        string
	Description string
}

// ExtractOptions tunes the extraction passes.
type ExtractOptions struct {
	// FaultBlockWindow is how many characters after a "<N> Faults Found"
	// marker are scanned for dense code lines. Default 2000.
	FaultBlockWindow int
}

func (o *ExtractOptions) defaults() {
	if o.FaultBlockWindow <= 0 {
		o.FaultBlockWindow = 2000
	}
}

var (
	// "3 Faults Found:" — colon optional, case-insensitive.
	faultBlockRe = regexp.MustCompile(`(?i)(\d+)\s+faults?\s+found:?`)

	// "17158 - Databus - Received Error Message" inside a fault block.
	faultLineRe = regexp.MustCompile(`^\s*(\d{4,5})\s*-\s*(.+?)\s*$`)

	// Bare manufacturer code with trailing description, anywhere in the text.
	numericLineRe = regexp.MustCompile(`^\s*(\d{4,8})\s*-\s*(.+?)\s*$`)

	// "P0300 - Random/Multiple Cylinder Misfire Detected".
	obdLineRe = regexp.MustCompile(`(?i)^\s*([PCBU])(\d{4})\s*-\s*(.+?)\s*$`)

	// Any OBD-II shaped token anywhere in the document.
	obdTokenRe = regexp.MustCompile(`(?i)[PCBU]\d{4}`)
)

// Extract scans report text and returns deduplicated code candidates.
//
// Three passes run in a fixed order; the reducer keeps the first occurrence
// of each normalized code and lets later passes only fill in a description
// that is still blank. First-seen order is preserved in the output.
func Extract(text string, opts ExtractOptions) []Candidate {
	opts.defaults()

	passes := [][]Candidate{
		faultBlockPass(text, opts.FaultBlockWindow),
		obdLinePass(text),
		numericLinePass(text),
		obdTokenPass(text),
	}

	var out []Candidate
	index := make(map[string]int)
	for _, pass := range passes {
		for _, c := range pass {
			code := NormalizeCode(c.Code)
			if code == "" {
				continue
			}
			if i, seen := index[code]; seen {
				if out[i].Description == "" && c.Description != "" {
					out[i].Description = c.Description
				}
				continue
			}
			index[code] = len(out)
			out = append(out, Candidate{Code: code, Description: c.Description})
		}
	}
	return out
}

// NormalizeCode upper-cases OBD-II letter-prefixed codes and leaves bare
// numeric manufacturer codes untouched.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	switch code[0] {
	case 'p', 'c', 'b', 'u', 'P', 'C', 'B', 'U':
		return strings.ToUpper(code)
	}
	return code
}

// faultBlockPass finds "<N> Faults Found" markers and parses the dense
// "<code> - <description>" lines that follow each one.
func faultBlockPass(text string, window int) []Candidate {
	var out []Candidate
	for _, loc := range faultBlockRe.FindAllStringIndex(text, -1) {
		end := loc[1] + window
		if end > len(text) {
			end = len(text)
		}
		for _, line := range strings.Split(text[loc[1]:end], "\n") {
			if m := faultLineRe.FindStringSubmatch(line); m != nil {
				out = append(out, Candidate{Code: m[1], Description: m[2]})
				continue
			}
			if m := obdLineRe.FindStringSubmatch(line); m != nil {
				out = append(out, Candidate{Code: m[1] + m[2], Description: m[3]})
			}
		}
	}
	return out
}

// obdLinePass recovers descriptions for OBD-II codes that sit alone on a
// line followed by "- description". Scans every line of the document.
func obdLinePass(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		if m := obdLineRe.FindStringSubmatch(line); m != nil {
			out = append(out, Candidate{Code: m[1] + m[2], Description: m[3]})
		}
	}
	return out
}

// numericLinePass catches 4-8 digit manufacturer codes with a trailing
// "- description" on their own line, outside any fault block.
func numericLinePass(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		if m := numericLineRe.FindStringSubmatch(line); m != nil {
			out = append(out, Candidate{Code: m[1], Description: m[2]})
		}
	}
	return out
}

// obdTokenPass catches OBD-II tokens anywhere in the text, without any
// description. Tokens inside longer alphanumeric runs (VINs, serials) can
// slip through here; the line-anchored passes above win the description
// merge, which limits the damage to an occasional bare false positive.
func obdTokenPass(text string) []Candidate {
	var out []Candidate
	for _, tok := range obdTokenRe.FindAllString(text, -1) {
		out = append(out, Candidate{Code: tok})
	}
	return out
}
