// Package awardparse extracts structured award-option fields from
// free-form text pasted out of third-party award search tools. Matching
// is best-effort: a field is set only when a pattern confidently
// matches, so callers can merge results into existing form state without
// clobbering values the agent already entered.
package awardparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// Result holds the extracted fields. Nil means the pattern did not match;
// it is never a default value.
type Result struct {
	Program          *string  `json:"program,omitempty"`
	Route            *string  `json:"route,omitempty"`
	MilesRequired    *int     `json:"miles_required,omitempty"`
	FeesUSD          *float64 `json:"fees_usd,omitempty"`
	TransferRequired *bool    `json:"transfer_required,omitempty"`
	TransferTime     *string  `json:"transfer_time,omitempty"`
}

var (
	milesRe          = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|\d+)\s*(k)?\s*(?:miles?|pts?|points?)\b`)
	milesBareKRe     = regexp.MustCompile(`(?i)\b(\d{2,3})k\b`)
	feesRe           = regexp.MustCompile(`(?i)(?:\$\s*|\bUSD\s+)(\d+(?:\.\d+)?)`)
	routeRe          = regexp.MustCompile(`\b([A-Za-z]{3})\s*(?:[-–—→]|->)\s*([A-Za-z]{3})\b`)
	transferRe       = regexp.MustCompile(`(?i)\btransfer\b`)
	instantRe        = regexp.MustCompile(`(?i)\binstant\b`)
	oneTwoDaysRe     = regexp.MustCompile(`(?i)\b1\s*[-–]\s*2\s*days?\b`)
	unknownTimeRe    = regexp.MustCompile(`(?i)\bunknown\b`)
	programSeparator = " - "
)

// Parse runs every extractor over the normalized text. It never fails;
// the zero Result means nothing matched.
func Parse(text string) Result {
	normalized := normalize(text)
	if normalized == "" {
		return Result{}
	}

	return Result{
		Program:          extractProgram(normalized),
		Route:            extractRoute(normalized),
		MilesRequired:    extractMiles(normalized),
		FeesUSD:          extractFees(normalized),
		TransferRequired: extractTransferRequired(normalized),
		TransferTime:     extractTransferTime(normalized),
	}
}

// normalize collapses whitespace runs to single spaces and trims.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractMiles prefers a number with a mile/point keyword (optional "k"
// multiplier), falling back to a bare 2-3 digit "k" amount like "85k".
func extractMiles(s string) *int {
	if m := milesRe.FindStringSubmatch(s); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil
		}
		if m[2] != "" {
			n *= 1000
		}
		return &n
	}
	if m := milesBareKRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		n *= 1000
		return &n
	}
	return nil
}

// extractFees takes the first currency-like token ($220, USD 45.50).
func extractFees(s string) *float64 {
	m := feesRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// extractProgram takes the text before the first " - " separator.
func extractProgram(s string) *string {
	idx := strings.Index(s, programSeparator)
	if idx <= 0 {
		return nil
	}
	program := strings.TrimSpace(s[:idx])
	if program == "" {
		return nil
	}
	return &program
}

// extractRoute matches an airport pair joined by a hyphen, dash or arrow
// and renders it with an en-dash regardless of the input separator.
func extractRoute(s string) *string {
	m := routeRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	route := strings.ToUpper(m[1]) + "–" + strings.ToUpper(m[2])
	return &route
}

// extractTransferRequired is set only when the standalone word
// "transfer" appears; absence stays absent rather than false.
func extractTransferRequired(s string) *bool {
	if !transferRe.MatchString(s) {
		return nil
	}
	yes := true
	return &yes
}

func extractTransferTime(s string) *string {
	switch {
	case instantRe.MatchString(s):
		v := models.TRANSFER_TIME_INSTANT
		return &v
	case oneTwoDaysRe.MatchString(s):
		v := models.TRANSFER_TIME_1_2_DAYS
		return &v
	case unknownTimeRe.MatchString(s):
		v := models.TRANSFER_TIME_UNKNOWN
		return &v
	}
	return nil
}

// ApplyTo merges matched fields onto an award option, leaving fields the
// parser could not match untouched.
func (r Result) ApplyTo(opt *models.AwardOption) {
	if r.Program != nil {
		opt.Program = *r.Program
	}
	if r.Route != nil {
		opt.Route = *r.Route
	}
	if r.MilesRequired != nil {
		opt.MilesRequired = *r.MilesRequired
	}
	if r.FeesUSD != nil {
		opt.FeesUSD = *r.FeesUSD
	}
	if r.TransferRequired != nil {
		opt.TransferRequired = *r.TransferRequired
	}
	if r.TransferTime != nil {
		opt.TransferTime = *r.TransferTime
	}
}
