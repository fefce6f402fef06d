// Package searchurl builds deep links into third-party award search
// tools from a trip and a configured URL template. Templates contain
// {variableName} placeholders filled from a fixed set of trip-derived
// variables.
package searchurl

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9]*)\}`)

// variable holds a substitution value and whether it is numeric.
// Numeric values are substituted verbatim; everything else is
// percent-encoded.
type variable struct {
	value   string
	numeric bool
}

// Variables derives the substitution set from a trip.
func Variables(trip *models.Trip) map[string]variable {
	return map[string]variable{
		"origin":          {value: trip.Origin},
		"destination":     {value: trip.Destination},
		"dateStart":       {value: trip.DateStart},
		"dateEnd":         {value: trip.DateEnd},
		"flexibilityDays": {value: strconv.Itoa(trip.FlexibilityDays), numeric: true},
		"passengers":      {value: strconv.Itoa(trip.Passengers), numeric: true},
		"cabinPref":       {value: trip.CabinPref},
		"cabin":           {value: cabinCode(trip.CabinPref)},
	}
}

// Build fills template placeholders from the trip. An unresolvable
// placeholder substitutes the empty string.
func Build(template string, trip *models.Trip) string {
	vars := Variables(trip)
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := vars[name]
		if !ok {
			return ""
		}
		if v.numeric {
			return v.value
		}
		return url.QueryEscape(v.value)
	})
}

// BuildAll renders every enabled integration into a named link.
func BuildAll(integrations []models.AwardSearchIntegration, trip *models.Trip) map[string]string {
	links := make(map[string]string, len(integrations))
	for _, integ := range integrations {
		if !integ.Enabled {
			continue
		}
		links[integ.Name] = Build(integ.URLTemplate, trip)
	}
	return links
}

// cabinCode lowercases a cabin preference into a URL-friendly code,
// e.g. "Premium Economy" -> "premium-economy".
func cabinCode(pref string) string {
	code := strings.ToLower(strings.TrimSpace(pref))
	return strings.ReplaceAll(code, " ", "-")
}
