package viewmodel

import (
	"strings"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/tripmetrics"
)

// OptionView is one award option prepared for template rendering. All
// numbers are pre-formatted; unknown values carry the placeholder.
type OptionView struct {
	Program      string
	Route        string
	Miles        string
	Fees         string
	CashValue    string
	TransferTime string
	TransferNote string
	Badges       []string
	Primary      bool
}

// SharePage is everything the public itinerary page needs. It exposes
// no internal ids and no client contact details beyond the first name.
type SharePage struct {
	ClientFirstName string
	TripTitle       string
	Route           string
	Dates           string
	OptionA         *OptionView
	Backups         []OptionView
	Hotels          []models.HotelOption
	Notes           string
	Savings         string
	MilesUsed       string
}

// NewSharePage assembles the public view of an itinerary.
func NewSharePage(client *models.Client, trip *models.Trip, itinerary *models.Itinerary) SharePage {
	page := SharePage{
		ClientFirstName: firstName(client.Name),
		TripTitle:       trip.Title,
		Notes:           itinerary.Notes,
		Hotels:          trip.HotelOptions,
	}

	if trip.Origin != "" && trip.Destination != "" {
		page.Route = trip.Origin + " – " + trip.Destination
	}
	if trip.DateStart != "" && trip.DateEnd != "" {
		page.Dates = trip.DateStart + " – " + trip.DateEnd
	}

	metrics := tripmetrics.ComputeTripMetrics(trip)
	page.Savings = tripmetrics.FormatCurrency(metrics.EstimatedSavings)
	page.MilesUsed = tripmetrics.FormatMiles(metrics.MilesUsed)

	if opt := trip.FindAwardOption(itinerary.OptionAID); opt != nil {
		view := newOptionView(opt, true)
		page.OptionA = &view
	}
	for _, id := range itinerary.BackupOptionIDs {
		if opt := trip.FindAwardOption(id); opt != nil {
			page.Backups = append(page.Backups, newOptionView(opt, false))
		}
	}
	return page
}

func newOptionView(opt *models.AwardOption, primary bool) OptionView {
	miles := opt.MilesRequired
	fees := opt.FeesUSD
	view := OptionView{
		Program:      opt.Program,
		Route:        opt.Route,
		Miles:        tripmetrics.FormatMiles(&miles),
		Fees:         tripmetrics.FormatCurrency(&fees),
		CashValue:    tripmetrics.FormatCurrency(opt.CashValueUSD),
		TransferTime: opt.TransferTime,
		Badges:       opt.Badges,
		Primary:      primary,
	}
	if opt.TransferRequired {
		view.TransferNote = "Points transfer required (" + opt.TransferTime + ")"
	}
	return view
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
