package portalstore

import (
	"time"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// DefaultSeed is the dataset a fresh portal starts from: one sample
// client with an in-flight trip, starter knowledge articles, and the
// default award-search integrations.
func DefaultSeed() Snapshot {
	seededAt := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	cashValue := 3400.0

	client := models.Client{
		ID:     "seed-client-1",
		Name:   "Jordan Avery",
		Email:  "jordan.avery@example.com",
		Status: models.CLIENT_STATUS_ACTIVE,
		Preferences: models.TravelPreferences{
			HomeAirports:    []string{"JFK", "EWR"},
			CabinClass:      "Business",
			FlexibilityDays: 3,
			Notes:           "Prefers morning departures.",
		},
		Loyalty: models.LoyaltyBalances{
			AmexMR:  182000,
			ChaseUR: 64000,
			Other:   map[string]int{"Alaska": 31000},
		},
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	}

	trip := models.Trip{
		ID:          "seed-trip-1",
		ClientID:    client.ID,
		Title:       "Paris anniversary",
		Status:      models.TRIP_STATUS_SEARCHING,
		Origin:      "JFK",
		Destination: "CDG",
		DateStart:   "2026-09-10",
		DateEnd:     "2026-09-20",
		Passengers:  2,
		CabinPref:   "Business",
		Intake: models.IntakeProgress{
			TravelerNamesCaptured:      true,
			PreferredAirportsConfirmed: true,
			DatesConfirmed:             true,
			CabinConfirmed:             true,
		},
		AwardOptions: []models.AwardOption{
			{
				ID:               "seed-option-1",
				TripID:           "seed-trip-1",
				Program:          "Virgin Atlantic",
				Route:            "JFK–CDG",
				MilesRequired:    50000,
				FeesUSD:          220,
				CashValueUSD:     &cashValue,
				TransferRequired: true,
				TransferTime:     models.TRANSFER_TIME_INSTANT,
				Badges:           []string{"Sweet spot"},
				Position:         0,
				CreatedAt:        seededAt,
			},
		},
		HotelOptions: []models.HotelOption{},
		CreatedAt:    seededAt,
		UpdatedAt:    seededAt,
	}

	return Snapshot{
		SchemaVersion: SchemaVersion,
		Clients:       []models.Client{client},
		Trips:         []models.Trip{trip},
		Itineraries:   []models.Itinerary{},
		KnowledgeArticles: []models.KnowledgeArticle{
			{
				ID:        "seed-article-1",
				Title:     "Transfer partner cheat sheet",
				Category:  "Programs",
				Body:      "# Transfer partners\n\nAmex MR moves to Virgin Atlantic instantly. Chase UR to Hyatt is instant; to United allow 1–2 days.",
				Tags:      []string{"transfers", "amex", "chase"},
				CreatedAt: seededAt,
				UpdatedAt: seededAt,
			},
			{
				ID:        "seed-article-2",
				Title:     "Itinerary SOP",
				Category:  "Process",
				Body:      "# SOP\n\nComplete at least 4 intake items before searching. Pin one option before generating an itinerary.",
				Tags:      []string{"sop"},
				CreatedAt: seededAt,
				UpdatedAt: seededAt,
			},
		},
		CommunicationEntries: []models.CommunicationEntry{},
		AwardSearchIntegrations: []models.AwardSearchIntegration{
			{
				ID:          "seed-integration-1",
				Name:        "seatfinder",
				URLTemplate: "https://seatfinder.example.com/search?o={origin}&d={destination}&from={dateStart}&to={dateEnd}&pax={passengers}&cabin={cabin}",
				Enabled:     true,
				Position:    0,
			},
			{
				ID:          "seed-integration-2",
				Name:        "milemap",
				URLTemplate: "https://milemap.example.com/{origin}/{destination}?flex={flexibilityDays}",
				Enabled:     true,
				Position:    1,
			},
		},
		AuditLog: []models.AuditEntry{},
	}
}
