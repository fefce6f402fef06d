package apiv1

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/app/repository"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
)

// newShareTestApp seeds an itinerary for the seeded Paris trip and
// mounts only the share-link route.
func newShareTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	store := portalstore.New(portalstore.NewMemoryStorage())
	store.Hydrate()
	repos := repository.NewLocalRepositories(store)

	require.NoError(t, repos.Trip.PinAwardOption("seed-trip-1", "seed-option-1"))
	require.NoError(t, repos.Trip.SetStatus("seed-trip-1", models.TRIP_STATUS_DRAFT_READY))
	itinerary, err := repos.Itinerary.Generate("seed-trip-1")
	require.NoError(t, err)

	app := fiber.New()
	server := &APIServer{repos: repos}
	app.Post("/itineraries/:id/share", server.IssueShareLink)
	return app, itinerary.ID
}

func issueShare(t *testing.T, app *fiber.App, path string) string {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("POST", path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ShareToken string `json:"share_token"`
		SharePath  string `json:"share_path"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.ShareToken)
	assert.Contains(t, body.SharePath, body.ShareToken)
	return body.ShareToken
}

func TestIssueShareLinkIsStableAcrossRepeatCalls(t *testing.T) {
	app, itineraryID := newShareTestApp(t)
	path := "/itineraries/" + itineraryID + "/share"

	first := issueShare(t, app, path)
	second := issueShare(t, app, path)
	assert.Equal(t, first, second)
}

func TestIssueShareLinkRotateInvalidatesOldToken(t *testing.T) {
	app, itineraryID := newShareTestApp(t)
	path := "/itineraries/" + itineraryID + "/share"

	first := issueShare(t, app, path)
	rotated := issueShare(t, app, path+"?rotate=1")
	assert.NotEqual(t, first, rotated)

	again := issueShare(t, app, path)
	assert.Equal(t, rotated, again)
}
