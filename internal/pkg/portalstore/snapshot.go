package portalstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// SchemaVersion tags persisted snapshots. A mismatch on load discards
// the snapshot and reseeds from defaults.
const SchemaVersion = 3

// Snapshot is the full persisted portal state, conceptually one JSON
// document. Collection order is meaningful (list order in the UI).
type Snapshot struct {
	SchemaVersion           int                             `json:"schemaVersion"`
	Clients                 []models.Client                 `json:"clients"`
	Trips                   []models.Trip                   `json:"trips"`
	Itineraries             []models.Itinerary              `json:"itineraries"`
	KnowledgeArticles       []models.KnowledgeArticle       `json:"knowledgeArticles"`
	CommunicationEntries    []models.CommunicationEntry     `json:"communicationEntries"`
	AwardSearchIntegrations []models.AwardSearchIntegration `json:"awardSearchIntegrations"`
	AuditLog                []models.AuditEntry             `json:"auditLog"`
}

// snapshotProbe mirrors the document's top-level keys as raw JSON so the
// shape can be validated before the full unmarshal is trusted.
type snapshotProbe struct {
	SchemaVersion           *int            `json:"schemaVersion"`
	Clients                 json.RawMessage `json:"clients"`
	Trips                   json.RawMessage `json:"trips"`
	Itineraries             json.RawMessage `json:"itineraries"`
	KnowledgeArticles       json.RawMessage `json:"knowledgeArticles"`
	CommunicationEntries    json.RawMessage `json:"communicationEntries"`
	AwardSearchIntegrations json.RawMessage `json:"awardSearchIntegrations"`
	AuditLog                json.RawMessage `json:"auditLog"`
}

// DecodeSnapshot parses and validates a persisted snapshot document.
// Any failure (malformed JSON, version mismatch, missing or non-array
// collection) returns an error; the caller reseeds from defaults.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var probe snapshotProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return Snapshot{}, fmt.Errorf("malformed snapshot document: %w", err)
	}
	if probe.SchemaVersion == nil {
		return Snapshot{}, fmt.Errorf("snapshot is missing schemaVersion")
	}
	if *probe.SchemaVersion != SchemaVersion {
		return Snapshot{}, fmt.Errorf("snapshot schema version %d does not match %d", *probe.SchemaVersion, SchemaVersion)
	}

	collections := map[string]json.RawMessage{
		"clients":                 probe.Clients,
		"trips":                   probe.Trips,
		"itineraries":             probe.Itineraries,
		"knowledgeArticles":       probe.KnowledgeArticles,
		"communicationEntries":    probe.CommunicationEntries,
		"awardSearchIntegrations": probe.AwardSearchIntegrations,
		"auditLog":                probe.AuditLog,
	}
	for name, raw := range collections {
		if !isJSONArray(raw) {
			return Snapshot{}, fmt.Errorf("snapshot collection %q is missing or not an array", name)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot decode failed: %w", err)
	}
	return snap, nil
}

// Encode serializes the snapshot document.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// clone deep-copies the snapshot so mutations never leak into the
// committed state before commit.
func (s Snapshot) clone() Snapshot {
	data, err := json.Marshal(s)
	if err != nil {
		// Snapshot contains only JSON-marshalable types.
		panic(fmt.Sprintf("portalstore: snapshot clone failed: %v", err))
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("portalstore: snapshot clone failed: %v", err))
	}
	return out
}

// findTrip returns a pointer into the snapshot's trip slice, or nil.
func (s *Snapshot) findTrip(id string) *models.Trip {
	for i := range s.Trips {
		if s.Trips[i].ID == id {
			return &s.Trips[i]
		}
	}
	return nil
}

func (s *Snapshot) findClient(id string) *models.Client {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return &s.Clients[i]
		}
	}
	return nil
}

func (s *Snapshot) findItinerary(id string) *models.Itinerary {
	for i := range s.Itineraries {
		if s.Itineraries[i].ID == id {
			return &s.Itineraries[i]
		}
	}
	return nil
}

// normalize clears dangling pinned-option references on every trip.
// Runs unconditionally after each mutation so removing an award option
// never leaves a stale pin behind.
func (s *Snapshot) normalize() {
	for i := range s.Trips {
		trip := &s.Trips[i]
		if trip.PinnedOptionID != nil && !trip.PinnedOptionResolves() {
			trip.PinnedOptionID = nil
		}
	}
}
