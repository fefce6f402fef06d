package remotesync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entity names the record kind a write job carries.
type Entity string

const (
	EntityClient        Entity = "client"
	EntityTrip          Entity = "trip"
	EntityItinerary     Entity = "itinerary"
	EntityCommunication Entity = "communication"
)

// Action is what the applier does with the payload.
type Action string

const (
	ActionUpsert Action = "upsert"
	ActionDelete Action = "delete"
)

// WriteJob is one fire-and-forget remote write. Jobs carry the full
// serialized record so a worker never needs the local cache. There is
// no retry bookkeeping: a failed write is logged and dropped.
type WriteJob struct {
	ID        string          `json:"id"`
	Entity    Entity          `json:"entity"`
	Action    Action          `json:"action"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUpsert builds an upsert job from a record.
func NewUpsert(entity Entity, recordID string, record any) (WriteJob, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return WriteJob{}, fmt.Errorf("marshal %s payload: %w", entity, err)
	}
	return WriteJob{
		ID:        uuid.NewString(),
		Entity:    entity,
		Action:    ActionUpsert,
		RecordID:  recordID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewDelete builds a delete job for a record id.
func NewDelete(entity Entity, recordID string) WriteJob {
	return WriteJob{
		ID:        uuid.NewString(),
		Entity:    entity,
		Action:    ActionDelete,
		RecordID:  recordID,
		CreatedAt: time.Now().UTC(),
	}
}
