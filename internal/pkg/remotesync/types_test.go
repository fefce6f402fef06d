package remotesync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpsertCarriesFullRecord(t *testing.T) {
	record := map[string]string{"id": "client-1", "name": "Jordan Avery"}

	job, err := NewUpsert(EntityClient, "client-1", record)
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, EntityClient, job.Entity)
	assert.Equal(t, ActionUpsert, job.Action)
	assert.Equal(t, "client-1", job.RecordID)
	assert.False(t, job.CreatedAt.IsZero())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(job.Payload, &decoded))
	assert.Equal(t, record, decoded)
}

func TestNewUpsertRejectsUnmarshalablePayload(t *testing.T) {
	_, err := NewUpsert(EntityTrip, "trip-1", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal trip payload")
}

func TestNewDeleteHasNoPayload(t *testing.T) {
	job := NewDelete(EntityItinerary, "itin-9")

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, EntityItinerary, job.Entity)
	assert.Equal(t, ActionDelete, job.Action)
	assert.Equal(t, "itin-9", job.RecordID)
	assert.Nil(t, job.Payload)
}

func TestWriteJobRoundTrip(t *testing.T) {
	job, err := NewUpsert(EntityCommunication, "comm-3", map[string]any{"channel": "email"})
	require.NoError(t, err)

	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var back WriteJob
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, job.ID, back.ID)
	assert.Equal(t, job.Action, back.Action)
	assert.JSONEq(t, string(job.Payload), string(back.Payload))
}
