package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactEmail(t *testing.T) {
	in := "please reach jordan.avery@example.com for details"
	assert.Equal(t, "please reach [redacted] for details", Redact(in))
}

func TestRedactPhone(t *testing.T) {
	assert.Equal(t, "call [redacted] after 5pm", Redact("call +1 (212) 555-0187 after 5pm"))
	assert.Equal(t, "call [redacted] after 5pm", Redact("call 212-555-0187 after 5pm"))
}

func TestRedactLeavesPlainTextAlone(t *testing.T) {
	in := "pinned Virgin Atlantic option for the Paris trip"
	assert.Equal(t, in, Redact(in))
}

func TestRedactMixed(t *testing.T) {
	in := "a@b.co or 07700 900123"
	out := Redact(in)
	assert.NotContains(t, out, "a@b.co")
	assert.NotContains(t, out, "900123")
	assert.Contains(t, out, "[redacted]")
}

func TestRecordRedactsPayload(t *testing.T) {
	mu.Lock()
	buffer = nil
	mu.Unlock()

	Record(EventCommunicationLogged, map[string]string{
		"summary": "emailed jordan.avery@example.com the draft",
	})

	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, buffer, 1) {
		assert.Equal(t, EventCommunicationLogged, buffer[0].Name)
		assert.Equal(t, "emailed [redacted] the draft", buffer[0].Payload["summary"])
		assert.NotEmpty(t, buffer[0].ID)
		assert.NotEmpty(t, buffer[0].Timestamp)
	}
	buffer = nil
}

func TestRecordRedactsPayloadKeys(t *testing.T) {
	mu.Lock()
	buffer = nil
	mu.Unlock()

	Record(EventCommunicationLogged, map[string]string{
		"jordan.avery@example.com": "sent the draft",
		"channel":                  "email",
	})

	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, buffer, 1) {
		for k := range buffer[0].Payload {
			assert.NotContains(t, k, "@example.com")
		}
		assert.Equal(t, "sent the draft", buffer[0].Payload["[redacted]"])
		assert.Equal(t, "email", buffer[0].Payload["channel"])
	}
	buffer = nil
}

func TestRecordRedactsPhoneKeys(t *testing.T) {
	mu.Lock()
	buffer = nil
	mu.Unlock()

	Record(EventCommunicationLogged, map[string]string{
		"212-555-0187": "left a voicemail",
	})

	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, buffer, 1) {
		assert.Equal(t, "left a voicemail", buffer[0].Payload["[redacted]"])
		assert.NotContains(t, buffer[0].Payload, "212-555-0187")
	}
	buffer = nil
}
