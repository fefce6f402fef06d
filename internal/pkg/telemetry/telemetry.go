package telemetry

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/cache"
)

// Event names recorded by the portal. Payloads carry identifiers and
// coarse context only; free text passes through Redact first.
const (
	EventTripStatusChanged   = "trip.status_changed"
	EventTransitionBlocked   = "trip.transition_blocked"
	EventOptionPinned        = "trip.option_pinned"
	EventItineraryGenerated  = "itinerary.generated"
	EventShareLinkIssued     = "itinerary.share_link_issued"
	EventShareLinkVisited    = "itinerary.share_link_visited"
	EventAwardOptionParsed   = "award_option.parsed"
	EventSearchLinkFollowed  = "search.link_followed"
	EventKnowledgeArticle    = "knowledge.article_viewed"
	EventCommunicationLogged = "communication.logged"
)

const (
	queueKey      = "telemetry:events"
	flushInterval = 30 * time.Second
	maxBuffer     = 256
)

// Event is a single telemetry record.
type Event struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Timestamp string            `json:"timestamp"`
	Payload   map[string]string `json:"payload,omitempty"`
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)
)

// Redact masks email addresses and phone numbers in free text so they
// never reach the event stream.
func Redact(s string) string {
	s = emailRe.ReplaceAllString(s, "[redacted]")
	s = phoneRe.ReplaceAllString(s, "[redacted]")
	return s
}

var (
	mu     sync.Mutex
	buffer []Event
	stop   chan struct{}
)

// Record buffers one event. Payload keys and values are redacted
// before buffering. The buffer drains on a timer and whenever it
// reaches maxBuffer.
func Record(name string, payload map[string]string) {
	event := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if len(payload) > 0 {
		event.Payload = make(map[string]string, len(payload))
		for k, v := range payload {
			event.Payload[Redact(k)] = Redact(v)
		}
	}

	mu.Lock()
	buffer = append(buffer, event)
	full := len(buffer) >= maxBuffer
	mu.Unlock()

	if full {
		Flush()
	}
}

// Flush pushes every buffered event onto the Redis event list. Events
// that fail to serialize or push are dropped with a log line; telemetry
// never blocks or fails portal operations.
func Flush() {
	mu.Lock()
	pending := buffer
	buffer = nil
	mu.Unlock()

	if len(pending) == 0 {
		return
	}

	ctx := context.Background()
	client := cache.GetClient()
	values := make([]interface{}, 0, len(pending))
	for _, event := range pending {
		data, err := json.Marshal(event)
		if err != nil {
			log.Errorf("[Telemetry] Marshal of %s failed: %v", event.Name, err)
			continue
		}
		values = append(values, data)
	}
	if len(values) == 0 {
		return
	}
	if err := client.LPush(ctx, queueKey, values...).Err(); err != nil {
		log.Errorf("[Telemetry] Flush of %d events failed: %v", len(values), err)
	}
}

// StartFlusher runs the periodic flush loop until StopFlusher is called.
func StartFlusher() {
	mu.Lock()
	if stop != nil {
		mu.Unlock()
		return
	}
	stop = make(chan struct{})
	done := stop
	mu.Unlock()

	go func() {
		ticker := time.NewTicker(flushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				Flush()
			case <-done:
				Flush()
				return
			}
		}
	}()
}

// StopFlusher stops the flush loop after a final drain.
func StopFlusher() {
	mu.Lock()
	if stop == nil {
		mu.Unlock()
		return
	}
	close(stop)
	stop = nil
	mu.Unlock()
}
