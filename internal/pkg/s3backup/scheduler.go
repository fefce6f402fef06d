package s3backup

import (
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
)

// StartSnapshotBackups uploads the portal snapshot on an interval until
// the returned stop function is called. Upload failures only log; the
// next tick tries again with the then-current snapshot.
func StartSnapshotBackups(client *Client, store *portalstore.Store, interval time.Duration) func() {
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				uploadCurrent(client, store)
			case <-stop:
				return
			}
		}
	}()

	return func() { close(stop) }
}

func uploadCurrent(client *Client, store *portalstore.Store) {
	data, err := store.Snapshot().Encode()
	if err != nil {
		log.Errorf("[S3Backup] Snapshot encode failed: %v", err)
		return
	}
	key := client.config.GetSnapshotKey(time.Now())
	if _, err := client.UploadSnapshot(key, data); err != nil {
		log.Errorf("[S3Backup] Snapshot upload failed: %v", err)
	}
}
