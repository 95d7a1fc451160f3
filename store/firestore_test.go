package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/go-cmp/cmp"

	"github.com/gofish-bot/version-publisher/models"
)

// Runs against the Firestore emulator only:
//
//	gcloud emulators firestore start --host-port=localhost:8080
//	FIRESTORE_EMULATOR_HOST=localhost:8080 go test ./store/
func newEmulatorStore(t *testing.T) (*Firestore, *firestore.Client) {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "version-publisher-test")
	if err != nil {
		t.Fatalf("firestore.NewClient() error = %v", err)
	}
	s := New(client)
	t.Cleanup(func() { s.Close() })
	return s, client
}

func TestFirestore_MergeSet(t *testing.T) {
	s, client := newEmulatorStore(t)
	ctx := context.Background()

	target := models.Target{Collection: models.DefaultCollection, Document: t.Name()}
	doc := client.Collection(target.Collection).Doc(target.Document)
	if _, err := doc.Set(ctx, map[string]interface{}{
		"latestVersion":  "0.9.0",
		"minimumVersion": "0.5.0",
		"downloadUrlMac": "https://old/dmg",
	}); err != nil {
		t.Fatalf("seeding document: %v", err)
	}

	before := time.Now().Add(-time.Minute)
	release := models.ReleaseMetadata{
		LatestVersion:      "1.0.0",
		DownloadURLAndroid: "https://a/apk",
	}
	updateTime, err := s.MergeSet(ctx, target, release.Fields())
	if err != nil {
		t.Fatalf("MergeSet() error = %v", err)
	}
	if updateTime.Before(before) {
		t.Errorf("MergeSet() update time = %v, want after %v", updateTime, before)
	}

	snap, err := doc.Get(ctx)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	got := snap.Data()
	updatedAt, ok := got["updatedAt"].(time.Time)
	if !ok {
		t.Fatalf("updatedAt = %#v, want a server timestamp", got["updatedAt"])
	}
	if updatedAt.Before(before) {
		t.Errorf("updatedAt = %v, want a server time after %v", updatedAt, before)
	}
	delete(got, "updatedAt")

	want := map[string]interface{}{
		"latestVersion":      "1.0.0",
		"minimumVersion":     "0.5.0",
		"downloadUrlAndroid": "https://a/apk",
		"downloadUrlWindows": "",
		"downloadUrlMac":     "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}
