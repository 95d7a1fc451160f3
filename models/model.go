package models

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
)

const (
	DefaultCollection = "system_config"
	DefaultDocument   = "app_version"
)

// ReleaseMetadata is the record merged into the app version document.
// The update time is always assigned by the store.
type ReleaseMetadata struct {
	LatestVersion      string `firestore:"latestVersion"`
	DownloadURLAndroid string `firestore:"downloadUrlAndroid"`
	DownloadURLWindows string `firestore:"downloadUrlWindows"`
	DownloadURLMac     string `firestore:"downloadUrlMac"`
}

// Fields renders the record as the exact field set written to the store.
func (r ReleaseMetadata) Fields() map[string]interface{} {
	return map[string]interface{}{
		"latestVersion":      r.LatestVersion,
		"downloadUrlAndroid": r.DownloadURLAndroid,
		"downloadUrlWindows": r.DownloadURLWindows,
		"downloadUrlMac":     r.DownloadURLMac,
		"updatedAt":          firestore.ServerTimestamp,
	}
}

// Target identifies the document the release metadata is merged into.
type Target struct {
	ProjectID  string `yaml:"project_id"`
	Collection string `yaml:"collection"`
	Document   string `yaml:"document"`
}

func (t Target) Path() string {
	return fmt.Sprintf("%s/%s", t.Collection, t.Document)
}

// Result is what the store reports after a successful write.
type Result struct {
	Target     Target
	Release    ReleaseMetadata
	UpdateTime time.Time
}
