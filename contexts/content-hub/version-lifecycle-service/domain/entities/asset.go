package entities

import (
	"strings"
	"time"
)

type AssetSourceType string

const (
	AssetSourceUpload      AssetSourceType = "upload"
	AssetSourceLink        AssetSourceType = "link"
	AssetSourceGoogleDrive AssetSourceType = "google_drive"
	AssetSourceRichText    AssetSourceType = "richtext"
)

type Asset struct {
	AssetID    string
	Title      string
	AssetType  string
	OwnerID    string
	SourceType AssetSourceType

	// CurrentPublishedVersionID is a weak reference to the most recent
	// version of this asset whose status is published. It is recomputed
	// whenever that version leaves the published state.
	CurrentPublishedVersionID *string

	// ScheduledVersionID is the asset-level schedule slot. At most one
	// version per asset may hold it, enforced by conditional writes in the
	// repositories rather than by a time-windowed scan.
	ScheduledVersionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPublishableMetadata reports whether the asset carries the metadata
// required before any of its versions may be published.
func (a Asset) HasPublishableMetadata() bool {
	return strings.TrimSpace(a.Title) != "" &&
		strings.TrimSpace(a.AssetType) != "" &&
		strings.TrimSpace(a.OwnerID) != ""
}

func IsSupportedSourceType(value AssetSourceType) bool {
	switch value {
	case AssetSourceUpload, AssetSourceLink, AssetSourceGoogleDrive, AssetSourceRichText:
		return true
	default:
		return false
	}
}
