package entities

import "time"

// VersionHistory is the append-only transition audit trail.
type VersionHistory struct {
	HistoryID    string
	AssetID      string
	VersionID    string
	FromStatus   VersionStatus
	ToStatus     VersionStatus
	ChangedBy    string
	ChangeReason string
	CreatedAt    time.Time
}
