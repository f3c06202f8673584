package entities

import "time"

type VersionStatus string

const (
	VersionStatusDraft     VersionStatus = "draft"
	VersionStatusScheduled VersionStatus = "scheduled"
	VersionStatusPublished VersionStatus = "published"
	VersionStatusExpired   VersionStatus = "expired"
	VersionStatusArchived  VersionStatus = "archived"
)

type AssetVersion struct {
	VersionID     string
	AssetID       string
	VersionNumber int
	Status        VersionStatus

	// PublishAt is set while the version is scheduled; ExpireAt may be set
	// in any state to request future auto-expiry.
	PublishAt *time.Time
	ExpireAt  *time.Time

	PublishedAt *time.Time
	ExpiredAt   *time.Time
	ArchivedAt  *time.Time

	ChangeLog  string
	StorageKey string

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

func IsKnownVersionStatus(value VersionStatus) bool {
	switch value {
	case VersionStatusDraft, VersionStatusScheduled, VersionStatusPublished,
		VersionStatusExpired, VersionStatusArchived:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions except
// archive. Expired and archived versions are never re-published; a new
// version must be created instead.
func (v AssetVersion) IsTerminal() bool {
	return v.Status == VersionStatusExpired || v.Status == VersionStatusArchived
}
