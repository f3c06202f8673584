package httptransport

type AssetDTO struct {
	AssetID                   string `json:"asset_id"`
	Title                     string `json:"title"`
	AssetType                 string `json:"asset_type"`
	OwnerID                   string `json:"owner_id"`
	SourceType                string `json:"source_type"`
	CurrentPublishedVersionID string `json:"current_published_version_id,omitempty"`
	ScheduledVersionID        string `json:"scheduled_version_id,omitempty"`
	CreatedAt                 string `json:"created_at"`
	UpdatedAt                 string `json:"updated_at"`
}

type VersionDTO struct {
	VersionID     string `json:"version_id"`
	AssetID       string `json:"asset_id"`
	VersionNumber int    `json:"version_number"`
	Status        string `json:"status"`
	PublishAt     string `json:"publish_at,omitempty"`
	ExpireAt      string `json:"expire_at,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
	ExpiredAt     string `json:"expired_at,omitempty"`
	ArchivedAt    string `json:"archived_at,omitempty"`
	ChangeLog     string `json:"change_log,omitempty"`
	CreatedAt     string `json:"created_at"`
	CreatedBy     string `json:"created_by"`
}

type CreateAssetRequest struct {
	Title      string `json:"title"`
	AssetType  string `json:"asset_type"`
	SourceType string `json:"source_type"`
}

type CreateAssetResponse struct {
	Asset    AssetDTO `json:"asset"`
	Replayed bool     `json:"replayed,omitempty"`
}

type GetAssetResponse struct {
	Item AssetDTO `json:"item"`
}

type ListAssetsResponse struct {
	Items []AssetDTO `json:"items"`
}

type CreateVersionRequest struct {
	StorageKey string `json:"storage_key"`
	ExpireAt   string `json:"expire_at,omitempty"`
}

type CreateVersionResponse struct {
	Version  VersionDTO `json:"version"`
	Replayed bool       `json:"replayed,omitempty"`
}

type ListVersionsResponse struct {
	Items []VersionDTO `json:"items"`
}

type PublishVersionRequest struct {
	ChangeLog string `json:"change_log"`
}

type ScheduleVersionRequest struct {
	PublishAt string `json:"publish_at"`
}

type ArchiveVersionRequest struct {
	Reason string `json:"reason,omitempty"`
}

type VersionResponse struct {
	Version VersionDTO `json:"version"`
}

type DownloadVersionResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
