package services

import (
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
)

type DenyReason string

const (
	DenyReasonDraftOwnerOnly      DenyReason = "draft_owner_only"
	DenyReasonExpiredAdminOnly    DenyReason = "expired_admin_only"
	DenyReasonViewerPublishedOnly DenyReason = "viewer_published_only"
	DenyReasonUnknownStatus       DenyReason = "unknown_version_status"
)

// DownloadDecision is a tagged allow/deny result. It never carries an error;
// transports translate a deny into a 403 with the reason code.
type DownloadDecision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() DownloadDecision {
	return DownloadDecision{Allowed: true}
}

func deny(reason DenyReason) DownloadDecision {
	return DownloadDecision{Allowed: false, Reason: reason}
}

// EvaluateDownload gates signed-download-URL issuance. Drafts are visible to
// the asset owner and admins, expired versions to admins only, and anything
// not yet or no longer published requires contributor rank or above.
func EvaluateDownload(
	version entities.AssetVersion,
	asset entities.Asset,
	role entities.Role,
	actorID string,
) DownloadDecision {
	switch version.Status {
	case entities.VersionStatusDraft:
		if actorID != "" && actorID == asset.OwnerID {
			return allow()
		}
		if role.AtLeast(entities.RoleAdmin) {
			return allow()
		}
		return deny(DenyReasonDraftOwnerOnly)
	case entities.VersionStatusExpired:
		if role.AtLeast(entities.RoleAdmin) {
			return allow()
		}
		return deny(DenyReasonExpiredAdminOnly)
	case entities.VersionStatusPublished:
		if role.AtLeast(entities.RoleViewer) {
			return allow()
		}
		return deny(DenyReasonViewerPublishedOnly)
	case entities.VersionStatusScheduled, entities.VersionStatusArchived:
		if role.AtLeast(entities.RoleContributor) {
			return allow()
		}
		return deny(DenyReasonViewerPublishedOnly)
	default:
		return deny(DenyReasonUnknownStatus)
	}
}
