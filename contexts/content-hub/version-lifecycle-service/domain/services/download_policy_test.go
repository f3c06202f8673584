package services

import (
	"testing"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
)

func TestEvaluateDownload(t *testing.T) {
	asset := entities.Asset{AssetID: "asset-1", OwnerID: "owner-1"}

	cases := []struct {
		name    string
		status  entities.VersionStatus
		role    entities.Role
		actorID string
		allowed bool
		reason  DenyReason
	}{
		{"draft owner", entities.VersionStatusDraft, entities.RoleViewer, "owner-1", true, ""},
		{"draft admin", entities.VersionStatusDraft, entities.RoleAdmin, "someone-else", true, ""},
		{"draft approver denied", entities.VersionStatusDraft, entities.RoleApprover, "someone-else", false, DenyReasonDraftOwnerOnly},
		{"draft contributor denied", entities.VersionStatusDraft, entities.RoleContributor, "someone-else", false, DenyReasonDraftOwnerOnly},
		{"published viewer", entities.VersionStatusPublished, entities.RoleViewer, "someone-else", true, ""},
		{"published admin", entities.VersionStatusPublished, entities.RoleAdmin, "someone-else", true, ""},
		{"expired admin", entities.VersionStatusExpired, entities.RoleAdmin, "someone-else", true, ""},
		{"expired approver denied", entities.VersionStatusExpired, entities.RoleApprover, "someone-else", false, DenyReasonExpiredAdminOnly},
		{"expired owner denied", entities.VersionStatusExpired, entities.RoleContributor, "owner-1", false, DenyReasonExpiredAdminOnly},
		{"scheduled contributor", entities.VersionStatusScheduled, entities.RoleContributor, "someone-else", true, ""},
		{"scheduled viewer denied", entities.VersionStatusScheduled, entities.RoleViewer, "someone-else", false, DenyReasonViewerPublishedOnly},
		{"archived contributor", entities.VersionStatusArchived, entities.RoleContributor, "someone-else", true, ""},
		{"archived viewer denied", entities.VersionStatusArchived, entities.RoleViewer, "someone-else", false, DenyReasonViewerPublishedOnly},
		{"unknown status denied", entities.VersionStatus("review"), entities.RoleAdmin, "someone-else", false, DenyReasonUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			version := entities.AssetVersion{VersionID: "ver-1", AssetID: asset.AssetID, Status: tc.status}
			decision := EvaluateDownload(version, asset, tc.role, tc.actorID)
			if decision.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v", tc.allowed, decision.Allowed)
			}
			if !tc.allowed && decision.Reason != tc.reason {
				t.Fatalf("expected reason %s, got %s", tc.reason, decision.Reason)
			}
		})
	}
}

func TestParseRoleUnknown(t *testing.T) {
	if _, ok := entities.ParseRole("superuser"); ok {
		t.Fatalf("unknown role should not parse")
	}
	role, ok := entities.ParseRole("  Admin ")
	if !ok || role != entities.RoleAdmin {
		t.Fatalf("expected admin role, got %s ok=%v", role, ok)
	}
}
