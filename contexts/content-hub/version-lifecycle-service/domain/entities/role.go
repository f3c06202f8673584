package entities

import "strings"

type Role string

const (
	RoleViewer      Role = "viewer"
	RoleContributor Role = "contributor"
	RoleApprover    Role = "approver"
	RoleAdmin       Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer:      1,
	RoleContributor: 2,
	RoleApprover:    3,
	RoleAdmin:       4,
}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	_, ok := roleRank[role]
	return role, ok
}

// AtLeast reports whether the role ranks at or above the given minimum.
// Unknown roles rank below viewer.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}
