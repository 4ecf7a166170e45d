package identity

import "github.com/google/uuid"

// Capability is a named permission inside a club. Capabilities are
// independent booleans derived from the member's role; there is no
// implication between them, so adding a role to one capability never
// silently widens another.
type Capability string

const (
	// CapabilityView grants read access to club data
	CapabilityView Capability = "view"
	// CapabilityEditRecords grants create/update/delete on accounting records
	CapabilityEditRecords Capability = "edit-records"
	// CapabilityAccessReconciliation grants access to the reconciliation surface
	CapabilityAccessReconciliation Capability = "access-reconciliation"
	// CapabilityManageMembers grants member add/remove/role-change
	CapabilityManageMembers Capability = "manage-members"
)

// capabilityMatrix is the single source of truth mapping roles to
// capabilities. Every guard in the system consults this table.
var capabilityMatrix = map[Capability]map[Role]bool{
	CapabilityView: {
		RoleOwner:   true,
		RoleAdmin:   true,
		RoleManager: true,
		RoleViewer:  true,
	},
	CapabilityEditRecords: {
		RoleOwner:   true,
		RoleAdmin:   true,
		RoleManager: true,
	},
	CapabilityAccessReconciliation: {
		RoleOwner:   true,
		RoleAdmin:   true,
		RoleManager: true,
	},
	CapabilityManageMembers: {
		RoleOwner: true,
		RoleAdmin: true,
	},
}

// Can reports whether the role grants the capability. Unknown roles
// and unknown capabilities grant nothing.
func (r Role) Can(c Capability) bool {
	roles, ok := capabilityMatrix[c]
	if !ok {
		return false
	}
	return roles[r]
}

// Scope is a verified (user, club, role) triple resolved for one
// request. It is only constructed after the membership has been
// checked against the store; holding a Scope means the user is a
// current member of the club with the given role.
type Scope struct {
	UserID uuid.UUID
	ClubID int64
	Role   Role
}

// Can reports whether the scope's role grants the capability
func (s Scope) Can(c Capability) bool {
	return s.Role.Can(c)
}
