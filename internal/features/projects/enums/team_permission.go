package projects_enums

// TeamPermission is the coarse label stored next to the role reference.
// Effective permissions always come from the role matrix.
type TeamPermission string

const (
	TeamPermissionOwner   TeamPermission = "owner"
	TeamPermissionCoOwner TeamPermission = "co_owner"
	TeamPermissionAdmin   TeamPermission = "admin"
	TeamPermissionEditor  TeamPermission = "editor"
	TeamPermissionViewer  TeamPermission = "viewer"
	TeamPermissionMember  TeamPermission = "member"
)

func (p TeamPermission) IsValid() bool {
	switch p {
	case TeamPermissionOwner,
		TeamPermissionCoOwner,
		TeamPermissionAdmin,
		TeamPermissionEditor,
		TeamPermissionViewer,
		TeamPermissionMember:
		return true
	default:
		return false
	}
}
