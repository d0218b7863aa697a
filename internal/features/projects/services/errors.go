package projects_services

import "errors"

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrAccessResolutionFailed  = errors.New("failed to resolve project access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOnlyOwner               = errors.New("only the project owner can perform this action")
	ErrProjectHasMembers       = errors.New("project still has active team members")
	ErrSlugTaken               = errors.New("slug is already taken")
	ErrSlugCooldown            = errors.New("slug was changed recently")
	ErrMemberNotFound          = errors.New("team member not found")
	ErrMemberAlreadyActive     = errors.New("user is already an active team member")
	ErrOwnerIsNotMember        = errors.New("project owner cannot be a team member")
	ErrRoleNotFound            = errors.New("role not found")
	ErrSystemRoleProtected     = errors.New("system roles cannot be renamed or deleted")
	ErrDefaultRoleProtected    = errors.New("the default role cannot be deleted")
	ErrUserNotFound            = errors.New("user not found")
	ErrRoleExceedsPermissions  = errors.New("cannot grant permissions beyond your own")
)
