package projects_enums

// AccessLevel says which branch of access resolution granted the matrix.
type AccessLevel string

const (
	AccessLevelOwner  AccessLevel = "owner"
	AccessLevelMember AccessLevel = "member"
	AccessLevelPublic AccessLevel = "public"
)
