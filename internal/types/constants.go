package types

const ContextUserKey = "user"

const (
	RoleManager = "manager"
	RoleMember  = "member"
)

// DefaultProfilePicture is used when signup carries no upload.
const DefaultProfilePicture = "https://via.placeholder.com/50"
