package authorization

type UserRole string

const (
	RoleClient    UserRole = "client"
	RoleDeveloper UserRole = "developer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsDeveloper() bool {
	return r == RoleDeveloper
}

func (r UserRole) IsValid() bool {
	return r == RoleClient || r == RoleDeveloper
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleClient
}
