package domain

// Role is a coarse authorization level attached to a user. A user carries a
// set of roles; operations on the users surface require admin or superUser.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleSuperUser Role = "superUser"
)

var AllRoles = []Role{RoleAdmin, RoleUser, RoleSuperUser}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSuperUser:
		return true
	}
	return false
}

// HasRole reports whether u holds any of the wanted roles.
func (u *User) HasRole(wanted ...Role) bool {
	for _, w := range wanted {
		for _, r := range u.Roles {
			if r == w {
				return true
			}
		}
	}
	return false
}
