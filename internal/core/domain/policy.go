package domain

// CanEdit reports whether u may mutate a resource owned by ownerID.
// Owner and admin roles may edit anything; everyone else only their own.
func CanEdit(u User, ownerID uint64) bool {
	if u.Role == RoleOwner || u.Role == RoleAdmin {
		return true
	}
	return u.ID == ownerID
}

// IsOwner gates user management: role changes, enabling/disabling accounts,
// deleting users and listing all users.
func IsOwner(u User) bool {
	return u.Role == RoleOwner
}
