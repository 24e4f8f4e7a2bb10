package auth

// CanAccess reports whether the authenticated user may act on a resource
// owned by ownerID. Single-owner model: the same check applies to read,
// update and delete.
func CanAccess(userID, ownerID int64) bool {
	return userID == ownerID
}
