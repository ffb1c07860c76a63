// Package user holds the externally owned user entity. Users are resolved
// from the external identity token subject at order-creation time; identity
// verification itself happens upstream of this core.
package user

import "strings"

// User is an operations-team member who places procurement orders.
type User struct {
	ID          int64
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	ExternalUID string
	Active      bool
}

// FullName returns the user's display name, falling back to the username
// when no name parts are set.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
