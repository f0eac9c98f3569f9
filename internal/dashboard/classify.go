package dashboard

import "time"

// NewUserWindow is how long after registration a user counts as new.
const NewUserWindow = 24 * time.Hour

// IsNewUser reports whether the user registered strictly less than
// 24 hours before now. Exactly 24 hours is not new. A nil registration
// timestamp (profile missing, lookup failed) defaults to not new.
func IsNewUser(registeredAt *time.Time, now time.Time) bool {
	if registeredAt == nil {
		return false
	}
	return now.Sub(*registeredAt) < NewUserWindow
}
