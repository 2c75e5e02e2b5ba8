package entities

import "time"

// User mirrors the identity provider's subject: the id is the provider's
// stable uid, created lazily on the first authenticated write.
type User struct {
	UserID      string
	Email       string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
