// ABOUTME: User account model and unit preference enums.
// ABOUTME: Usernames are the primary identity key and immutable once created.
package models

// Unit preference values stored on the user row.
const (
	WeightKg  = "kg"
	WeightLbs = "lbs"

	DistanceKm    = "km"
	DistanceMiles = "miles"

	MeasureCm     = "cm"
	MeasureInches = "in"
)

// User is an account row. Password holds the bcrypt hash, never the
// plaintext credential.
type User struct {
	ID              int64
	Username        string
	Email           *string
	Phone           *string
	Password        string
	WeightUnit      *string
	DistanceUnit    *string
	MeasurementUnit *string
	ProfileImage    *string
}

// NewUser creates a User with optional contact details. Empty strings are
// stored as NULL.
func NewUser(username, email, phone string) *User {
	u := &User{Username: username}
	if email != "" {
		u.Email = &email
	}
	if phone != "" {
		u.Phone = &phone
	}
	return u
}
