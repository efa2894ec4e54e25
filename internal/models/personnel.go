package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Rescuers are users with UserType "rescuer";
// volunteers reference their user record through Volunteer.UserID.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName is the identity shown on dispatch confirmations.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Volunteer is a volunteer application record. Skills is the ordered list of
// assistance choices from the application form.
type Volunteer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Skills    []string  `json:"skills"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Rescuer is the dispatchable view of a rescuer account.
type Rescuer struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// VolunteerProfile is the dispatchable view of a volunteer, with the display
// name resolved through the users collection.
type VolunteerProfile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Skills      []string  `json:"skills"`
	Status      string    `json:"status"`
}
