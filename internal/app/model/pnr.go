package model

import "github.com/google/uuid"

// ContactDetails is the name pair of the person who made a booking.
type ContactDetails struct {
	FirstName string
	Surname   string
}

// PnrValidationDetails is the projection of a PNR record used to validate a
// login attempt. It is read from the PNR datastore and never persisted by
// this service.
type PnrValidationDetails struct {
	ID      uuid.UUID
	Contact ContactDetails
}
