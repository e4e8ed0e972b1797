package dto

import "github.com/google/uuid"

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	PnrID     uuid.UUID `json:"pnrId" validate:"required"`
	FirstName string    `json:"firstName" validate:"required"`
	Surname   string    `json:"surname" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if err := Validate.Struct(r); err != nil {
		causes, unknownErr := validationCauses(err, nil)
		if unknownErr != nil {
			return unknownErr
		}

		return NewValidationError(causes...)
	}

	return nil
}

// AccessToken carries the signed token returned on a successful login.
type AccessToken struct {
	Token string `json:"token"`
}
