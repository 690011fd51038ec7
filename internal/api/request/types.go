package request

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a request body against its validation tags and returns a
// caller-friendly message for the first failing field
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", fe.Field())
		case "email":
			return fmt.Errorf("%s must be a valid email address", fe.Field())
		case "min":
			return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
		case "gte":
			return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			return fmt.Errorf("%s is invalid", fe.Field())
		}
	}
	return err
}

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ScoreSubmission is the request body for submitting a leaderboard score
type ScoreSubmission struct {
	Score int    `json:"score" validate:"gte=0"`
	Mode  string `json:"mode" validate:"required,oneof=walls pass-through"`
}

// HighScoreSave is the request body for saving a personal best
type HighScoreSave struct {
	Score int    `json:"score" validate:"gte=0"`
	Mode  string `json:"mode" validate:"required,oneof=walls pass-through"`
}
