package rsvp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type submitRequest struct {
	GuestName           string `json:"guest_name" binding:"required,min=2,max=100"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"omitempty,max=30"`
	NumberOfGuests      int    `json:"number_of_guests" binding:"required,min=1,max=10"`
	AttendanceStatus    string `json:"attendance_status" binding:"required,oneof=yes no maybe"`
	MealPreference      string `json:"meal_preference" binding:"omitempty,max=100"`
	DietaryRestrictions string `json:"dietary_restrictions" binding:"omitempty,max=500"`
	SongRequests        string `json:"song_requests" binding:"omitempty,max=500"`
	Message             string `json:"message" binding:"omitempty,max=500"`
	PlusOneName         string `json:"plus_one_name" binding:"omitempty,max=100"`
}

// fieldErrors turns validator failures into a field→message map keyed by the
// JSON field names the form uses. Non-validator errors yield nil and the
// caller falls back to a generic message.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[toSnake(fe.Field())] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "is invalid"
	}
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
