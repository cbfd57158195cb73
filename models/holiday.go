package models

import "time"

// Holiday recurs every year on the same month-day. Date is stored as
// "MM-DD" regardless of the input format.
type Holiday struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Date        string    `json:"date" bson:"date"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type HolidayCreatePayload struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type HolidayUpdatePayload struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ResolvedHoliday is a recurring holiday pinned to a concrete date of a
// specific year, for calendar-style listings.
type ResolvedHoliday struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
}
