package models

import "time"

// Vacation is an inclusive date range during which an employee is
// unavailable. Ranges never cross a calendar-year boundary; Year is
// derived from StartDate.
type Vacation struct {
	ID           string    `json:"id" bson:"_id"`
	EmployeeID   string    `json:"employeeId" bson:"employeeId"`
	EmployeeName string    `json:"employeeName" bson:"employeeName"`
	Year         int       `json:"year" bson:"year"`
	StartDate    string    `json:"startDate" bson:"startDate"`
	EndDate      string    `json:"endDate" bson:"endDate"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type VacationCreatePayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type VacationUpdatePayload struct {
	StartDate *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
