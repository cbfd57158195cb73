package models

import (
	"fmt"
	"time"
)

// Assignment puts one employee on one day. The ID is derived so an
// employee can never hold two assignments on the same date.
type Assignment struct {
	ID           string `json:"id" bson:"id"`
	EmployeeID   string `json:"employeeId" bson:"employeeId"`
	EmployeeName string `json:"employeeName" bson:"employeeName"`
	StartTime    string `json:"startTime" bson:"startTime"`
	EndTime      string `json:"endTime" bson:"endTime"`
}

// AssignmentID derives the canonical assignment id for an employee on a
// date ("employeeId-YYYY-MM-DD").
func AssignmentID(employeeID, date string) string {
	return fmt.Sprintf("%s-%s", employeeID, date)
}

// ScheduleEntry is the full roster for one calendar date. Its id equals
// its date ("YYYY-MM-DD"); one entry exists per date at most.
type ScheduleEntry struct {
	ID          string       `json:"id" bson:"_id"`
	Date        string       `json:"date" bson:"date"`
	Assignments []Assignment `json:"assignments" bson:"assignments"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// RotationMeta is the per-month weekend rotation checkpoint
// (id "YYYY-MM"). The checkpoint written at the end of a month's run is
// the starting state for the next month's run.
type RotationMeta struct {
	ID            string    `json:"id" bson:"_id"`
	RotationIndex int       `json:"rotationIndex" bson:"rotationIndex"`
	SwapParity    int       `json:"swapParity" bson:"swapParity"`
	LastProcessed time.Time `json:"lastProcessed" bson:"lastProcessed"`
}

// RotationMetaID formats the rotation checkpoint id for a month.
func RotationMetaID(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// AssignmentPayload is the caller-supplied shape for the day patch
// operation.
type AssignmentPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
}

// DayPatchPayload replaces a date's whole assignment list; an empty
// list clears the day.
type DayPatchPayload struct {
	Assignments []AssignmentPayload `json:"assignments" validate:"dive"`
}

// WeekendRotationResult summarizes one weekend generation run.
type WeekendRotationResult struct {
	Year            int      `json:"year"`
	Month           int      `json:"month"`
	Pattern         string   `json:"pattern"` // none|single|pair|multiple
	ProcessedDays   int      `json:"processedDays"`
	ChangedDays     int      `json:"changedDays"`
	SkippedHolidays []string `json:"skippedHolidays"`
	EmployeesUsed   []string `json:"employeesUsed"`
}
