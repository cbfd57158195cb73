package models

import "time"

// TimeRange is a start/end pair in "HH:MM", zero-padded.
type TimeRange struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

type Employee struct {
	ID               string               `json:"id" bson:"_id"`
	Name             string               `json:"name" bson:"name"`
	WorkDays         []string             `json:"workDays" bson:"workDays"`
	DefaultStartTime string               `json:"defaultStartTime" bson:"defaultStartTime"`
	DefaultEndTime   string               `json:"defaultEndTime" bson:"defaultEndTime"`
	IsActive         bool                 `json:"isActive" bson:"isActive"`
	WeekendRotation  bool                 `json:"weekendRotation" bson:"weekendRotation"`
	CustomSchedule   map[string]TimeRange `json:"customSchedule,omitempty" bson:"customSchedule,omitempty"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type EmployeeCreatePayload struct {
	Name             string               `json:"name" validate:"required,min=2,max=100"`
	WorkDays         []string             `json:"workDays" validate:"required,min=1,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	DefaultStartTime string               `json:"defaultStartTime" validate:"required"`
	DefaultEndTime   string               `json:"defaultEndTime" validate:"required"`
	IsActive         *bool                `json:"isActive"`
	WeekendRotation  bool                 `json:"weekendRotation"`
	CustomSchedule   map[string]TimeRange `json:"customSchedule,omitempty" validate:"omitempty,dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys"`
}

type EmployeeUpdatePayload struct {
	Name             *string               `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	WorkDays         *[]string             `json:"workDays,omitempty" validate:"omitempty,min=1,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	DefaultStartTime *string               `json:"defaultStartTime,omitempty"`
	DefaultEndTime   *string               `json:"defaultEndTime,omitempty"`
	IsActive         *bool                 `json:"isActive,omitempty"`
	WeekendRotation  *bool                 `json:"weekendRotation,omitempty"`
	CustomSchedule   *map[string]TimeRange `json:"customSchedule,omitempty" validate:"omitempty,dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys"`
}

// WorksOnDay reports whether weekday (lowercase English name) is part of
// the employee's weekly pattern.
func (e *Employee) WorksOnDay(weekday string) bool {
	for _, d := range e.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}
