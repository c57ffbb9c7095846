package models

// Shift is the part of the day a schedule belongs to.
type Shift string

const (
	ShiftMorning   Shift = "MATUTINO"
	ShiftAfternoon Shift = "VESPERTINO"
)

// Shifts lists every accepted shift in display order.
var Shifts = []Shift{ShiftMorning, ShiftAfternoon}

// Schedule is a class start time.
type Schedule struct {
	ID    int64  `json:"id"`
	Time  string `json:"time"`
	Shift Shift  `json:"shift"`
}

// SchedulePayload is the body of schedule create/update calls.
type SchedulePayload struct {
	Time  string `json:"time" validate:"required,clock"`
	Shift Shift  `json:"shift" validate:"oneof=MATUTINO VESPERTINO"`
}
