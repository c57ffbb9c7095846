package models

// Classroom is a room inside a building.
type Classroom struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Building string `json:"building"`
}

// ClassroomPayload is the body of classroom create/update calls.
type ClassroomPayload struct {
	Name     string `json:"name" validate:"required"`
	Building string `json:"building" validate:"required"`
}
