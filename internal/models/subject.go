package models

// Subject represents an academic subject that belongs to one career.
type Subject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Semester int    `json:"semester"`
	CareerID int64  `json:"careerId"`
}

// SubjectPayload is the body of subject create/update calls.
type SubjectPayload struct {
	Name     string `json:"name" validate:"required"`
	Credits  int    `json:"credits" validate:"gt=0"`
	Semester int    `json:"semester" validate:"gt=0"`
	CareerID int64  `json:"careerId" validate:"gt=0"`
}

// SubjectRef links a teacher or student to a subject.
type SubjectRef struct {
	SubjectID int64  `json:"subjectId"`
	Name      string `json:"name,omitempty"`
}

// CareerRef links a teacher to a career.
type CareerRef struct {
	CareerID int64  `json:"careerId"`
	Name     string `json:"name,omitempty"`
}
