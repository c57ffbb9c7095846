package models

// StudentStatus tells whether a student is currently enrolled.
type StudentStatus string

const (
	StudentActive   StudentStatus = "ACTIVE"
	StudentInactive StudentStatus = "INACTIVE"
)

// StudentStatuses lists every accepted status in display order.
var StudentStatuses = []StudentStatus{StudentActive, StudentInactive}

// Student is a student record. List rows omit Subjects.
type Student struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email,omitempty"`
	Status      StudentStatus `json:"status"`
	DateOfBirth string        `json:"dateOfBirth,omitempty"`
	CareerID    int64         `json:"careerId,omitempty"`
	UserID      int64         `json:"userId,omitempty"`
	Subjects    []SubjectRef  `json:"subjects,omitempty"`
}

// SubjectIDs returns the ids of the subjects the student is enrolled in.
func (s Student) SubjectIDs() []int64 {
	return subjectIDs(s.Subjects)
}

// StudentPayload is the body of student create/update calls. Self-service
// saves only carry Subjects.
type StudentPayload struct {
	UserID      *int64         `json:"userId,omitempty"`
	Name        *string        `json:"name,omitempty" validate:"omitempty,personname"`
	Status      *StudentStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	DateOfBirth *string        `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CareerID    *int64         `json:"careerId,omitempty"`
	Subjects    []int64        `json:"subjects"`
}
