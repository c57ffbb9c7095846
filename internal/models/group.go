package models

// Group is a class section: a subject taught by a teacher in a classroom
// at a schedule. List rows carry the denormalised names only.
type Group struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	CareerID      int64          `json:"careerId,omitempty"`
	CareerName    string         `json:"careerName,omitempty"`
	SubjectID     int64          `json:"subjectId,omitempty"`
	SubjectName   string         `json:"subjectName,omitempty"`
	TeacherID     int64          `json:"teacherId,omitempty"`
	TeacherName   string         `json:"teacherName,omitempty"`
	ClassroomID   int64          `json:"classroomId,omitempty"`
	ClassroomName string         `json:"classroomName,omitempty"`
	ScheduleID    int64          `json:"scheduleId,omitempty"`
	ScheduleTime  string         `json:"scheduleTime,omitempty"`
	Semester      int            `json:"semester"`
	MaxStudents   int            `json:"maxStudents"`
	Students      []GroupStudent `json:"students,omitempty"`
}

// GroupStudent is a read-only enrolment row of a group.
type GroupStudent struct {
	StudentID int64         `json:"studentId"`
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Status    StudentStatus `json:"status"`
}

// GroupPayload is the body of group create/update calls.
type GroupPayload struct {
	Name        string `json:"name" validate:"required,groupname"`
	CareerID    int64  `json:"careerId" validate:"gt=0"`
	SubjectID   int64  `json:"subjectId" validate:"gt=0"`
	TeacherID   int64  `json:"teacherId" validate:"gt=0"`
	ClassroomID int64  `json:"classroomId" validate:"gt=0"`
	ScheduleID  int64  `json:"scheduleId" validate:"gt=0"`
	Semester    int    `json:"semester" validate:"gt=0"`
	MaxStudents int    `json:"maxStudents" validate:"gt=0"`
}
