package models

// Degree is the highest academic degree of a teacher.
type Degree string

const (
	DegreeBachelor Degree = "LICENCIATURA"
	DegreeMaster   Degree = "MAESTRIA"
	DegreeDoctor   Degree = "DOCTORADO"
)

// Degrees lists every accepted degree in display order.
var Degrees = []Degree{DegreeBachelor, DegreeMaster, DegreeDoctor}

// Teacher is a teacher record. List rows omit Careers and Subjects.
type Teacher struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email,omitempty"`
	Degree   Degree       `json:"degree,omitempty"`
	UserID   int64        `json:"userId,omitempty"`
	Careers  []CareerRef  `json:"careers,omitempty"`
	Subjects []SubjectRef `json:"subjects,omitempty"`
}

// CareerIDs returns the ids of the careers the teacher is assigned to.
func (t Teacher) CareerIDs() []int64 {
	ids := make([]int64, 0, len(t.Careers))
	for _, c := range t.Careers {
		ids = append(ids, c.CareerID)
	}
	return ids
}

// SubjectIDs returns the ids of the subjects the teacher teaches.
func (t Teacher) SubjectIDs() []int64 {
	return subjectIDs(t.Subjects)
}

// TeacherPayload is the body of teacher create/update calls. Nil fields are
// left untouched by the gateway; self-service saves only carry Degree and
// SubjectIDs.
type TeacherPayload struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,personname"`
	Degree     Degree   `json:"degree" validate:"oneof=LICENCIATURA MAESTRIA DOCTORADO"`
	UserID     *int64   `json:"userId,omitempty"`
	CareerIDs  *[]int64 `json:"careerIds,omitempty"`
	SubjectIDs []int64  `json:"subjectIds"`
}

func subjectIDs(refs []SubjectRef) []int64 {
	ids := make([]int64, 0, len(refs))
	for _, s := range refs {
		ids = append(ids, s.SubjectID)
	}
	return ids
}
