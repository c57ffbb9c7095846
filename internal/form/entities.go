package form

import (
	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Form field names. They match the gateway payload keys.
const (
	FieldName        = "name"
	FieldSemesters   = "semesters"
	FieldBuilding    = "building"
	FieldTime        = "time"
	FieldShift       = "shift"
	FieldCredits     = "credits"
	FieldSemester    = "semester"
	FieldCareerID    = "careerId"
	FieldDegree      = "degree"
	FieldUserID      = "userId"
	FieldCareerIDs   = "careerIds"
	FieldSubjectIDs  = "subjectIds"
	FieldStatus      = "status"
	FieldDateOfBirth = "dateOfBirth"
	FieldSubjects    = "subjects"
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldSubjectID   = "subjectId"
	FieldTeacherID   = "teacherId"
	FieldClassroomID = "classroomId"
	FieldScheduleID  = "scheduleId"
	FieldMaxStudents = "maxStudents"
)

type careerForm struct {
	Name      string `json:"name" validate:"required"`
	Semesters string `json:"semesters" validate:"required,posint"`
}

// Career validates the career form.
func (v *Validator) Career(in Input) (models.CareerPayload, error) {
	raw := careerForm{Name: in.Text(FieldName), Semesters: in.Text(FieldSemesters)}
	if err := v.check(raw); err != nil {
		return models.CareerPayload{}, err
	}
	return models.CareerPayload{Name: raw.Name, Semesters: mustInt(raw.Semesters)}, nil
}

type classroomForm struct {
	Name     string `json:"name" validate:"required"`
	Building string `json:"building" validate:"required"`
}

// Classroom validates the classroom form.
func (v *Validator) Classroom(in Input) (models.ClassroomPayload, error) {
	raw := classroomForm{Name: in.Text(FieldName), Building: in.Text(FieldBuilding)}
	if err := v.check(raw); err != nil {
		return models.ClassroomPayload{}, err
	}
	return models.ClassroomPayload{Name: raw.Name, Building: raw.Building}, nil
}

type scheduleForm struct {
	Time  string `json:"time" validate:"required,clock"`
	Shift string `json:"shift" validate:"required,oneof=MATUTINO VESPERTINO"`
}

// Schedule validates the schedule form. Times must be zero padded.
func (v *Validator) Schedule(in Input) (models.SchedulePayload, error) {
	raw := scheduleForm{Time: in.Text(FieldTime), Shift: in.Text(FieldShift)}
	if err := v.check(raw); err != nil {
		return models.SchedulePayload{}, err
	}
	return models.SchedulePayload{Time: raw.Time, Shift: models.Shift(raw.Shift)}, nil
}

type subjectForm struct {
	Name     string `json:"name" validate:"required"`
	Credits  string `json:"credits" validate:"required,posint"`
	Semester string `json:"semester" validate:"required,posint"`
	Career   string `json:"careerId" validate:"selection"`
}

// Subject validates the subject form.
func (v *Validator) Subject(in Input) (models.SubjectPayload, error) {
	raw := subjectForm{
		Name:     in.Text(FieldName),
		Credits:  in.Text(FieldCredits),
		Semester: in.Text(FieldSemester),
		Career:   in.Text(FieldCareerID),
	}
	if err := v.check(raw); err != nil {
		return models.SubjectPayload{}, err
	}
	return models.SubjectPayload{
		Name:     raw.Name,
		Credits:  mustInt(raw.Credits),
		Semester: mustInt(raw.Semester),
		CareerID: mustSelection(raw.Career),
	}, nil
}

type teacherForm struct {
	Name     string   `json:"name" validate:"required,personname"`
	Degree   string   `json:"degree" validate:"required,oneof=LICENCIATURA MAESTRIA DOCTORADO"`
	User     string   `json:"userId" validate:"omitempty,selection"`
	Careers  []string `json:"careerIds" validate:"dive,selection"`
	Subjects []string `json:"subjectIds" validate:"dive,selection"`
}

type teacherSelfForm struct {
	Degree   string   `json:"degree" validate:"required,oneof=LICENCIATURA MAESTRIA DOCTORADO"`
	Subjects []string `json:"subjectIds" validate:"dive,selection"`
}

// Teacher validates the teacher form. In restricted mode only the degree and
// the subjects are read; every other field is left out of the payload.
func (v *Validator) Teacher(in Input, mode Mode) (models.TeacherPayload, error) {
	if mode.Restricted {
		raw := teacherSelfForm{Degree: in.Text(FieldDegree), Subjects: in.List(FieldSubjectIDs)}
		if err := v.check(raw); err != nil {
			return models.TeacherPayload{}, err
		}
		return models.TeacherPayload{
			Degree:     models.Degree(raw.Degree),
			SubjectIDs: ParseSelections(raw.Subjects),
		}, nil
	}

	raw := teacherForm{
		Name:     in.Normalized(FieldName),
		Degree:   in.Text(FieldDegree),
		User:     in.Text(FieldUserID),
		Careers:  in.List(FieldCareerIDs),
		Subjects: in.List(FieldSubjectIDs),
	}
	if err := v.check(raw); err != nil {
		return models.TeacherPayload{}, err
	}
	if mode.Creating() && raw.User == "" {
		return models.TeacherPayload{}, invalidSelection(FieldUserID)
	}

	careers := ParseSelections(raw.Careers)
	payload := models.TeacherPayload{
		Name:       &raw.Name,
		Degree:     models.Degree(raw.Degree),
		CareerIDs:  &careers,
		SubjectIDs: ParseSelections(raw.Subjects),
	}
	if raw.User != "" {
		id := mustSelection(raw.User)
		payload.UserID = &id
	}
	return payload, nil
}

type studentForm struct {
	Name        string   `json:"name" validate:"required,personname"`
	Status      string   `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	DateOfBirth string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Career      string   `json:"careerId" validate:"selection"`
	User        string   `json:"userId" validate:"omitempty,selection"`
	Subjects    []string `json:"subjects" validate:"dive,selection"`
}

type studentSelfForm struct {
	Subjects []string `json:"subjects" validate:"dive,selection"`
}

// Student validates the student form. In restricted mode only the subject
// enrolment is read and a loaded record is required.
func (v *Validator) Student(in Input, mode Mode) (models.StudentPayload, error) {
	if mode.Restricted {
		if mode.Creating() {
			return models.StudentPayload{}, appErrors.Clone(appErrors.ErrInvalidState, "no student profile is loaded")
		}
		raw := studentSelfForm{Subjects: in.List(FieldSubjects)}
		if err := v.check(raw); err != nil {
			return models.StudentPayload{}, err
		}
		return models.StudentPayload{Subjects: ParseSelections(raw.Subjects)}, nil
	}

	raw := studentForm{
		Name:        in.Normalized(FieldName),
		Status:      in.Text(FieldStatus),
		DateOfBirth: in.Text(FieldDateOfBirth),
		Career:      in.Text(FieldCareerID),
		User:        in.Text(FieldUserID),
		Subjects:    in.List(FieldSubjects),
	}
	if err := v.check(raw); err != nil {
		return models.StudentPayload{}, err
	}
	if mode.Creating() && raw.User == "" {
		return models.StudentPayload{}, invalidSelection(FieldUserID)
	}

	status := models.StudentStatus(raw.Status)
	career := mustSelection(raw.Career)
	payload := models.StudentPayload{
		Name:        &raw.Name,
		Status:      &status,
		DateOfBirth: &raw.DateOfBirth,
		CareerID:    &career,
		Subjects:    ParseSelections(raw.Subjects),
	}
	if raw.User != "" {
		id := mustSelection(raw.User)
		payload.UserID = &id
	}
	return payload, nil
}

type userForm struct {
	Creating bool   `json:"-" validate:"-"`
	Email    string `json:"email" validate:"required,mailbox"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required_if=Creating true"`
	Role     string `json:"role" validate:"required,oneof=ADMIN TEACHER STUDENT"`
}

type userSelfForm struct {
	Creating bool   `json:"-" validate:"-"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required_if=Creating true"`
}

// User validates the account form. The password is mandatory on create and
// dropped from the payload when left blank on update. In restricted mode only
// the username and password are read.
func (v *Validator) User(in Input, mode Mode) (models.UserPayload, error) {
	if mode.Restricted {
		raw := userSelfForm{
			Creating: mode.Creating(),
			Username: in.Text(FieldUsername),
			Password: in.Text(FieldPassword),
		}
		if err := v.check(raw); err != nil {
			return models.UserPayload{}, err
		}
		return models.UserPayload{Username: raw.Username, Password: optional(raw.Password)}, nil
	}

	raw := userForm{
		Creating: mode.Creating(),
		Email:    in.Text(FieldEmail),
		Username: in.Text(FieldUsername),
		Password: in.Text(FieldPassword),
		Role:     in.Text(FieldRole),
	}
	if err := v.check(raw); err != nil {
		return models.UserPayload{}, err
	}
	role := models.Role(raw.Role)
	return models.UserPayload{
		Email:    &raw.Email,
		Username: raw.Username,
		Password: optional(raw.Password),
		Role:     &role,
	}, nil
}

type groupForm struct {
	Name        string `json:"name" validate:"required,groupname"`
	Career      string `json:"careerId" validate:"selection"`
	Subject     string `json:"subjectId" validate:"selection"`
	Teacher     string `json:"teacherId" validate:"selection"`
	Classroom   string `json:"classroomId" validate:"selection"`
	Schedule    string `json:"scheduleId" validate:"selection"`
	Semester    string `json:"semester" validate:"required,posint"`
	MaxStudents string `json:"maxStudents" validate:"required,posint"`
}

// Group validates the group form.
func (v *Validator) Group(in Input) (models.GroupPayload, error) {
	raw := groupForm{
		Name:        in.Normalized(FieldName),
		Career:      in.Text(FieldCareerID),
		Subject:     in.Text(FieldSubjectID),
		Teacher:     in.Text(FieldTeacherID),
		Classroom:   in.Text(FieldClassroomID),
		Schedule:    in.Text(FieldScheduleID),
		Semester:    in.Text(FieldSemester),
		MaxStudents: in.Text(FieldMaxStudents),
	}
	if err := v.check(raw); err != nil {
		return models.GroupPayload{}, err
	}
	return models.GroupPayload{
		Name:        raw.Name,
		CareerID:    mustSelection(raw.Career),
		SubjectID:   mustSelection(raw.Subject),
		TeacherID:   mustSelection(raw.Teacher),
		ClassroomID: mustSelection(raw.Classroom),
		ScheduleID:  mustSelection(raw.Schedule),
		Semester:    mustInt(raw.Semester),
		MaxStudents: mustInt(raw.MaxStudents),
	}, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
