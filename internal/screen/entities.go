package screen

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/dedupe"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/gateway"
	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/internal/session"
)

// Deps wires the screens of one logged-in session.
type Deps struct {
	API       *gateway.Resources
	Validator *form.Validator
	Session   *session.Session
	Confirm   Confirmer
	Logger    *zap.Logger
}

func (d Deps) options() Options {
	user := d.Session.User()
	return Options{Role: user.Role, UserID: user.ID, Confirm: d.Confirm, Logger: d.Logger}
}

func (d Deps) validator() *form.Validator {
	if d.Validator == nil {
		return form.New(nil)
	}
	return d.Validator
}

// Careers builds the careers screen.
func Careers(d Deps) *Controller[models.Career, models.CareerPayload] {
	v := d.validator()
	return New(Spec[models.Career, models.CareerPayload]{
		Entity:  access.Careers,
		Backend: d.API.Careers,
		Validate: func(in form.Input, _ form.Mode) (models.CareerPayload, error) {
			return v.Career(in)
		},
		Detect:   dedupe.Careers,
		ID:       func(c models.Career) int64 { return c.ID },
		Describe: func(c models.Career) string { return fmt.Sprintf("career %q", c.Name) },
		Fill: func(c models.Career) form.Input {
			return form.NewInput().
				Set(form.FieldName, c.Name).
				Set(form.FieldSemesters, strconv.Itoa(c.Semesters))
		},
	}, d.options())
}

// Classrooms builds the classrooms screen.
func Classrooms(d Deps) *Controller[models.Classroom, models.ClassroomPayload] {
	v := d.validator()
	return New(Spec[models.Classroom, models.ClassroomPayload]{
		Entity:  access.Classrooms,
		Backend: d.API.Classrooms,
		Validate: func(in form.Input, _ form.Mode) (models.ClassroomPayload, error) {
			return v.Classroom(in)
		},
		Detect:   dedupe.Classrooms,
		ID:       func(c models.Classroom) int64 { return c.ID },
		Describe: func(c models.Classroom) string { return fmt.Sprintf("classroom %q (%s)", c.Name, c.Building) },
		Fill: func(c models.Classroom) form.Input {
			return form.NewInput().
				Set(form.FieldName, c.Name).
				Set(form.FieldBuilding, c.Building)
		},
	}, d.options())
}

// Schedules builds the schedules screen. Schedules have no natural key
// check; the gateway decides on clashes.
func Schedules(d Deps) *Controller[models.Schedule, models.SchedulePayload] {
	v := d.validator()
	return New(Spec[models.Schedule, models.SchedulePayload]{
		Entity:  access.Schedules,
		Backend: d.API.Schedules,
		Validate: func(in form.Input, _ form.Mode) (models.SchedulePayload, error) {
			return v.Schedule(in)
		},
		ID:       func(s models.Schedule) int64 { return s.ID },
		Describe: func(s models.Schedule) string { return fmt.Sprintf("schedule %s (%s)", s.Time, s.Shift) },
		Fill: func(s models.Schedule) form.Input {
			return form.NewInput().
				Set(form.FieldTime, s.Time).
				Set(form.FieldShift, string(s.Shift))
		},
	}, d.options())
}

// Subjects builds the subjects screen. Use Filter with a careerId query to
// narrow the list to one career.
func Subjects(d Deps) *Controller[models.Subject, models.SubjectPayload] {
	v := d.validator()
	return New(Spec[models.Subject, models.SubjectPayload]{
		Entity:  access.Subjects,
		Backend: d.API.Subjects,
		Validate: func(in form.Input, _ form.Mode) (models.SubjectPayload, error) {
			return v.Subject(in)
		},
		Detect:   dedupe.Subjects,
		ID:       func(s models.Subject) int64 { return s.ID },
		Describe: func(s models.Subject) string { return fmt.Sprintf("subject %q", s.Name) },
		Fill: func(s models.Subject) form.Input {
			return form.NewInput().
				Set(form.FieldName, s.Name).
				Set(form.FieldCredits, strconv.Itoa(s.Credits)).
				Set(form.FieldSemester, strconv.Itoa(s.Semester)).
				Set(form.FieldCareerID, option(s.CareerID, ""))
		},
	}, d.options())
}

// Teachers builds the teachers screen. Teachers see their own profile only.
func Teachers(d Deps) *Controller[models.Teacher, models.TeacherPayload] {
	v := d.validator()
	return New(Spec[models.Teacher, models.TeacherPayload]{
		Entity:   access.Teachers,
		Backend:  d.API.Teachers,
		Validate: v.Teacher,
		ID:       func(t models.Teacher) int64 { return t.ID },
		Describe: func(t models.Teacher) string { return fmt.Sprintf("teacher %q", t.Name) },
		Hydrate:  true,
		Self:     d.API.Teachers.Me,
		Fill: func(t models.Teacher) form.Input {
			in := form.NewInput().
				Set(form.FieldName, t.Name).
				Set(form.FieldDegree, string(t.Degree)).
				Set(form.FieldUserID, option(t.UserID, t.Email))
			for _, c := range t.Careers {
				in = in.Pick(form.FieldCareerIDs, option(c.CareerID, c.Name))
			}
			for _, s := range t.Subjects {
				in = in.Pick(form.FieldSubjectIDs, option(s.SubjectID, s.Name))
			}
			return in
		},
	}, d.options())
}

// Students builds the students screen. Students see their own profile only
// and may change nothing but their subject enrolment.
func Students(d Deps) *Controller[models.Student, models.StudentPayload] {
	v := d.validator()
	return New(Spec[models.Student, models.StudentPayload]{
		Entity:   access.Students,
		Backend:  d.API.Students,
		Validate: v.Student,
		ID:       func(s models.Student) int64 { return s.ID },
		Describe: func(s models.Student) string { return fmt.Sprintf("student %q", s.Name) },
		Hydrate:  true,
		Self:     d.API.Students.Me,
		Fill: func(s models.Student) form.Input {
			in := form.NewInput().
				Set(form.FieldName, s.Name).
				Set(form.FieldStatus, string(s.Status)).
				Set(form.FieldDateOfBirth, s.DateOfBirth).
				Set(form.FieldCareerID, option(s.CareerID, "")).
				Set(form.FieldUserID, option(s.UserID, s.Email))
			for _, sub := range s.Subjects {
				in = in.Pick(form.FieldSubjects, option(sub.SubjectID, sub.Name))
			}
			return in
		},
	}, d.options())
}

// Users builds the accounts screen. Non-administrators edit their own
// account; nobody may delete the account they are logged in with.
func Users(d Deps) *Controller[models.User, models.UserPayload] {
	v := d.validator()
	userID := d.Session.User().ID
	users := d.API.Users.Resource
	return New(Spec[models.User, models.UserPayload]{
		Entity:   access.Users,
		Backend:  users,
		Validate: v.User,
		ID:       func(u models.User) int64 { return u.ID },
		Describe: func(u models.User) string { return fmt.Sprintf("user %q", u.Username) },
		Self: func(ctx context.Context) (models.User, error) {
			return users.Get(ctx, userID)
		},
		ProtectOwner: true,
		Fill: func(u models.User) form.Input {
			return form.NewInput().
				Set(form.FieldEmail, u.Email).
				Set(form.FieldUsername, u.Username).
				Set(form.FieldRole, string(u.Role))
		},
	}, d.options())
}

// Groups builds the groups screen. The detail record carries the enrolled
// students.
func Groups(d Deps) *Controller[models.Group, models.GroupPayload] {
	v := d.validator()
	return New(Spec[models.Group, models.GroupPayload]{
		Entity:  access.Groups,
		Backend: d.API.Groups,
		Validate: func(in form.Input, _ form.Mode) (models.GroupPayload, error) {
			return v.Group(in)
		},
		ID:       func(g models.Group) int64 { return g.ID },
		Describe: func(g models.Group) string { return fmt.Sprintf("group %q", g.Name) },
		Hydrate:  true,
		Fill: func(g models.Group) form.Input {
			return form.NewInput().
				Set(form.FieldName, g.Name).
				Set(form.FieldCareerID, option(g.CareerID, g.CareerName)).
				Set(form.FieldSubjectID, option(g.SubjectID, g.SubjectName)).
				Set(form.FieldTeacherID, option(g.TeacherID, g.TeacherName)).
				Set(form.FieldClassroomID, option(g.ClassroomID, g.ClassroomName)).
				Set(form.FieldScheduleID, option(g.ScheduleID, g.ScheduleTime)).
				Set(form.FieldSemester, strconv.Itoa(g.Semester)).
				Set(form.FieldMaxStudents, strconv.Itoa(g.MaxStudents))
		},
	}, d.options())
}

// option renders a stored foreign key as a form choice.
func option(id int64, label string) string {
	switch {
	case id <= 0:
		return ""
	case label == "":
		return strconv.FormatInt(id, 10)
	default:
		return form.Label(id, label)
	}
}
