package lookup

import (
	"fmt"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/models"
)

// CareerLabel renders "id - name".
func CareerLabel(c models.Career) string {
	return form.Label(c.ID, c.Name)
}

// SubjectLabel renders "id - name".
func SubjectLabel(s models.Subject) string {
	return form.Label(s.ID, s.Name)
}

// TeacherLabel renders "id - name".
func TeacherLabel(t models.Teacher) string {
	return form.Label(t.ID, t.Name)
}

// ClassroomLabel renders "id - name (building)".
func ClassroomLabel(c models.Classroom) string {
	return form.Label(c.ID, fmt.Sprintf("%s (%s)", c.Name, c.Building))
}

// ScheduleLabel renders "id - time (shift)".
func ScheduleLabel(s models.Schedule) string {
	return form.Label(s.ID, fmt.Sprintf("%s (%s)", s.Time, s.Shift))
}

// UserLabel renders "id - email (username)".
func UserLabel(u models.User) string {
	return form.Label(u.ID, fmt.Sprintf("%s (%s)", u.Email, u.Username))
}

// CareerSubjectLabel renders "id - name (career)".
func CareerSubjectLabel(s models.Subject, career string) string {
	return form.Label(s.ID, fmt.Sprintf("%s (%s)", s.Name, career))
}

func labels[T any](rows []T, label func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, label(r))
	}
	return out
}
