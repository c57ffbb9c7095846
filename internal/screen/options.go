package screen

import (
	"context"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/lookup"
	"github.com/noah-isme/sigue-client/internal/models"
)

// Choices are the options a form offers per field, together with the form
// state after dependent fields were reconciled.
type Choices struct {
	Options map[string][]string
	Input   form.Input
}

func enumOptions[E ~string](values []E) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// LoadChoices fetches the support data of the entity form. Restricted
// screens only get the choices of the fields they may edit.
func LoadChoices(ctx context.Context, catalog *lookup.Catalog, entity access.Entity, caps access.Capabilities, in form.Input) (Choices, error) {
	out := Choices{Options: map[string][]string{}, Input: in}
	set := func(field string, load func() ([]string, error)) error {
		if !caps.CanEditField(field) {
			return nil
		}
		options, err := load()
		if err != nil {
			return err
		}
		out.Options[field] = options
		return nil
	}
	static := func(values []string) func() ([]string, error) {
		return func() ([]string, error) { return values, nil }
	}
	careers := func() ([]string, error) { return catalog.CareerOptions(ctx) }

	var err error
	switch entity {
	case access.Schedules:
		err = set(form.FieldShift, static(enumOptions(models.Shifts)))
	case access.Subjects:
		err = set(form.FieldCareerID, careers)
	case access.Users:
		err = set(form.FieldRole, static(enumOptions(models.Roles)))
	case access.Teachers:
		err = firstErr(
			func() error { return set(form.FieldDegree, static(enumOptions(models.Degrees))) },
			func() error {
				return set(form.FieldUserID, func() ([]string, error) {
					return catalog.UserOptions(ctx, models.RoleTeacher, string(access.Teachers))
				})
			},
			func() error { return set(form.FieldCareerIDs, careers) },
			func() error {
				return set(form.FieldSubjectIDs, func() ([]string, error) {
					return catalog.TeacherSubjectOptions(ctx, form.ParseSelections(in.List(form.FieldCareerIDs)))
				})
			},
		)
	case access.Students:
		err = firstErr(
			func() error { return set(form.FieldStatus, static(enumOptions(models.StudentStatuses))) },
			func() error {
				return set(form.FieldUserID, func() ([]string, error) {
					return catalog.UserOptions(ctx, models.RoleStudent, string(access.Students))
				})
			},
			func() error { return set(form.FieldCareerID, careers) },
			func() error {
				return set(form.FieldSubjects, func() ([]string, error) {
					careerID, ok := form.ParseSelection(in.Text(form.FieldCareerID))
					if !ok {
						return []string{}, nil
					}
					return catalog.SubjectOptions(ctx, careerID)
				})
			},
		)
	case access.Groups:
		err = firstErr(
			func() error { return set(form.FieldCareerID, careers) },
			func() error {
				return set(form.FieldTeacherID, func() ([]string, error) { return catalog.TeacherOptions(ctx) })
			},
			func() error {
				return set(form.FieldClassroomID, func() ([]string, error) { return catalog.ClassroomOptions(ctx) })
			},
			func() error {
				return set(form.FieldScheduleID, func() ([]string, error) { return catalog.ScheduleOptions(ctx) })
			},
			func() error {
				cascade, err := catalog.CascadeSubjects(ctx, in.Text(form.FieldCareerID), in.Text(form.FieldSubjectID))
				if err != nil {
					return err
				}
				out.Options[form.FieldSubjectID] = cascade.Options
				out.Input = in.Clone().Set(form.FieldSubjectID, cascade.Subject)
				return nil
			},
		)
	}
	if err != nil {
		return Choices{}, err
	}
	return out, nil
}

func firstErr(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
