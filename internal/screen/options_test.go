package screen

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/lookup"
	"github.com/noah-isme/sigue-client/internal/models"
)

type catalogSource struct {
	careers    []models.Career
	subjects   []models.Subject
	teachers   []models.Teacher
	classrooms []models.Classroom
	schedules  []models.Schedule
	users      []models.User
	unassigned []string
	err        error
}

func (s *catalogSource) Careers(context.Context) ([]models.Career, error) {
	return s.careers, s.err
}

func (s *catalogSource) Subjects(_ context.Context, careerID int64) ([]models.Subject, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Subject{}
	for _, sub := range s.subjects {
		if careerID == 0 || sub.CareerID == careerID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *catalogSource) Teachers(context.Context) ([]models.Teacher, error) {
	return s.teachers, s.err
}

func (s *catalogSource) Classrooms(context.Context) ([]models.Classroom, error) {
	return s.classrooms, s.err
}

func (s *catalogSource) Schedules(context.Context) ([]models.Schedule, error) {
	return s.schedules, s.err
}

func (s *catalogSource) Unassigned(_ context.Context, role models.Role, entity string) ([]models.User, error) {
	s.unassigned = append(s.unassigned, string(role)+"/"+entity)
	if s.err != nil {
		return nil, s.err
	}
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func universitySource() *catalogSource {
	return &catalogSource{
		careers: []models.Career{{ID: 1, Name: "Law"}, {ID: 2, Name: "Med"}},
		subjects: []models.Subject{
			{ID: 10, Name: "Ethics", CareerID: 1},
			{ID: 11, Name: "Civil Law", CareerID: 1},
			{ID: 20, Name: "Anatomy", CareerID: 2},
		},
		teachers:   []models.Teacher{{ID: 5, Name: "Ada"}},
		classrooms: []models.Classroom{{ID: 3, Name: "A1", Building: "North"}},
		schedules:  []models.Schedule{{ID: 7, Time: "08:30", Shift: models.ShiftMorning}},
		users: []models.User{
			{ID: 9, Email: "t@uni.edu", Username: "teach", Role: models.RoleTeacher},
			{ID: 12, Email: "s@uni.edu", Username: "stud", Role: models.RoleStudent},
		},
	}
}

func fields(options map[string][]string) []string {
	out := make([]string, 0, len(options))
	for f := range options {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func TestGroupChoicesCascadeFromCareer(t *testing.T) {
	caps := access.For(access.Groups, models.RoleAdmin)
	cases := []struct {
		name        string
		career      string
		subject     string
		wantSubject string
		wantOptions []string
	}{
		{"subject kept by its career", "1 - Law", "10 - Ethics", "10 - Ethics", []string{"10 - Ethics", "11 - Civil Law"}},
		{"career change clears subject", "2 - Med", "10 - Ethics", "", []string{"20 - Anatomy"}},
		{"no career offers nothing", "", "10 - Ethics", "", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := lookup.NewCatalog(universitySource(), nil)
			in := form.NewInput().Set(form.FieldCareerID, tc.career).Set(form.FieldSubjectID, tc.subject)

			choices, err := LoadChoices(context.Background(), catalog, access.Groups, caps, in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOptions, choices.Options[form.FieldSubjectID])
			assert.Equal(t, tc.wantSubject, choices.Input.Text(form.FieldSubjectID))
			assert.Equal(t, tc.subject, in.Text(form.FieldSubjectID), "caller input is not mutated")
			assert.Equal(t, []string{"1 - Law", "2 - Med"}, choices.Options[form.FieldCareerID])
			assert.Equal(t, []string{"5 - Ada"}, choices.Options[form.FieldTeacherID])
			assert.Equal(t, []string{"3 - A1 (North)"}, choices.Options[form.FieldClassroomID])
			assert.Equal(t, []string{"7 - 08:30 (MATUTINO)"}, choices.Options[form.FieldScheduleID])
		})
	}
}

func TestSelfServiceTeacherOnlyGetsEditableChoices(t *testing.T) {
	src := universitySource()
	catalog := lookup.NewCatalog(src, nil)

	choices, err := LoadChoices(context.Background(), catalog, access.Teachers,
		access.For(access.Teachers, models.RoleTeacher), form.NewInput())
	require.NoError(t, err)
	assert.Equal(t, []string{form.FieldDegree, form.FieldSubjectIDs}, fields(choices.Options))
	assert.Equal(t, enumOptions(models.Degrees), choices.Options[form.FieldDegree])
	assert.Empty(t, src.unassigned, "account list is never fetched")
}

func TestAdminTeacherChoices(t *testing.T) {
	src := universitySource()
	catalog := lookup.NewCatalog(src, nil)
	caps := access.For(access.Teachers, models.RoleAdmin)

	cases := []struct {
		name    string
		careers []string
		want    []string
	}{
		{"no career lists every subject", nil, []string{"10 - Ethics (Law)", "11 - Civil Law (Law)", "20 - Anatomy (Med)"}},
		{"picked careers filter subjects", []string{"2 - Med"}, []string{"20 - Anatomy (Med)"}},
		{"several careers", []string{"1 - Law", "2 - Med"}, []string{"10 - Ethics (Law)", "11 - Civil Law (Law)", "20 - Anatomy (Med)"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := form.NewInput().Pick(form.FieldCareerIDs, tc.careers...)
			choices, err := LoadChoices(context.Background(), catalog, access.Teachers, caps, in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, choices.Options[form.FieldSubjectIDs])
			assert.Equal(t, []string{"9 - t@uni.edu (teach)"}, choices.Options[form.FieldUserID])
			assert.Equal(t, []string{form.FieldCareerIDs, form.FieldDegree, form.FieldSubjectIDs, form.FieldUserID}, fields(choices.Options))
		})
	}
	assert.Contains(t, src.unassigned, "TEACHER/teachers")
}

func TestStudentChoices(t *testing.T) {
	catalog := lookup.NewCatalog(universitySource(), nil)

	self, err := LoadChoices(context.Background(), catalog, access.Students,
		access.For(access.Students, models.RoleStudent), form.NewInput().Set(form.FieldCareerID, "1 - Law"))
	require.NoError(t, err)
	assert.Equal(t, []string{form.FieldSubjects}, fields(self.Options))
	assert.Equal(t, []string{"10 - Ethics", "11 - Civil Law"}, self.Options[form.FieldSubjects])

	admin, err := LoadChoices(context.Background(), catalog, access.Students,
		access.For(access.Students, models.RoleAdmin), form.NewInput())
	require.NoError(t, err)
	assert.Empty(t, admin.Options[form.FieldSubjects])
	assert.Equal(t, enumOptions(models.StudentStatuses), admin.Options[form.FieldStatus])
	assert.Equal(t, []string{"12 - s@uni.edu (stud)"}, admin.Options[form.FieldUserID])
}

func TestLoadChoicesSurfacesSourceErrors(t *testing.T) {
	src := universitySource()
	src.err = errors.New("offline")
	catalog := lookup.NewCatalog(src, nil)

	_, err := LoadChoices(context.Background(), catalog, access.Groups, access.For(access.Groups, models.RoleAdmin), form.NewInput())
	assert.EqualError(t, err, "offline")

	choices, err := LoadChoices(context.Background(), catalog, access.Schedules, access.For(access.Schedules, models.RoleAdmin), form.NewInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"MATUTINO", "VESPERTINO"}, choices.Options[form.FieldShift])
}
