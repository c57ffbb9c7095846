package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	return appErr.Field
}

func TestCareerPositiveIntegerGrid(t *testing.T) {
	v := New(nil)

	rejected := map[string]*appErrors.Error{
		"0":   appErrors.ErrInvalidNumber,
		"-3":  appErrors.ErrInvalidNumber,
		"abc": appErrors.ErrInvalidNumber,
		"":    appErrors.ErrMissingField,
		"2.5": appErrors.ErrInvalidNumber,
	}
	for input, want := range rejected {
		_, err := v.Career(NewInput().Set(FieldName, "Law").Set(FieldSemesters, input))
		assert.ErrorIs(t, err, want, "input %q", input)
		assert.Equal(t, FieldSemesters, fieldOf(t, err), "input %q", input)
	}

	for input, want := range map[string]int{"1": 1, "42": 42, " 8 ": 8} {
		payload, err := v.Career(NewInput().Set(FieldName, "Law").Set(FieldSemesters, input))
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, payload.Semesters)
	}
}

func TestMissingFieldsAreReportedTogether(t *testing.T) {
	v := New(nil)

	_, err := v.Subject(NewInput().Set(FieldCredits, "abc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrMissingField)
	assert.Equal(t, "name,semester", fieldOf(t, err))
	assert.True(t, appErrors.IsValidation(err))
}

func TestScheduleTimeGrid(t *testing.T) {
	v := New(nil)

	for _, input := range []string{"07:00", "23:59", "08:30", "00:00"} {
		payload, err := v.Schedule(NewInput().Set(FieldTime, input).Set(FieldShift, "MATUTINO"))
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, payload.Time)
		assert.Equal(t, models.ShiftMorning, payload.Shift)
	}

	for _, input := range []string{"24:00", "7:00pm", "7-00", "8:30", "12:60"} {
		_, err := v.Schedule(NewInput().Set(FieldTime, input).Set(FieldShift, "MATUTINO"))
		assert.ErrorIs(t, err, appErrors.ErrInvalidTime, "input %q", input)
	}
}

func TestScheduleShiftMustBeKnown(t *testing.T) {
	v := New(nil)

	_, err := v.Schedule(NewInput().Set(FieldTime, "07:00").Set(FieldShift, "NOCTURNO"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidSelection)
	assert.Equal(t, FieldShift, fieldOf(t, err))
}

func validStudent() Input {
	return NewInput().
		Set(FieldName, "María José").
		Set(FieldStatus, "ACTIVE").
		Set(FieldDateOfBirth, "1995-01-30").
		Set(FieldCareerID, "3 - Law").
		Set(FieldUserID, "9 - maria@uni.edu (maria)").
		Pick(FieldSubjects, "4 - Civil Law", "7 - Roman Law")
}

func TestStudentDateGrid(t *testing.T) {
	v := New(nil)
	mode := Mode{Identity: models.Unsaved()}

	payload, err := v.Student(validStudent(), mode)
	require.NoError(t, err)
	require.NotNil(t, payload.DateOfBirth)
	assert.Equal(t, "1995-01-30", *payload.DateOfBirth)

	for _, input := range []string{"30-01-1995", "1995/01/30", "1995-02-30", "95-01-30"} {
		_, err := v.Student(validStudent().Set(FieldDateOfBirth, input), mode)
		assert.ErrorIs(t, err, appErrors.ErrInvalidDate, "input %q", input)
	}
}

func TestStudentPayloadCarriesOnlyParsedIDs(t *testing.T) {
	v := New(nil)

	payload, err := v.Student(validStudent(), Mode{Identity: models.Unsaved()})
	require.NoError(t, err)

	require.NotNil(t, payload.CareerID)
	assert.Equal(t, int64(3), *payload.CareerID)
	require.NotNil(t, payload.UserID)
	assert.Equal(t, int64(9), *payload.UserID)
	assert.Equal(t, []int64{4, 7}, payload.Subjects)
	require.NotNil(t, payload.Status)
	assert.Equal(t, models.StudentActive, *payload.Status)
}

func TestStudentCreateRequiresUserSelection(t *testing.T) {
	v := New(nil)

	_, err := v.Student(validStudent().Set(FieldUserID, ""), Mode{Identity: models.Unsaved()})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSelection)
	assert.Equal(t, FieldUserID, fieldOf(t, err))

	payload, err := v.Student(validStudent().Set(FieldUserID, ""), Mode{Identity: models.Persisted(5)})
	require.NoError(t, err)
	assert.Nil(t, payload.UserID)
}

func TestStudentSelfServiceIgnoresRestrictedFields(t *testing.T) {
	v := New(nil)
	in := validStudent().Set(FieldName, "Somebody Else").Set(FieldDateOfBirth, "not a date")

	payload, err := v.Student(in, Mode{Identity: models.Persisted(12), Restricted: true})
	require.NoError(t, err)

	assert.Nil(t, payload.Name)
	assert.Nil(t, payload.DateOfBirth)
	assert.Nil(t, payload.Status)
	assert.Nil(t, payload.CareerID)
	assert.Nil(t, payload.UserID)
	assert.Equal(t, []int64{4, 7}, payload.Subjects)
}

func TestStudentSelfServiceRequiresLoadedProfile(t *testing.T) {
	v := New(nil)

	_, err := v.Student(validStudent(), Mode{Identity: models.Unsaved(), Restricted: true})
	assert.ErrorIs(t, err, appErrors.ErrInvalidState)
}

func TestPersonNameGrid(t *testing.T) {
	v := New(nil)
	base := NewInput().Set(FieldDegree, "MAESTRIA")
	mode := Mode{Identity: models.Persisted(1)}

	for _, input := range []string{"José Núñez", "Ana", "Zoë Ångström"} {
		payload, err := v.Teacher(base.Set(FieldName, input), mode)
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, payload.Name)
		assert.Equal(t, input, *payload.Name)
	}

	for _, input := range []string{"R2D2", "O'Brien", "Ana.", "Jo3"} {
		_, err := v.Teacher(base.Set(FieldName, input), mode)
		assert.ErrorIs(t, err, appErrors.ErrInvalidFormat, "input %q", input)
		assert.Equal(t, FieldName, fieldOf(t, err))
	}
}

func TestPersonNameWhitespaceAndAccents(t *testing.T) {
	v := New(nil)
	mode := Mode{Identity: models.Persisted(1)}
	teacher := func(name string) (models.TeacherPayload, error) {
		return v.Teacher(NewInput().Set(FieldDegree, "MAESTRIA").Set(FieldName, name), mode)
	}

	for _, input := range []string{"Ana\tMaria", "Ana\nMaria", "Ana\u00a0Maria"} {
		_, err := teacher(input)
		assert.ErrorIs(t, err, appErrors.ErrInvalidFormat, "input %q", input)
	}

	payload, err := teacher("Jose\u0301 Nun\u0303ez")
	require.NoError(t, err)
	require.NotNil(t, payload.Name)
	assert.Equal(t, "Jos\u00e9 Nu\u00f1ez", *payload.Name)

	student, err := v.Student(validStudent().Set(FieldName, "Zoe\u0308"), Mode{Identity: models.Unsaved()})
	require.NoError(t, err)
	require.NotNil(t, student.Name)
	assert.Equal(t, "Zo\u00eb", *student.Name)

	_, err = v.Group(validGroup().Set(FieldName, "A\t1"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidFormat)
}

func TestInvalidFormatNamesOffendingCharacter(t *testing.T) {
	v := New(nil)

	_, err := v.Teacher(NewInput().Set(FieldName, "Ana7").Set(FieldDegree, "DOCTORADO"), Mode{Identity: models.Persisted(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"7"`)
}

func TestTeacherAdminPayload(t *testing.T) {
	v := New(nil)
	in := NewInput().
		Set(FieldName, "Laura Díaz").
		Set(FieldDegree, "DOCTORADO").
		Set(FieldUserID, "21 - laura@uni.edu (laura)").
		Pick(FieldCareerIDs, "1 - Law", "2 - Medicine").
		Pick(FieldSubjectIDs, "10 - Anatomy (Medicine)")

	payload, err := v.Teacher(in, Mode{Identity: models.Unsaved()})
	require.NoError(t, err)
	require.NotNil(t, payload.UserID)
	assert.Equal(t, int64(21), *payload.UserID)
	require.NotNil(t, payload.CareerIDs)
	assert.Equal(t, []int64{1, 2}, *payload.CareerIDs)
	assert.Equal(t, []int64{10}, payload.SubjectIDs)
	assert.Equal(t, models.DegreeDoctor, payload.Degree)

	_, err = v.Teacher(in.Set(FieldUserID, ""), Mode{Identity: models.Unsaved()})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSelection)
}

func TestTeacherSelfServiceKeepsDegreeAndSubjects(t *testing.T) {
	v := New(nil)
	in := NewInput().
		Set(FieldName, "Changed 123").
		Set(FieldDegree, "MAESTRIA").
		Set(FieldUserID, "99 - other@uni.edu (other)").
		Pick(FieldCareerIDs, "5 - Physics").
		Pick(FieldSubjectIDs, "3 - Algebra (Math)")

	payload, err := v.Teacher(in, Mode{Identity: models.Persisted(4), Restricted: true})
	require.NoError(t, err)
	assert.Nil(t, payload.Name)
	assert.Nil(t, payload.UserID)
	assert.Nil(t, payload.CareerIDs)
	assert.Equal(t, models.DegreeMaster, payload.Degree)
	assert.Equal(t, []int64{3}, payload.SubjectIDs)

	_, err = v.Teacher(in.Set(FieldDegree, ""), Mode{Identity: models.Persisted(4), Restricted: true})
	assert.ErrorIs(t, err, appErrors.ErrMissingField)
}

func TestSelectionListRejectsMalformedOption(t *testing.T) {
	v := New(nil)
	in := NewInput().Set(FieldDegree, "MAESTRIA").Pick(FieldSubjectIDs, "3 - Algebra", "Algebra")

	_, err := v.Teacher(in, Mode{Identity: models.Persisted(4), Restricted: true})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSelection)
	assert.Equal(t, FieldSubjectIDs, fieldOf(t, err))
}

func validUser() Input {
	return NewInput().
		Set(FieldEmail, "ana@uni.edu").
		Set(FieldUsername, "ana_perez").
		Set(FieldPassword, "secret").
		Set(FieldRole, "TEACHER")
}

func TestUsernameGrid(t *testing.T) {
	v := New(nil)
	mode := Mode{Identity: models.Unsaved()}

	for _, input := range []string{"ana_perez", "user42", "A_1"} {
		payload, err := v.User(validUser().Set(FieldUsername, input), mode)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, payload.Username)
	}

	for _, input := range []string{"ana perez", "a b c"} {
		_, err := v.User(validUser().Set(FieldUsername, input), mode)
		assert.ErrorIs(t, err, appErrors.ErrInvalidFormat, "input %q", input)
	}
}

func TestEmailShape(t *testing.T) {
	v := New(nil)
	mode := Mode{Identity: models.Unsaved()}

	for _, input := range []string{"ana", "ana@uni", "@uni.edu", "ana@uni.e"} {
		_, err := v.User(validUser().Set(FieldEmail, input), mode)
		assert.ErrorIs(t, err, appErrors.ErrInvalidFormat, "input %q", input)
		assert.Equal(t, FieldEmail, fieldOf(t, err))
	}
}

func TestPasswordPolicy(t *testing.T) {
	v := New(nil)

	_, err := v.User(validUser().Set(FieldPassword, "  "), Mode{Identity: models.Unsaved()})
	assert.ErrorIs(t, err, appErrors.ErrMissingField)
	assert.Equal(t, FieldPassword, fieldOf(t, err))

	payload, err := v.User(validUser().Set(FieldPassword, ""), Mode{Identity: models.Persisted(3)})
	require.NoError(t, err)
	assert.Nil(t, payload.Password)

	payload, err = v.User(validUser(), Mode{Identity: models.Persisted(3)})
	require.NoError(t, err)
	require.NotNil(t, payload.Password)
	assert.Equal(t, "secret", *payload.Password)
}

func TestUserSelfServiceKeepsCredentialsOnly(t *testing.T) {
	v := New(nil)

	payload, err := v.User(validUser().Set(FieldRole, "ADMIN").Set(FieldPassword, ""), Mode{Identity: models.Persisted(3), Restricted: true})
	require.NoError(t, err)
	assert.Nil(t, payload.Email)
	assert.Nil(t, payload.Role)
	assert.Nil(t, payload.Password)
	assert.Equal(t, "ana_perez", payload.Username)
}

func validGroup() Input {
	return NewInput().
		Set(FieldName, "LAW-101 A").
		Set(FieldCareerID, "1 - Law").
		Set(FieldSubjectID, "4 - Civil Law").
		Set(FieldTeacherID, "2 - Laura Díaz").
		Set(FieldClassroomID, "6 - A1 (North)").
		Set(FieldScheduleID, "8 - 07:00 (MATUTINO)").
		Set(FieldSemester, "1").
		Set(FieldMaxStudents, "30")
}

func TestGroupPayload(t *testing.T) {
	v := New(nil)

	payload, err := v.Group(validGroup())
	require.NoError(t, err)
	assert.Equal(t, models.GroupPayload{
		Name:        "LAW-101 A",
		CareerID:    1,
		SubjectID:   4,
		TeacherID:   2,
		ClassroomID: 6,
		ScheduleID:  8,
		Semester:    1,
		MaxStudents: 30,
	}, payload)
}

func TestGroupNameAndSelections(t *testing.T) {
	v := New(nil)

	_, err := v.Group(validGroup().Set(FieldName, "LAW_101"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidFormat)

	for _, input := range []string{"", "Law", "x - Law", "0 - Nothing"} {
		_, err := v.Group(validGroup().Set(FieldClassroomID, input))
		assert.ErrorIs(t, err, appErrors.ErrInvalidSelection, "input %q", input)
		assert.Equal(t, FieldClassroomID, fieldOf(t, err))
	}

	_, err = v.Group(validGroup().Set(FieldMaxStudents, "0"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidNumber)
}

func TestSubjectPayload(t *testing.T) {
	v := New(nil)
	in := NewInput().
		Set(FieldName, "Civil Law").
		Set(FieldCredits, "5").
		Set(FieldSemester, "2").
		Set(FieldCareerID, "1 - Law")

	payload, err := v.Subject(in)
	require.NoError(t, err)
	assert.Equal(t, models.SubjectPayload{Name: "Civil Law", Credits: 5, Semester: 2, CareerID: 1}, payload)
}

func TestParseSelection(t *testing.T) {
	id, ok := ParseSelection("12 - Law (North)")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	id, ok = ParseSelection("7")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	for _, input := range []string{"", "Law", "-1 - x", "1a - b", " - Law"} {
		_, ok := ParseSelection(input)
		assert.False(t, ok, "input %q", input)
	}

	assert.Equal(t, "3 - Law", Label(3, "Law"))
}
