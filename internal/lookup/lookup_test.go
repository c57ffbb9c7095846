package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sigue-client/internal/gateway"
	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/pkg/cache"
)

type fakeSource struct {
	careers      []models.Career
	subjects     []models.Subject
	teachers     []models.Teacher
	classrooms   []models.Classroom
	schedules    []models.Schedule
	users        []models.User
	subjectCalls map[int64]int
	err          error
}

func (f *fakeSource) Careers(context.Context) ([]models.Career, error) {
	return f.careers, f.err
}

func (f *fakeSource) Subjects(_ context.Context, careerID int64) ([]models.Subject, error) {
	if f.subjectCalls == nil {
		f.subjectCalls = map[int64]int{}
	}
	f.subjectCalls[careerID]++
	if f.err != nil {
		return nil, f.err
	}
	if careerID == 0 {
		return f.subjects, nil
	}
	var out []models.Subject
	for _, s := range f.subjects {
		if s.CareerID == careerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSource) Teachers(context.Context) ([]models.Teacher, error) {
	return f.teachers, f.err
}

func (f *fakeSource) Classrooms(context.Context) ([]models.Classroom, error) {
	return f.classrooms, f.err
}

func (f *fakeSource) Schedules(context.Context) ([]models.Schedule, error) {
	return f.schedules, f.err
}

func (f *fakeSource) Unassigned(_ context.Context, role models.Role, entity string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, f.err
}

func newSource() *fakeSource {
	return &fakeSource{
		careers: []models.Career{{ID: 1, Name: "Law"}, {ID: 2, Name: "Medicine"}},
		subjects: []models.Subject{
			{ID: 10, Name: "Ethics", CareerID: 1},
			{ID: 11, Name: "Civil Law", CareerID: 1},
			{ID: 20, Name: "Anatomy", CareerID: 2},
		},
		teachers:   []models.Teacher{{ID: 3, Name: "Laura Díaz"}},
		classrooms: []models.Classroom{{ID: 6, Name: "A1", Building: "North"}},
		schedules:  []models.Schedule{{ID: 8, Time: "07:00", Shift: models.ShiftMorning}},
		users: []models.User{
			{ID: 9, Email: "t@uni.edu", Username: "teach", Role: models.RoleTeacher},
			{ID: 12, Email: "s@uni.edu", Username: "stud", Role: models.RoleStudent},
		},
	}
}

func TestSubjectsByCareerAreCachedPerScope(t *testing.T) {
	src := newSource()
	metrics := gateway.NewMetrics()
	scope := NewScope(cache.NewMemoryStore(time.Minute), time.Minute, metrics, nil)
	catalog := NewCatalog(src, scope)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rows, err := catalog.SubjectsByCareer(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	}
	assert.Equal(t, 1, src.subjectCalls[1])

	_, err := catalog.SubjectsByCareer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, src.subjectCalls[2])

	require.NoError(t, catalog.Close(ctx))
	_, err = catalog.SubjectsByCareer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, src.subjectCalls[1])
}

func TestScopesDoNotShareEntries(t *testing.T) {
	src := newSource()
	store := cache.NewMemoryStore(time.Minute)
	ctx := context.Background()

	first := NewCatalog(src, NewScope(store, time.Minute, nil, nil))
	second := NewCatalog(src, NewScope(store, time.Minute, nil, nil))

	_, err := first.SubjectsByCareer(ctx, 1)
	require.NoError(t, err)
	_, err = second.SubjectsByCareer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, src.subjectCalls[1])

	require.NoError(t, first.Close(ctx))
	assert.Equal(t, 1, store.Len())
}

func TestRememberDoesNotCacheFailures(t *testing.T) {
	src := newSource()
	src.err = errors.New("boom")
	catalog := NewCatalog(src, NewScope(cache.NewMemoryStore(time.Minute), time.Minute, nil, nil))
	ctx := context.Background()

	_, err := catalog.SubjectsByCareer(ctx, 1)
	require.Error(t, err)

	src.err = nil
	rows, err := catalog.SubjectsByCareer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, src.subjectCalls[1])
}

func TestCatalogWithoutScopeAlwaysFetches(t *testing.T) {
	src := newSource()
	catalog := NewCatalog(src, nil)
	ctx := context.Background()

	_, _ = catalog.SubjectsByCareer(ctx, 1)
	_, _ = catalog.SubjectsByCareer(ctx, 1)
	assert.Equal(t, 2, src.subjectCalls[1])
	assert.NoError(t, catalog.Close(ctx))
}

func TestOptionLabels(t *testing.T) {
	catalog := NewCatalog(newSource(), nil)
	ctx := context.Background()

	careers, err := catalog.CareerOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 - Law", "2 - Medicine"}, careers)

	classrooms, err := catalog.ClassroomOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"6 - A1 (North)"}, classrooms)

	schedules, err := catalog.ScheduleOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"8 - 07:00 (MATUTINO)"}, schedules)

	teachers, err := catalog.TeacherOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3 - Laura Díaz"}, teachers)

	users, err := catalog.UserOptions(ctx, models.RoleTeacher, "teachers")
	require.NoError(t, err)
	assert.Equal(t, []string{"9 - t@uni.edu (teach)"}, users)

	subjects, err := catalog.SubjectOptions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"20 - Anatomy"}, subjects)
}

func TestCascadeSubjects(t *testing.T) {
	catalog := NewCatalog(newSource(), NewScope(cache.NewMemoryStore(time.Minute), time.Minute, nil, nil))
	ctx := context.Background()

	cascade, err := catalog.CascadeSubjects(ctx, "1 - Law", "10 - Ethics")
	require.NoError(t, err)
	assert.Equal(t, []string{"10 - Ethics", "11 - Civil Law"}, cascade.Options)
	assert.Equal(t, "10 - Ethics", cascade.Subject)

	cascade, err = catalog.CascadeSubjects(ctx, "2 - Medicine", "10 - Ethics")
	require.NoError(t, err)
	assert.Equal(t, []string{"20 - Anatomy"}, cascade.Options)
	assert.Empty(t, cascade.Subject)

	cascade, err = catalog.CascadeSubjects(ctx, "", "10 - Ethics")
	require.NoError(t, err)
	assert.Empty(t, cascade.Options)
	assert.Empty(t, cascade.Subject)
}

func TestTeacherSubjectOptions(t *testing.T) {
	catalog := NewCatalog(newSource(), nil)
	ctx := context.Background()

	all, err := catalog.TeacherSubjectOptions(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"10 - Ethics (Law)", "11 - Civil Law (Law)", "20 - Anatomy (Medicine)"}, all)

	filtered, err := catalog.TeacherSubjectOptions(ctx, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []string{"20 - Anatomy (Medicine)"}, filtered)
}

func TestOptionsPropagateErrors(t *testing.T) {
	src := newSource()
	src.err = errors.New("offline")
	catalog := NewCatalog(src, nil)

	_, err := catalog.CareerOptions(context.Background())
	assert.EqualError(t, err, "offline")
	_, err = catalog.TeacherSubjectOptions(context.Background(), nil)
	assert.Error(t, err)
}
