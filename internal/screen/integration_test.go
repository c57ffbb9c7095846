package screen

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/gateway"
	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/internal/session"
	"github.com/noah-isme/sigue-client/internal/stub"
	"github.com/noah-isme/sigue-client/pkg/config"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

func newStubGateway(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := stub.New(stub.Options{
		Config: config.StubConfig{
			JWTSecret:     "test-secret",
			JWTExpiration: time.Hour,
			AdminUsername: "admin",
			AdminPassword: "Admin123",
			AdminEmail:    "admin@sigue.edu",
		},
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func loginDeps(t *testing.T, baseURL, username, password string) Deps {
	t.Helper()
	sess := session.New()
	client := gateway.New(gateway.Options{BaseURL: baseURL, Timeout: 5 * time.Second, Tokens: sess})
	resp, err := client.Login(context.Background(), username, password)
	require.NoError(t, err)
	require.NoError(t, sess.Start(resp))
	return Deps{
		API:     gateway.Bind(client),
		Session: sess,
		Confirm: ConfirmFunc(func(string) bool { return true }),
	}
}

func TestCareersAgainstGateway(t *testing.T) {
	ts := newStubGateway(t)
	ctx := context.Background()
	admin := loginDeps(t, ts.URL, "admin", "Admin123")

	first := Careers(admin)
	stale := Careers(admin)
	require.NoError(t, first.Load(ctx))
	require.NoError(t, stale.Load(ctx))

	first.SetInput(form.NewInput().Set(form.FieldName, "Law").Set(form.FieldSemesters, "8"))
	saved, err := first.Save(ctx)
	require.NoError(t, err)
	assert.True(t, first.Identity().Is(saved.ID))
	require.Len(t, first.Rows(), 1)

	require.NoError(t, first.Reset(ctx))
	first.SetInput(form.NewInput().Set(form.FieldName, "law").Set(form.FieldSemesters, "9"))
	_, err = first.Save(ctx)
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)

	// The stale screen never saw the new row, so the gateway rejects it.
	stale.SetInput(form.NewInput().Set(form.FieldName, "LAW").Set(form.FieldSemesters, "9"))
	_, err = stale.Save(ctx)
	require.Error(t, err)
	notice := Report(err)
	assert.Equal(t, SeverityError, notice.Severity)
	assert.Equal(t, `a career named "LAW" already exists`, notice.Message)
	assert.Equal(t, StateBrowsing, stale.State())

	require.NoError(t, first.Select(ctx, saved.ID))
	require.NoError(t, first.Delete(ctx))
	assert.Empty(t, first.Rows())
}

func TestTeacherSelfServiceAgainstGateway(t *testing.T) {
	ts := newStubGateway(t)
	ctx := context.Background()
	admin := loginDeps(t, ts.URL, "admin", "Admin123")

	users := Users(admin)
	users.SetInput(form.NewInput().
		Set(form.FieldEmail, "ana@sigue.edu").
		Set(form.FieldUsername, "ana").
		Set(form.FieldPassword, "Secret1").
		Set(form.FieldRole, string(models.RoleTeacher)))
	account, err := users.Save(ctx)
	require.NoError(t, err)

	careers := Careers(admin)
	careers.SetInput(form.NewInput().Set(form.FieldName, "Law").Set(form.FieldSemesters, "8"))
	law, err := careers.Save(ctx)
	require.NoError(t, err)

	subjects := Subjects(admin)
	subjects.SetInput(form.NewInput().
		Set(form.FieldName, "Civil Law").
		Set(form.FieldCredits, "6").
		Set(form.FieldSemester, "1").
		Set(form.FieldCareerID, form.Label(law.ID, law.Name)))
	civil, err := subjects.Save(ctx)
	require.NoError(t, err)

	teachers := Teachers(admin)
	teachers.SetInput(form.NewInput().
		Set(form.FieldName, "Ana Lopez").
		Set(form.FieldDegree, string(models.DegreeMaster)).
		Set(form.FieldUserID, form.Label(account.ID, account.Email)).
		Pick(form.FieldCareerIDs, form.Label(law.ID, law.Name)))
	created, err := teachers.Save(ctx)
	require.NoError(t, err)
	require.Len(t, created.Careers, 1)

	teacher := loginDeps(t, ts.URL, "ana", "Secret1")
	own := Teachers(teacher)
	assert.True(t, own.Capabilities().SelfService)
	assert.Error(t, own.Load(ctx))
	require.NoError(t, own.LoadSelf(ctx))

	own.Edit(form.FieldName, "Somebody Else")
	own.Edit(form.FieldDegree, string(models.DegreeDoctor))
	own.SetInput(own.Input().Pick(form.FieldSubjectIDs, form.Label(civil.ID, civil.Name)))
	saved, err := own.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", saved.Name)
	assert.Equal(t, models.DegreeDoctor, saved.Degree)
	require.Len(t, saved.Subjects, 1)
	assert.Equal(t, "Civil Law", saved.Subjects[0].Name)

	profile := Users(teacher)
	require.NoError(t, profile.LoadSelf(ctx))
	assert.Equal(t, "ana", profile.Input().Text(form.FieldUsername))
	assert.ErrorIs(t, profile.Delete(ctx), appErrors.ErrForbidden)
}

func TestScheduleTimeFormatAgainstGateway(t *testing.T) {
	ts := newStubGateway(t)
	ctx := context.Background()
	schedules := Schedules(loginDeps(t, ts.URL, "admin", "Admin123"))
	require.NoError(t, schedules.Load(ctx))

	schedules.SetInput(form.NewInput().Set(form.FieldTime, "08:30").Set(form.FieldShift, string(models.ShiftMorning)))
	saved, err := schedules.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "08:30", saved.Time)
	require.Len(t, schedules.Rows(), 1)

	require.NoError(t, schedules.Reset(ctx))
	schedules.SetInput(form.NewInput().Set(form.FieldTime, "8:30").Set(form.FieldShift, string(models.ShiftMorning)))
	_, err = schedules.Save(ctx)
	assert.ErrorIs(t, err, appErrors.ErrInvalidTime)
	assert.Equal(t, StateBrowsing, schedules.State())
	assert.Len(t, schedules.Rows(), 1)
}

func TestSubjectUpdateKeepsItsOwnKeyAgainstGateway(t *testing.T) {
	ts := newStubGateway(t)
	ctx := context.Background()
	admin := loginDeps(t, ts.URL, "admin", "Admin123")

	careers := Careers(admin)
	careers.SetInput(form.NewInput().Set(form.FieldName, "Law").Set(form.FieldSemesters, "8"))
	law, err := careers.Save(ctx)
	require.NoError(t, err)
	lawOption := form.Label(law.ID, law.Name)

	subjects := Subjects(admin)
	require.NoError(t, subjects.Load(ctx))
	subjects.SetInput(form.NewInput().
		Set(form.FieldName, "Ethics").
		Set(form.FieldCredits, "4").
		Set(form.FieldSemester, "2").
		Set(form.FieldCareerID, lawOption))
	ethics, err := subjects.Save(ctx)
	require.NoError(t, err)

	require.NoError(t, subjects.Select(ctx, ethics.ID))
	subjects.Edit(form.FieldCredits, "5")
	updated, err := subjects.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, ethics.ID, updated.ID)
	assert.Equal(t, 5, updated.Credits)
	require.Len(t, subjects.Rows(), 1)
	assert.Equal(t, 5, subjects.Rows()[0].Credits)

	require.NoError(t, subjects.Reset(ctx))
	subjects.SetInput(form.NewInput().
		Set(form.FieldName, "ethics").
		Set(form.FieldCredits, "3").
		Set(form.FieldSemester, "1").
		Set(form.FieldCareerID, lawOption))
	_, err = subjects.Save(ctx)
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)
}
