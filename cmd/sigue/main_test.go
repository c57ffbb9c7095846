package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/stub"
	"github.com/noah-isme/sigue-client/pkg/config"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/export"
)

func TestApplyEditsReplacesPickedLists(t *testing.T) {
	in := form.NewInput().
		Set(form.FieldName, "Ana").
		Pick(form.FieldSubjects, "1 - Algebra", "2 - Physics")

	out, err := applyEdits(in, []string{"degree=PhD"}, []string{"subjects=3 - Chemistry", "subjects=4 - Biology"})
	require.NoError(t, err)

	assert.Equal(t, "PhD", out.Text(form.FieldDegree))
	assert.Equal(t, "Ana", out.Text(form.FieldName))
	assert.Equal(t, []string{"3 - Chemistry", "4 - Biology"}, out.List(form.FieldSubjects))
	assert.Equal(t, []string{"1 - Algebra", "2 - Physics"}, in.List(form.FieldSubjects))
}

func TestApplyEditsClearsListWithEmptyPick(t *testing.T) {
	in := form.NewInput().Pick(form.FieldCareerIDs, "1 - Law")

	out, err := applyEdits(in, nil, []string{"careerIds="})
	require.NoError(t, err)
	assert.Empty(t, out.List(form.FieldCareerIDs))
}

func TestApplyEditsRejectsMalformedPairs(t *testing.T) {
	_, err := applyEdits(form.NewInput(), []string{"name"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidFormat)

	_, err = applyEdits(form.NewInput(), nil, []string{"=x"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidFormat)
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	err := printTable(&buf, export.Dataset{
		Headers: []string{"ID", "Name"},
		Rows:    []map[string]string{{"ID": "1", "Name": "Law"}},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID  Name", lines[0])
	assert.Equal(t, "1   Law", lines[1])
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-3", "abc"} {
		_, err := parseID(raw)
		assert.ErrorIs(t, err, appErrors.ErrInvalidNumber, raw)
	}
}

func startGateway(t *testing.T) {
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

	t.Setenv("API_BASE_URL", ts.URL)
	t.Setenv("API_RETRY_ATTEMPTS", "0")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--username", "admin", "--password", "Admin123"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMenuListsAdminSections(t *testing.T) {
	startGateway(t)

	out, err := execute(t, "", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as admin (ADMIN)")
	assert.Contains(t, out, "sigue careers")
	assert.Contains(t, out, "sigue groups")
}

func TestCareerLifecycle(t *testing.T) {
	startGateway(t)

	out, err := execute(t, "", "careers", "save", "--set", "name=Law", "--set", "semesters=8")
	require.NoError(t, err)
	assert.Contains(t, out, "Success: saved careers #1")

	_, err = execute(t, "", "careers", "save", "--set", "name=law", "--set", "semesters=6")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)

	out, err = execute(t, "", "careers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Law")

	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)
	out, err = execute(t, "", "careers", "list", "--export", "careers.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Success: exported 1 careers to "+filepath.Join(dir, "careers.csv"))
	raw, err := os.ReadFile(filepath.Join(dir, "careers.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1,Law,8")

	out, err = execute(t, "n\n", "careers", "delete", "1")
	assert.ErrorIs(t, err, appErrors.ErrAborted)
	assert.Contains(t, out, `Delete career "Law"? [y/N]`)

	out, err = execute(t, "", "careers", "delete", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Success: deleted careers #1")

	_, err = execute(t, "", "careers", "get", "1")
	assert.ErrorIs(t, err, appErrors.ErrGateway)
}

func TestLoginFailureIsReported(t *testing.T) {
	startGateway(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--username", "admin", "--password", "wrong", "menu"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrGateway)
}
