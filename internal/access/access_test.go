package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/sigue-client/internal/models"
)

func TestSections(t *testing.T) {
	assert.Equal(t, Entities, Sections(models.RoleAdmin))
	assert.Equal(t, []Entity{Teachers}, Sections(models.RoleTeacher))
	assert.Equal(t, []Entity{Students}, Sections(models.RoleStudent))
	assert.Empty(t, Sections(models.Role("GUEST")))

	sections := Sections(models.RoleAdmin)
	sections[0] = Groups
	assert.Equal(t, Users, Entities[0])
}

func TestAdminHasFullAccess(t *testing.T) {
	for _, e := range Entities {
		caps := For(e, models.RoleAdmin)
		assert.True(t, caps.Open, e)
		assert.True(t, caps.CanList, e)
		assert.True(t, caps.CanCreate, e)
		assert.True(t, caps.CanDelete, e)
		assert.False(t, caps.SelfService, e)
		assert.True(t, caps.CanEditField("name"), e)
		assert.Nil(t, caps.Editable())
	}
}

func TestTeacherSelfService(t *testing.T) {
	caps := For(Teachers, models.RoleTeacher)
	assert.True(t, caps.Open)
	assert.True(t, caps.SelfService)
	assert.False(t, caps.CanList)
	assert.False(t, caps.CanCreate)
	assert.False(t, caps.CanDelete)
	assert.True(t, caps.CanEditField("degree"))
	assert.True(t, caps.CanEditField("subjectIds"))
	assert.False(t, caps.CanEditField("name"))
	assert.False(t, caps.CanEditField("careerIds"))
	assert.Equal(t, []string{"degree", "subjectIds"}, caps.Editable())
}

func TestStudentSelfService(t *testing.T) {
	caps := For(Students, models.RoleStudent)
	assert.True(t, caps.SelfService)
	assert.Equal(t, []string{"subjects"}, caps.Editable())
	assert.False(t, caps.CanEditField("name"))
}

func TestUserSelfService(t *testing.T) {
	for _, role := range []models.Role{models.RoleTeacher, models.RoleStudent} {
		caps := For(Users, role)
		assert.True(t, caps.SelfService)
		assert.False(t, caps.CanDelete)
		assert.Equal(t, []string{"password", "username"}, caps.Editable())
	}
}

func TestClosedScreens(t *testing.T) {
	caps := For(Careers, models.RoleTeacher)
	assert.False(t, caps.Open)
	assert.False(t, caps.CanEditField("name"))
	assert.False(t, For(Teachers, models.RoleStudent).Open)
	assert.False(t, For(Groups, models.RoleStudent).Open)
}

func TestParseEntity(t *testing.T) {
	e, ok := ParseEntity("groups")
	assert.True(t, ok)
	assert.Equal(t, Groups, e)
	assert.Equal(t, "Groups", e.Title())

	_, ok = ParseEntity("rooms")
	assert.False(t, ok)
}
