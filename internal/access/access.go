// Package access turns the session role into the screens and capabilities a
// user is granted.
package access

import (
	"sort"

	"github.com/noah-isme/sigue-client/internal/models"
)

// Entity names a management screen. The value doubles as the gateway
// resource path segment.
type Entity string

const (
	Users      Entity = "users"
	Students   Entity = "students"
	Careers    Entity = "careers"
	Subjects   Entity = "subjects"
	Teachers   Entity = "teachers"
	Schedules  Entity = "schedules"
	Classrooms Entity = "classrooms"
	Groups     Entity = "groups"
)

// Entities lists every screen in menu order.
var Entities = []Entity{Users, Students, Careers, Subjects, Teachers, Schedules, Classrooms, Groups}

var titles = map[Entity]string{
	Users:      "Users",
	Students:   "Students",
	Careers:    "Careers",
	Subjects:   "Subjects",
	Teachers:   "Teachers",
	Schedules:  "Schedules",
	Classrooms: "Classrooms",
	Groups:     "Groups",
}

// Title returns the display name of the entity.
func (e Entity) Title() string {
	if t, ok := titles[e]; ok {
		return t
	}
	return string(e)
}

// ParseEntity resolves a resource name into an Entity.
func ParseEntity(name string) (Entity, bool) {
	for _, e := range Entities {
		if string(e) == name {
			return e, true
		}
	}
	return "", false
}

// Sections returns the screens shown in the main menu for role.
func Sections(role models.Role) []Entity {
	switch role {
	case models.RoleAdmin:
		out := make([]Entity, len(Entities))
		copy(out, Entities)
		return out
	case models.RoleTeacher:
		return []Entity{Teachers}
	case models.RoleStudent:
		return []Entity{Students}
	default:
		return nil
	}
}

// Capabilities is the permission set of one screen, computed once when the
// screen is built.
type Capabilities struct {
	Open        bool
	CanList     bool
	CanCreate   bool
	CanDelete   bool
	CanSearch   bool
	SelfService bool
	editable    map[string]struct{}
}

// CanEditField reports whether field may be changed. Full access leaves every
// field editable.
func (c Capabilities) CanEditField(field string) bool {
	if !c.Open {
		return false
	}
	if c.editable == nil {
		return true
	}
	_, ok := c.editable[field]
	return ok
}

// Editable returns the restricted field set, nil when every field is editable.
func (c Capabilities) Editable() []string {
	if c.editable == nil {
		return nil
	}
	out := make([]string, 0, len(c.editable))
	for f := range c.editable {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func full() Capabilities {
	return Capabilities{Open: true, CanList: true, CanCreate: true, CanDelete: true, CanSearch: true}
}

func self(fields ...string) Capabilities {
	editable := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		editable[f] = struct{}{}
	}
	return Capabilities{Open: true, SelfService: true, editable: editable}
}

// For computes the capabilities of role on the screen of entity.
func For(entity Entity, role models.Role) Capabilities {
	if role == models.RoleAdmin {
		return full()
	}
	switch {
	case entity == Teachers && role == models.RoleTeacher:
		return self("degree", "subjectIds")
	case entity == Students && role == models.RoleStudent:
		return self("subjects")
	case entity == Users && (role == models.RoleTeacher || role == models.RoleStudent):
		return self("username", "password")
	default:
		return Capabilities{}
	}
}
