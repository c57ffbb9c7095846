package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/sigue-client/internal/models"
)

// Resource is a typed REST collection: rows of T, written with payloads of P.
type Resource[T any, P any] struct {
	client *Client
	path   string
}

// NewResource binds a collection path such as "/careers".
func NewResource[T any, P any](client *Client, path string) *Resource[T, P] {
	return &Resource[T, P]{client: client, path: path}
}

// Path returns the collection path.
func (r *Resource[T, P]) Path() string {
	return r.path
}

// List fetches the collection, optionally filtered by query.
func (r *Resource[T, P]) List(ctx context.Context, query url.Values) ([]T, error) {
	var rows []T
	if err := r.client.Do(ctx, http.MethodGet, r.path, query, nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// Get fetches the full detail record of id.
func (r *Resource[T, P]) Get(ctx context.Context, id int64) (T, error) {
	var row T
	err := r.client.Do(ctx, http.MethodGet, r.item(id), nil, nil, &row)
	return row, err
}

// Me fetches the caller's own record.
func (r *Resource[T, P]) Me(ctx context.Context) (T, error) {
	var row T
	err := r.client.Do(ctx, http.MethodGet, r.path+"/me", nil, nil, &row)
	return row, err
}

// Create posts a new record and returns the gateway's saved version.
func (r *Resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var row T
	err := r.client.Do(ctx, http.MethodPost, r.path, nil, payload, &row)
	return row, err
}

// Update replaces record id and returns the gateway's saved version.
func (r *Resource[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	var row T
	err := r.client.Do(ctx, http.MethodPut, r.item(id), nil, payload, &row)
	return row, err
}

// Delete removes record id.
func (r *Resource[T, P]) Delete(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, r.item(id), nil, nil, nil)
}

func (r *Resource[T, P]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// Users adds the unassigned-accounts lookup to the users collection.
type Users struct {
	*Resource[models.User, models.UserPayload]
}

// Unassigned lists accounts of role not yet linked to a record of entity,
// e.g. teacher accounts without a teacher profile.
func (u Users) Unassigned(ctx context.Context, role models.Role, entity string) ([]models.User, error) {
	query := url.Values{}
	query.Set("role", string(role))
	query.Set("entity", entity)

	var rows []models.User
	if err := u.client.Do(ctx, http.MethodGet, u.path+"/unassigned", query, nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.User{}
	}
	return rows, nil
}

// Resources groups every collection exposed by the gateway.
type Resources struct {
	Careers    *Resource[models.Career, models.CareerPayload]
	Classrooms *Resource[models.Classroom, models.ClassroomPayload]
	Schedules  *Resource[models.Schedule, models.SchedulePayload]
	Subjects   *Resource[models.Subject, models.SubjectPayload]
	Teachers   *Resource[models.Teacher, models.TeacherPayload]
	Students   *Resource[models.Student, models.StudentPayload]
	Users      Users
	Groups     *Resource[models.Group, models.GroupPayload]
}

// Bind creates the collections on top of client.
func Bind(client *Client) *Resources {
	return &Resources{
		Careers:    NewResource[models.Career, models.CareerPayload](client, "/careers"),
		Classrooms: NewResource[models.Classroom, models.ClassroomPayload](client, "/classrooms"),
		Schedules:  NewResource[models.Schedule, models.SchedulePayload](client, "/schedules"),
		Subjects:   NewResource[models.Subject, models.SubjectPayload](client, "/subjects"),
		Teachers:   NewResource[models.Teacher, models.TeacherPayload](client, "/teachers"),
		Students:   NewResource[models.Student, models.StudentPayload](client, "/students"),
		Users:      Users{NewResource[models.User, models.UserPayload](client, "/users")},
		Groups:     NewResource[models.Group, models.GroupPayload](client, "/groups"),
	}
}
