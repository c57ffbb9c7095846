// Package stub is an in-memory implementation of the university gateway used
// for local development and integration tests of the client.
package stub

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Entity names accepted by the unassigned-users lookup.
const (
	EntityTeachers = "teachers"
	EntityStudents = "students"
)

// Store keeps every gateway record in memory. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	cost int
	seq  map[string]int64

	users      map[int64]account
	careers    map[int64]models.Career
	classrooms map[int64]models.Classroom
	schedules  map[int64]models.Schedule
	subjects   map[int64]models.Subject
	teachers   map[int64]teacherRecord
	students   map[int64]studentRecord
	groups     map[int64]groupRecord
}

type account struct {
	user models.User
	hash []byte
}

type teacherRecord struct {
	id       int64
	name     string
	degree   models.Degree
	userID   int64
	careers  []int64
	subjects []int64
}

type studentRecord struct {
	id          int64
	name        string
	status      models.StudentStatus
	dateOfBirth string
	careerID    int64
	userID      int64
	subjects    []int64
}

type groupRecord struct {
	id int64
	models.GroupPayload
}

// NewStore creates an empty store hashing passwords with the given bcrypt
// cost; zero selects bcrypt.DefaultCost.
func NewStore(cost int) *Store {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		cost:       cost,
		seq:        make(map[string]int64),
		users:      make(map[int64]account),
		careers:    make(map[int64]models.Career),
		classrooms: make(map[int64]models.Classroom),
		schedules:  make(map[int64]models.Schedule),
		subjects:   make(map[int64]models.Subject),
		teachers:   make(map[int64]teacherRecord),
		students:   make(map[int64]studentRecord),
		groups:     make(map[int64]groupRecord),
	}
}

func (s *Store) next(entity string) int64 {
	s.seq[entity]++
	return s.seq[entity]
}

// Authenticate checks credentials and returns the account.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.users {
		if !strings.EqualFold(acc.user.Username, strings.TrimSpace(username)) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
			break
		}
		return acc.user, nil
	}
	return models.User{}, appErrors.Clone(appErrors.ErrUnauthorized, "invalid username or password")
}

// Profile describes an account for the login response. Teachers and students
// are named after their linked record.
func (s *Store) Profile(user models.User) models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := user.Username
	for _, t := range s.teachers {
		if t.userID == user.ID {
			name = t.name
		}
	}
	for _, st := range s.students {
		if st.userID == user.ID {
			name = st.name
		}
	}
	return models.UserProfile{
		ID:       user.ID,
		Name:     name,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ListUsers returns every account ordered by id.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.User, 0, len(s.users))
	for _, acc := range sorted(s.users) {
		rows = append(rows, acc.user)
	}
	return rows
}

// GetUser returns account id.
func (s *Store) GetUser(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.users[id]
	if !ok {
		return models.User{}, notFound("user", id)
	}
	return acc.user, nil
}

// CreateUser adds an account. Email, password and role are mandatory.
func (s *Store) CreateUser(p models.UserPayload) (models.User, error) {
	var missing []string
	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		missing = append(missing, "email")
	}
	if p.Password == nil || *p.Password == "" {
		missing = append(missing, "password")
	}
	if p.Role == nil {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return models.User{}, missingFields(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), s.cost)
	if err != nil {
		return models.User{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		Email:    strings.TrimSpace(*p.Email),
		Username: strings.TrimSpace(p.Username),
		Role:     *p.Role,
	}
	if err := s.uniqueUser(0, user); err != nil {
		return models.User{}, err
	}
	user.ID = s.next("users")
	s.users[user.ID] = account{user: user, hash: hash}
	return user, nil
}

// UpdateUser changes account id. Self-service updates only touch the
// username and the password.
func (s *Store) UpdateUser(id int64, p models.UserPayload, self bool) (models.User, error) {
	var hash []byte
	if p.Password != nil && *p.Password != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(*p.Password), s.cost)
		if err != nil {
			return models.User{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[id]
	if !ok {
		return models.User{}, notFound("user", id)
	}
	user := acc.user
	user.Username = strings.TrimSpace(p.Username)
	if !self {
		if p.Email != nil {
			user.Email = strings.TrimSpace(*p.Email)
		}
		if p.Role != nil && *p.Role != user.Role {
			if s.linked(id) {
				return models.User{}, appErrors.Clone(appErrors.ErrConflict, "the role of an account linked to a profile cannot change")
			}
			user.Role = *p.Role
		}
	}
	if err := s.uniqueUser(id, user); err != nil {
		return models.User{}, err
	}
	acc.user = user
	if hash != nil {
		acc.hash = hash
	}
	s.users[id] = acc
	return user, nil
}

// DeleteUser removes account id unless a profile is linked to it.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return notFound("user", id)
	}
	if s.linked(id) {
		return appErrors.Clone(appErrors.ErrConflict, "the account is linked to a teacher or student profile")
	}
	delete(s.users, id)
	return nil
}

// Unassigned lists accounts of role that no record of entity is linked to.
func (s *Store) Unassigned(role models.Role, entity string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taken := make(map[int64]struct{})
	switch entity {
	case EntityTeachers:
		for _, t := range s.teachers {
			taken[t.userID] = struct{}{}
		}
	case EntityStudents:
		for _, st := range s.students {
			taken[st.userID] = struct{}{}
		}
	default:
		return nil, appErrors.Invalid(appErrors.ErrInvalidSelection, "entity", fmt.Sprintf("unknown entity %q", entity))
	}

	rows := []models.User{}
	for _, acc := range sorted(s.users) {
		if acc.user.Role != role {
			continue
		}
		if _, ok := taken[acc.user.ID]; ok {
			continue
		}
		rows = append(rows, acc.user)
	}
	return rows, nil
}

func (s *Store) uniqueUser(id int64, user models.User) error {
	for _, acc := range s.users {
		if acc.user.ID == id {
			continue
		}
		if strings.EqualFold(acc.user.Username, user.Username) {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("the username %q is already taken", user.Username))
		}
		if strings.EqualFold(acc.user.Email, user.Email) {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("the email %q is already registered", user.Email))
		}
	}
	return nil
}

func (s *Store) linked(userID int64) bool {
	for _, t := range s.teachers {
		if t.userID == userID {
			return true
		}
	}
	for _, st := range s.students {
		if st.userID == userID {
			return true
		}
	}
	return false
}

// checkAccount verifies that user id exists with role. Callers hold the lock.
func (s *Store) checkAccount(id int64, role models.Role) error {
	acc, ok := s.users[id]
	if !ok {
		return badReference("userId", "user", id)
	}
	if acc.user.Role != role {
		return appErrors.Invalid(appErrors.ErrInvalidSelection, "userId",
			fmt.Sprintf("user %d is not a %s account", id, strings.ToLower(string(role))))
	}
	return nil
}

func sorted[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, m[id])
	}
	return rows
}

func notFound(entity string, id int64) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %d not found", entity, id))
}

func badReference(field, entity string, id int64) error {
	return appErrors.Invalid(appErrors.ErrInvalidSelection, field, fmt.Sprintf("%s %d does not exist", entity, id))
}

func missingFields(fields ...string) error {
	return appErrors.Invalid(appErrors.ErrMissingField, strings.Join(fields, ","),
		fmt.Sprintf("required fields missing: %s", strings.Join(fields, ", ")))
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
