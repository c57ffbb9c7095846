package stub

import (
	"fmt"
	"strings"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// ListTeachers returns teacher rows without their relations.
func (s *Store) ListTeachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range sorted(s.teachers) {
		rows = append(rows, s.teacherRow(t))
	}
	return rows
}

// GetTeacher returns the detail record of teacher id.
func (s *Store) GetTeacher(id int64) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teachers[id]
	if !ok {
		return models.Teacher{}, notFound("teacher", id)
	}
	return s.teacherDetail(t), nil
}

// TeacherByUser returns the teacher profile linked to account userID.
func (s *Store) TeacherByUser(userID int64) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teachers {
		if t.userID == userID {
			return s.teacherDetail(t), nil
		}
	}
	return models.Teacher{}, appErrors.Clone(appErrors.ErrNotFound, "no teacher profile is linked to this account")
}

// CreateTeacher links a new teacher profile to an unassigned teacher account.
func (s *Store) CreateTeacher(p models.TeacherPayload) (models.Teacher, error) {
	var missing []string
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		missing = append(missing, "name")
	}
	if p.UserID == nil || *p.UserID <= 0 {
		missing = append(missing, "userId")
	}
	if len(missing) > 0 {
		return models.Teacher{}, missingFields(missing...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := teacherRecord{name: strings.TrimSpace(*p.Name), degree: p.Degree}
	if err := s.linkTeacher(&t, *p.UserID); err != nil {
		return models.Teacher{}, err
	}
	if p.CareerIDs != nil {
		t.careers = *p.CareerIDs
	}
	t.subjects = p.SubjectIDs
	if err := s.checkTeacherRelations(t); err != nil {
		return models.Teacher{}, err
	}
	t.id = s.next("teachers")
	s.teachers[t.id] = t
	return s.teacherDetail(t), nil
}

// UpdateTeacher changes teacher id. Self-service updates only touch the
// degree and the subjects.
func (s *Store) UpdateTeacher(id int64, p models.TeacherPayload, self bool) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teachers[id]
	if !ok {
		return models.Teacher{}, notFound("teacher", id)
	}
	t.degree = p.Degree
	t.subjects = p.SubjectIDs
	if !self {
		if p.Name != nil {
			t.name = strings.TrimSpace(*p.Name)
		}
		if p.UserID != nil && *p.UserID != t.userID {
			if err := s.linkTeacher(&t, *p.UserID); err != nil {
				return models.Teacher{}, err
			}
		}
		if p.CareerIDs != nil {
			t.careers = *p.CareerIDs
		}
	}
	if err := s.checkTeacherRelations(t); err != nil {
		return models.Teacher{}, err
	}
	s.teachers[id] = t
	return s.teacherDetail(t), nil
}

// DeleteTeacher removes teacher id unless a group is assigned to them.
func (s *Store) DeleteTeacher(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teachers[id]; !ok {
		return notFound("teacher", id)
	}
	for _, g := range s.groups {
		if g.TeacherID == id {
			return inUse("teacher", "groups")
		}
	}
	delete(s.teachers, id)
	return nil
}

// OwnsTeacher reports whether account userID is linked to teacher id.
func (s *Store) OwnsTeacher(userID, id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[id]
	return ok && t.userID == userID
}

func (s *Store) linkTeacher(t *teacherRecord, userID int64) error {
	if err := s.checkAccount(userID, models.RoleTeacher); err != nil {
		return err
	}
	for _, other := range s.teachers {
		if other.id != t.id && other.userID == userID {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("user %d already has a teacher profile", userID))
		}
	}
	t.userID = userID
	return nil
}

func (s *Store) checkTeacherRelations(t teacherRecord) error {
	for _, id := range t.careers {
		if _, ok := s.careers[id]; !ok {
			return badReference("careerIds", "career", id)
		}
	}
	for _, id := range t.subjects {
		if _, ok := s.subjects[id]; !ok {
			return badReference("subjectIds", "subject", id)
		}
	}
	return nil
}

func (s *Store) teacherRow(t teacherRecord) models.Teacher {
	return models.Teacher{
		ID:     t.id,
		Name:   t.name,
		Email:  s.users[t.userID].user.Email,
		Degree: t.degree,
		UserID: t.userID,
	}
}

func (s *Store) teacherDetail(t teacherRecord) models.Teacher {
	row := s.teacherRow(t)
	row.Careers = make([]models.CareerRef, 0, len(t.careers))
	for _, id := range t.careers {
		row.Careers = append(row.Careers, models.CareerRef{CareerID: id, Name: s.careers[id].Name})
	}
	row.Subjects = s.subjectRefs(t.subjects)
	return row
}

// ListStudents returns student rows without their subjects.
func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Student, 0, len(s.students))
	for _, st := range sorted(s.students) {
		rows = append(rows, s.studentRow(st))
	}
	return rows
}

// GetStudent returns the detail record of student id.
func (s *Store) GetStudent(id int64) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return models.Student{}, notFound("student", id)
	}
	return s.studentDetail(st), nil
}

// StudentByUser returns the student profile linked to account userID.
func (s *Store) StudentByUser(userID int64) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.userID == userID {
			return s.studentDetail(st), nil
		}
	}
	return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "no student profile is linked to this account")
}

// CreateStudent links a new student profile to an unassigned student account.
func (s *Store) CreateStudent(p models.StudentPayload) (models.Student, error) {
	var missing []string
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		missing = append(missing, "name")
	}
	if p.UserID == nil || *p.UserID <= 0 {
		missing = append(missing, "userId")
	}
	if p.CareerID == nil || *p.CareerID <= 0 {
		missing = append(missing, "careerId")
	}
	if len(missing) > 0 {
		return models.Student{}, missingFields(missing...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := studentRecord{
		name:     strings.TrimSpace(*p.Name),
		status:   models.StudentActive,
		careerID: *p.CareerID,
		subjects: p.Subjects,
	}
	if p.Status != nil {
		st.status = *p.Status
	}
	if p.DateOfBirth != nil {
		st.dateOfBirth = *p.DateOfBirth
	}
	if err := s.linkStudent(&st, *p.UserID); err != nil {
		return models.Student{}, err
	}
	if err := s.checkStudentRelations(st); err != nil {
		return models.Student{}, err
	}
	st.id = s.next("students")
	s.students[st.id] = st
	return s.studentDetail(st), nil
}

// UpdateStudent changes student id. Self-service updates only touch the
// subject enrolment.
func (s *Store) UpdateStudent(id int64, p models.StudentPayload, self bool) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[id]
	if !ok {
		return models.Student{}, notFound("student", id)
	}
	st.subjects = p.Subjects
	if !self {
		if p.Name != nil {
			st.name = strings.TrimSpace(*p.Name)
		}
		if p.Status != nil {
			st.status = *p.Status
		}
		if p.DateOfBirth != nil {
			st.dateOfBirth = *p.DateOfBirth
		}
		if p.CareerID != nil && *p.CareerID > 0 {
			st.careerID = *p.CareerID
		}
		if p.UserID != nil && *p.UserID != st.userID {
			if err := s.linkStudent(&st, *p.UserID); err != nil {
				return models.Student{}, err
			}
		}
	}
	if err := s.checkStudentRelations(st); err != nil {
		return models.Student{}, err
	}
	s.students[id] = st
	return s.studentDetail(st), nil
}

// DeleteStudent removes student id.
func (s *Store) DeleteStudent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return notFound("student", id)
	}
	delete(s.students, id)
	return nil
}

// OwnsStudent reports whether account userID is linked to student id.
func (s *Store) OwnsStudent(userID, id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	return ok && st.userID == userID
}

func (s *Store) linkStudent(st *studentRecord, userID int64) error {
	if err := s.checkAccount(userID, models.RoleStudent); err != nil {
		return err
	}
	for _, other := range s.students {
		if other.id != st.id && other.userID == userID {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("user %d already has a student profile", userID))
		}
	}
	st.userID = userID
	return nil
}

// checkStudentRelations requires every enrolled subject to belong to the
// student's career.
func (s *Store) checkStudentRelations(st studentRecord) error {
	if _, ok := s.careers[st.careerID]; !ok {
		return badReference("careerId", "career", st.careerID)
	}
	for _, id := range st.subjects {
		sub, ok := s.subjects[id]
		if !ok {
			return badReference("subjects", "subject", id)
		}
		if sub.CareerID != st.careerID {
			return appErrors.Invalid(appErrors.ErrInvalidSelection, "subjects",
				fmt.Sprintf("the subject %q is not part of the student's career", sub.Name))
		}
	}
	return nil
}

func (s *Store) studentRow(st studentRecord) models.Student {
	return models.Student{
		ID:          st.id,
		Name:        st.name,
		Email:       s.users[st.userID].user.Email,
		Status:      st.status,
		DateOfBirth: st.dateOfBirth,
		CareerID:    st.careerID,
		UserID:      st.userID,
	}
}

func (s *Store) studentDetail(st studentRecord) models.Student {
	row := s.studentRow(st)
	row.Subjects = s.subjectRefs(st.subjects)
	return row
}

func (s *Store) subjectRefs(ids []int64) []models.SubjectRef {
	refs := make([]models.SubjectRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.SubjectRef{SubjectID: id, Name: s.subjects[id].Name})
	}
	return refs
}
