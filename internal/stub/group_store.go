package stub

import (
	"fmt"
	"strings"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// ListGroups returns group rows with denormalised names.
func (s *Store) ListGroups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Group, 0, len(s.groups))
	for _, g := range sorted(s.groups) {
		rows = append(rows, s.groupRow(g))
	}
	return rows
}

// GetGroup returns the detail record of group id with its enrolled students.
func (s *Store) GetGroup(id int64) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return models.Group{}, notFound("group", id)
	}
	return s.groupDetail(g), nil
}

// CreateGroup adds a group after checking its references and clashes.
func (s *Store) CreateGroup(p models.GroupPayload) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := groupRecord{GroupPayload: p}
	g.Name = strings.TrimSpace(g.Name)
	if err := s.checkGroup(g); err != nil {
		return models.Group{}, err
	}
	g.id = s.next("groups")
	s.groups[g.id] = g
	return s.groupRow(g), nil
}

// UpdateGroup replaces group id.
func (s *Store) UpdateGroup(id int64, p models.GroupPayload) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[id]; !ok {
		return models.Group{}, notFound("group", id)
	}
	g := groupRecord{id: id, GroupPayload: p}
	g.Name = strings.TrimSpace(g.Name)
	if err := s.checkGroup(g); err != nil {
		return models.Group{}, err
	}
	s.groups[id] = g
	return s.groupRow(g), nil
}

// DeleteGroup removes group id.
func (s *Store) DeleteGroup(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[id]; !ok {
		return notFound("group", id)
	}
	delete(s.groups, id)
	return nil
}

func (s *Store) checkGroup(g groupRecord) error {
	career, ok := s.careers[g.CareerID]
	if !ok {
		return badReference("careerId", "career", g.CareerID)
	}
	subject, ok := s.subjects[g.SubjectID]
	if !ok {
		return badReference("subjectId", "subject", g.SubjectID)
	}
	if subject.CareerID != g.CareerID {
		return appErrors.Invalid(appErrors.ErrInvalidSelection, "subjectId",
			fmt.Sprintf("the subject %q is not part of %s", subject.Name, career.Name))
	}
	if _, ok := s.teachers[g.TeacherID]; !ok {
		return badReference("teacherId", "teacher", g.TeacherID)
	}
	classroom, ok := s.classrooms[g.ClassroomID]
	if !ok {
		return badReference("classroomId", "classroom", g.ClassroomID)
	}
	schedule, ok := s.schedules[g.ScheduleID]
	if !ok {
		return badReference("scheduleId", "schedule", g.ScheduleID)
	}
	if g.Semester > career.Semesters {
		return appErrors.Invalid(appErrors.ErrInvalidNumber, "semester",
			fmt.Sprintf("%s has %d semesters", career.Name, career.Semesters))
	}

	for _, other := range s.groups {
		if other.id == g.id {
			continue
		}
		if sameText(other.Name, g.Name) {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("a group named %q already exists", g.Name))
		}
		if other.ScheduleID != g.ScheduleID {
			continue
		}
		if other.ClassroomID == g.ClassroomID {
			return appErrors.Clone(appErrors.ErrDuplicate,
				fmt.Sprintf("classroom %s is already booked at %s (%s)", classroom.Name, schedule.Time, schedule.Shift))
		}
		if other.TeacherID == g.TeacherID {
			return appErrors.Clone(appErrors.ErrDuplicate,
				fmt.Sprintf("the teacher already has group %q at %s (%s)", other.Name, schedule.Time, schedule.Shift))
		}
	}
	return nil
}

func (s *Store) groupRow(g groupRecord) models.Group {
	return models.Group{
		ID:            g.id,
		Name:          g.Name,
		CareerID:      g.CareerID,
		CareerName:    s.careers[g.CareerID].Name,
		SubjectID:     g.SubjectID,
		SubjectName:   s.subjects[g.SubjectID].Name,
		TeacherID:     g.TeacherID,
		TeacherName:   s.teachers[g.TeacherID].name,
		ClassroomID:   g.ClassroomID,
		ClassroomName: s.classrooms[g.ClassroomID].Name,
		ScheduleID:    g.ScheduleID,
		ScheduleTime:  s.schedules[g.ScheduleID].Time,
		Semester:      g.Semester,
		MaxStudents:   g.MaxStudents,
	}
}

// groupDetail adds the enrolled students: those of the group's career taking
// its subject, in id order up to the group's capacity.
func (s *Store) groupDetail(g groupRecord) models.Group {
	row := s.groupRow(g)
	row.Students = []models.GroupStudent{}
	for _, st := range sorted(s.students) {
		if len(row.Students) >= g.MaxStudents {
			break
		}
		if st.careerID != g.CareerID || !contains(st.subjects, g.SubjectID) {
			continue
		}
		row.Students = append(row.Students, models.GroupStudent{
			StudentID: st.id,
			Name:      st.name,
			Email:     s.users[st.userID].user.Email,
			Status:    st.status,
		})
	}
	return row
}
