package stub

import (
	"fmt"
	"strings"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// ListCareers returns every career ordered by id.
func (s *Store) ListCareers() []models.Career {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.careers)
}

// GetCareer returns career id.
func (s *Store) GetCareer(id int64) (models.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.careers[id]
	if !ok {
		return models.Career{}, notFound("career", id)
	}
	return c, nil
}

// CreateCareer adds a career with a unique name.
func (s *Store) CreateCareer(p models.CareerPayload) (models.Career, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Career{Name: strings.TrimSpace(p.Name), Semesters: p.Semesters}
	if err := s.uniqueCareer(0, c.Name); err != nil {
		return models.Career{}, err
	}
	c.ID = s.next("careers")
	s.careers[c.ID] = c
	return c, nil
}

// UpdateCareer replaces career id.
func (s *Store) UpdateCareer(id int64, p models.CareerPayload) (models.Career, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.careers[id]; !ok {
		return models.Career{}, notFound("career", id)
	}
	c := models.Career{ID: id, Name: strings.TrimSpace(p.Name), Semesters: p.Semesters}
	if err := s.uniqueCareer(id, c.Name); err != nil {
		return models.Career{}, err
	}
	s.careers[id] = c
	return c, nil
}

// DeleteCareer removes career id unless other records reference it.
func (s *Store) DeleteCareer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.careers[id]; !ok {
		return notFound("career", id)
	}
	for _, sub := range s.subjects {
		if sub.CareerID == id {
			return inUse("career", "subjects")
		}
	}
	for _, st := range s.students {
		if st.careerID == id {
			return inUse("career", "students")
		}
	}
	for _, t := range s.teachers {
		if contains(t.careers, id) {
			return inUse("career", "teachers")
		}
	}
	for _, g := range s.groups {
		if g.CareerID == id {
			return inUse("career", "groups")
		}
	}
	delete(s.careers, id)
	return nil
}

func (s *Store) uniqueCareer(id int64, name string) error {
	for _, c := range s.careers {
		if c.ID != id && sameText(c.Name, name) {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("a career named %q already exists", name))
		}
	}
	return nil
}

// ListClassrooms returns every classroom ordered by id.
func (s *Store) ListClassrooms() []models.Classroom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.classrooms)
}

// GetClassroom returns classroom id.
func (s *Store) GetClassroom(id int64) (models.Classroom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.classrooms[id]
	if !ok {
		return models.Classroom{}, notFound("classroom", id)
	}
	return c, nil
}

// CreateClassroom adds a classroom; the name is unique within its building.
func (s *Store) CreateClassroom(p models.ClassroomPayload) (models.Classroom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Classroom{Name: strings.TrimSpace(p.Name), Building: strings.TrimSpace(p.Building)}
	if err := s.uniqueClassroom(0, c); err != nil {
		return models.Classroom{}, err
	}
	c.ID = s.next("classrooms")
	s.classrooms[c.ID] = c
	return c, nil
}

// UpdateClassroom replaces classroom id.
func (s *Store) UpdateClassroom(id int64, p models.ClassroomPayload) (models.Classroom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classrooms[id]; !ok {
		return models.Classroom{}, notFound("classroom", id)
	}
	c := models.Classroom{ID: id, Name: strings.TrimSpace(p.Name), Building: strings.TrimSpace(p.Building)}
	if err := s.uniqueClassroom(id, c); err != nil {
		return models.Classroom{}, err
	}
	s.classrooms[id] = c
	return c, nil
}

// DeleteClassroom removes classroom id unless a group meets there.
func (s *Store) DeleteClassroom(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classrooms[id]; !ok {
		return notFound("classroom", id)
	}
	for _, g := range s.groups {
		if g.ClassroomID == id {
			return inUse("classroom", "groups")
		}
	}
	delete(s.classrooms, id)
	return nil
}

func (s *Store) uniqueClassroom(id int64, c models.Classroom) error {
	for _, existing := range s.classrooms {
		if existing.ID != id && sameText(existing.Name, c.Name) && sameText(existing.Building, c.Building) {
			return appErrors.Clone(appErrors.ErrDuplicate,
				fmt.Sprintf("classroom %q already exists in building %q", c.Name, c.Building))
		}
	}
	return nil
}

// ListSchedules returns every schedule ordered by id.
func (s *Store) ListSchedules() []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.schedules)
}

// GetSchedule returns schedule id.
func (s *Store) GetSchedule(id int64) (models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.schedules[id]
	if !ok {
		return models.Schedule{}, notFound("schedule", id)
	}
	return sc, nil
}

// CreateSchedule adds a schedule; a time exists once per shift.
func (s *Store) CreateSchedule(p models.SchedulePayload) (models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := models.Schedule{Time: p.Time, Shift: p.Shift}
	if err := s.uniqueSchedule(0, sc); err != nil {
		return models.Schedule{}, err
	}
	sc.ID = s.next("schedules")
	s.schedules[sc.ID] = sc
	return sc, nil
}

// UpdateSchedule replaces schedule id.
func (s *Store) UpdateSchedule(id int64, p models.SchedulePayload) (models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return models.Schedule{}, notFound("schedule", id)
	}
	sc := models.Schedule{ID: id, Time: p.Time, Shift: p.Shift}
	if err := s.uniqueSchedule(id, sc); err != nil {
		return models.Schedule{}, err
	}
	s.schedules[id] = sc
	return sc, nil
}

// DeleteSchedule removes schedule id unless a group uses it.
func (s *Store) DeleteSchedule(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return notFound("schedule", id)
	}
	for _, g := range s.groups {
		if g.ScheduleID == id {
			return inUse("schedule", "groups")
		}
	}
	delete(s.schedules, id)
	return nil
}

func (s *Store) uniqueSchedule(id int64, sc models.Schedule) error {
	for _, existing := range s.schedules {
		if existing.ID != id && existing.Time == sc.Time && existing.Shift == sc.Shift {
			return appErrors.Clone(appErrors.ErrDuplicate,
				fmt.Sprintf("the schedule %s (%s) already exists", sc.Time, sc.Shift))
		}
	}
	return nil
}

// ListSubjects returns the subjects of careerID, or all of them when
// careerID is zero.
func (s *Store) ListSubjects(careerID int64) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []models.Subject{}
	for _, sub := range sorted(s.subjects) {
		if careerID == 0 || sub.CareerID == careerID {
			rows = append(rows, sub)
		}
	}
	return rows
}

// GetSubject returns subject id.
func (s *Store) GetSubject(id int64) (models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subjects[id]
	if !ok {
		return models.Subject{}, notFound("subject", id)
	}
	return sub, nil
}

// CreateSubject adds a subject; the name is unique within its career.
func (s *Store) CreateSubject(p models.SubjectPayload) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.Subject{Name: strings.TrimSpace(p.Name), Credits: p.Credits, Semester: p.Semester, CareerID: p.CareerID}
	if err := s.checkSubject(0, sub); err != nil {
		return models.Subject{}, err
	}
	sub.ID = s.next("subjects")
	s.subjects[sub.ID] = sub
	return sub, nil
}

// UpdateSubject replaces subject id.
func (s *Store) UpdateSubject(id int64, p models.SubjectPayload) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[id]; !ok {
		return models.Subject{}, notFound("subject", id)
	}
	sub := models.Subject{ID: id, Name: strings.TrimSpace(p.Name), Credits: p.Credits, Semester: p.Semester, CareerID: p.CareerID}
	if err := s.checkSubject(id, sub); err != nil {
		return models.Subject{}, err
	}
	s.subjects[id] = sub
	return sub, nil
}

// DeleteSubject removes subject id unless a group teaches it. Teacher and
// student enrolments in the subject are dropped.
func (s *Store) DeleteSubject(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[id]; !ok {
		return notFound("subject", id)
	}
	for _, g := range s.groups {
		if g.SubjectID == id {
			return inUse("subject", "groups")
		}
	}
	for tid, t := range s.teachers {
		t.subjects = without(t.subjects, id)
		s.teachers[tid] = t
	}
	for sid, st := range s.students {
		st.subjects = without(st.subjects, id)
		s.students[sid] = st
	}
	delete(s.subjects, id)
	return nil
}

func (s *Store) checkSubject(id int64, sub models.Subject) error {
	career, ok := s.careers[sub.CareerID]
	if !ok {
		return badReference("careerId", "career", sub.CareerID)
	}
	if sub.Semester > career.Semesters {
		return appErrors.Invalid(appErrors.ErrInvalidNumber, "semester",
			fmt.Sprintf("%s has %d semesters", career.Name, career.Semesters))
	}
	for _, existing := range s.subjects {
		if existing.ID != id && existing.CareerID == sub.CareerID && sameText(existing.Name, sub.Name) {
			return appErrors.Clone(appErrors.ErrDuplicate,
				fmt.Sprintf("the subject %q already exists in %s", sub.Name, career.Name))
		}
	}
	return nil
}

func inUse(entity, by string) error {
	return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("the %s is still referenced by %s", entity, by))
}

func without(ids []int64, id int64) []int64 {
	kept := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
