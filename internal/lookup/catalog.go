package lookup

import (
	"context"
	"net/url"
	"strconv"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/gateway"
	"github.com/noah-isme/sigue-client/internal/models"
)

// Source fetches support lists from the gateway.
type Source interface {
	Careers(ctx context.Context) ([]models.Career, error)
	Subjects(ctx context.Context, careerID int64) ([]models.Subject, error)
	Teachers(ctx context.Context) ([]models.Teacher, error)
	Classrooms(ctx context.Context) ([]models.Classroom, error)
	Schedules(ctx context.Context) ([]models.Schedule, error)
	Unassigned(ctx context.Context, role models.Role, entity string) ([]models.User, error)
}

type gatewaySource struct {
	api *gateway.Resources
}

// FromGateway adapts the gateway collections into a Source.
func FromGateway(api *gateway.Resources) Source {
	return gatewaySource{api: api}
}

func (g gatewaySource) Careers(ctx context.Context) ([]models.Career, error) {
	return g.api.Careers.List(ctx, nil)
}

// Subjects lists every subject when careerID is zero.
func (g gatewaySource) Subjects(ctx context.Context, careerID int64) ([]models.Subject, error) {
	var query url.Values
	if careerID > 0 {
		query = url.Values{"careerId": {strconv.FormatInt(careerID, 10)}}
	}
	return g.api.Subjects.List(ctx, query)
}

func (g gatewaySource) Teachers(ctx context.Context) ([]models.Teacher, error) {
	return g.api.Teachers.List(ctx, nil)
}

func (g gatewaySource) Classrooms(ctx context.Context) ([]models.Classroom, error) {
	return g.api.Classrooms.List(ctx, nil)
}

func (g gatewaySource) Schedules(ctx context.Context) ([]models.Schedule, error) {
	return g.api.Schedules.List(ctx, nil)
}

func (g gatewaySource) Unassigned(ctx context.Context, role models.Role, entity string) ([]models.User, error) {
	return g.api.Users.Unassigned(ctx, role, entity)
}

// Catalog serves form choices as composite "id - label" options. Subject
// lists are cached in the screen's scope; everything else is fetched fresh.
type Catalog struct {
	source Source
	scope  *Scope
}

// NewCatalog builds a catalog. A nil scope disables caching.
func NewCatalog(source Source, scope *Scope) *Catalog {
	return &Catalog{source: source, scope: scope}
}

// Close drops the screen's cached lists.
func (c *Catalog) Close(ctx context.Context) error {
	return c.scope.Invalidate(ctx)
}

// Careers lists every career.
func (c *Catalog) Careers(ctx context.Context) ([]models.Career, error) {
	return c.source.Careers(ctx)
}

// SubjectsByCareer lists the subjects of one career, cached per career.
func (c *Catalog) SubjectsByCareer(ctx context.Context, careerID int64) ([]models.Subject, error) {
	return Remember(ctx, c.scope, "subjects:career:"+strconv.FormatInt(careerID, 10), func(ctx context.Context) ([]models.Subject, error) {
		return c.source.Subjects(ctx, careerID)
	})
}

// AllSubjects lists every subject, cached.
func (c *Catalog) AllSubjects(ctx context.Context) ([]models.Subject, error) {
	return Remember(ctx, c.scope, "subjects:all", func(ctx context.Context) ([]models.Subject, error) {
		return c.source.Subjects(ctx, 0)
	})
}

// CareerOptions renders the career choices.
func (c *Catalog) CareerOptions(ctx context.Context) ([]string, error) {
	rows, err := c.source.Careers(ctx)
	if err != nil {
		return nil, err
	}
	return labels(rows, CareerLabel), nil
}

// TeacherOptions renders the teacher choices.
func (c *Catalog) TeacherOptions(ctx context.Context) ([]string, error) {
	rows, err := c.source.Teachers(ctx)
	if err != nil {
		return nil, err
	}
	return labels(rows, TeacherLabel), nil
}

// ClassroomOptions renders the classroom choices.
func (c *Catalog) ClassroomOptions(ctx context.Context) ([]string, error) {
	rows, err := c.source.Classrooms(ctx)
	if err != nil {
		return nil, err
	}
	return labels(rows, ClassroomLabel), nil
}

// ScheduleOptions renders the schedule choices.
func (c *Catalog) ScheduleOptions(ctx context.Context) ([]string, error) {
	rows, err := c.source.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	return labels(rows, ScheduleLabel), nil
}

// UserOptions renders the accounts of role still free for entity.
func (c *Catalog) UserOptions(ctx context.Context, role models.Role, entity string) ([]string, error) {
	rows, err := c.source.Unassigned(ctx, role, entity)
	if err != nil {
		return nil, err
	}
	return labels(rows, UserLabel), nil
}

// SubjectOptions renders the subjects of a career.
func (c *Catalog) SubjectOptions(ctx context.Context, careerID int64) ([]string, error) {
	rows, err := c.SubjectsByCareer(ctx, careerID)
	if err != nil {
		return nil, err
	}
	return labels(rows, SubjectLabel), nil
}

// Cascade is the subject choice derived from a career choice.
type Cascade struct {
	Options []string
	Subject string
}

// CascadeSubjects recomputes the subject options after the career choice
// changed. The current subject is kept when the new career still offers it
// and cleared otherwise.
func (c *Catalog) CascadeSubjects(ctx context.Context, careerValue, currentSubject string) (Cascade, error) {
	careerID, ok := form.ParseSelection(careerValue)
	if !ok {
		return Cascade{Options: []string{}}, nil
	}
	rows, err := c.SubjectsByCareer(ctx, careerID)
	if err != nil {
		return Cascade{Options: []string{}}, err
	}

	out := Cascade{Options: labels(rows, SubjectLabel)}
	if subjectID, ok := form.ParseSelection(currentSubject); ok {
		for _, s := range rows {
			if s.ID == subjectID {
				out.Subject = SubjectLabel(s)
				break
			}
		}
	}
	return out, nil
}

// TeacherSubjectOptions renders the subjects a teacher may pick: those of the
// selected careers, or every subject when no career is selected.
func (c *Catalog) TeacherSubjectOptions(ctx context.Context, careerIDs []int64) ([]string, error) {
	careers, err := c.source.Careers(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := c.AllSubjects(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(careers))
	for _, career := range careers {
		names[career.ID] = career.Name
	}
	selected := make(map[int64]struct{}, len(careerIDs))
	for _, id := range careerIDs {
		selected[id] = struct{}{}
	}

	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if len(selected) > 0 {
			if _, ok := selected[s.CareerID]; !ok {
				continue
			}
		}
		out = append(out, CareerSubjectLabel(s, names[s.CareerID]))
	}
	return out, nil
}
