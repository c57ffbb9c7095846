// Package dedupe scans the rows already loaded by a screen for records whose
// natural key collides with a candidate payload. The gateway stays the
// authority on uniqueness; this check only saves a round trip.
package dedupe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Detector reports a duplicate of candidate among rows, or nil.
type Detector[T any, P any] func(rows []T, candidate P, current models.Identity) error

// By builds a Detector comparing the natural keys produced by rowKey and
// payloadKey. Key parts are compared case-insensitively after trimming. A
// collision counts when creating, or when it hits a row other than the one
// being edited.
func By[T any, P any](rowID func(T) int64, rowKey func(T) []string, payloadKey func(P) []string, describe func(P) string) Detector[T, P] {
	return func(rows []T, candidate P, current models.Identity) error {
		want := payloadKey(candidate)
		for _, row := range rows {
			if !sameKey(rowKey(row), want) {
				continue
			}
			if current.Is(rowID(row)) {
				continue
			}
			return appErrors.Clone(appErrors.ErrDuplicate, describe(candidate))
		}
		return nil
	}
}

func sameKey(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), strings.TrimSpace(b[i])) {
			return false
		}
	}
	return true
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Careers rejects a career whose name is already taken.
var Careers = By(
	func(c models.Career) int64 { return c.ID },
	func(c models.Career) []string { return []string{c.Name} },
	func(p models.CareerPayload) []string { return []string{p.Name} },
	func(p models.CareerPayload) string {
		return fmt.Sprintf("a career named %q already exists", p.Name)
	},
)

// Classrooms rejects a classroom whose name is already used in the same building.
var Classrooms = By(
	func(c models.Classroom) int64 { return c.ID },
	func(c models.Classroom) []string { return []string{c.Name, c.Building} },
	func(p models.ClassroomPayload) []string { return []string{p.Name, p.Building} },
	func(p models.ClassroomPayload) string {
		return fmt.Sprintf("classroom %q already exists in building %q", p.Name, p.Building)
	},
)

// Subjects rejects a subject whose name is already used within the same career.
var Subjects = By(
	func(s models.Subject) int64 { return s.ID },
	func(s models.Subject) []string { return []string{s.Name, id(s.CareerID)} },
	func(p models.SubjectPayload) []string { return []string{p.Name, id(p.CareerID)} },
	func(p models.SubjectPayload) string {
		return fmt.Sprintf("subject %q already exists in this career", p.Name)
	},
)
