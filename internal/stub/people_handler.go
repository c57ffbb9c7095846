package stub

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sigue-client/internal/middleware"
	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/response"
)

// ownership decides whether the caller may reach record id: administrators
// always, owners in self-service mode.
func ownership(c *gin.Context, id int64, owns func(userID, id int64) bool) (self bool, ok bool) {
	if isAdmin(c) {
		return false, true
	}
	claims := middleware.Claims(c)
	if claims != nil && owns(claims.UserID, id) {
		return true, true
	}
	response.Error(c, appErrors.ErrForbidden)
	return false, false
}

// ListTeachers godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Success 200 {array} models.Teacher
// @Router /teachers [get]
func (h *Handler) ListTeachers(c *gin.Context) {
	response.OK(c, h.store.ListTeachers())
}

// TeacherMe godoc
// @Summary Get the caller's teacher profile
// @Tags Teachers
// @Produce json
// @Success 200 {object} models.Teacher
// @Failure 404 {object} response.Envelope
// @Router /teachers/me [get]
func (h *Handler) TeacherMe(c *gin.Context) {
	teacher, err := h.store.TeacherByUser(middleware.Claims(c).UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teacher)
}

// GetTeacher godoc
// @Summary Get teacher with careers and subjects
// @Tags Teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Router /teachers/{id} [get]
func (h *Handler) GetTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := ownership(c, id, h.store.OwnsTeacher); !ok {
		return
	}
	teacher, err := h.store.GetTeacher(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teacher)
}

// CreateTeacher godoc
// @Summary Create teacher profile
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body models.TeacherPayload true "Teacher payload"
// @Success 201 {object} models.Teacher
// @Router /teachers [post]
func (h *Handler) CreateTeacher(c *gin.Context) {
	create(h, c, "teachers", h.store.CreateTeacher)
}

// UpdateTeacher godoc
// @Summary Update teacher; teachers may change their own degree and subjects
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param payload body models.TeacherPayload true "Teacher payload"
// @Success 200 {object} models.Teacher
// @Router /teachers/{id} [put]
func (h *Handler) UpdateTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	self, ok := ownership(c, id, h.store.OwnsTeacher)
	if !ok {
		return
	}
	var payload models.TeacherPayload
	if !h.bind(c, &payload) {
		return
	}
	teacher, err := h.store.UpdateTeacher(id, payload, self)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveWrite("teachers", "update")
	response.OK(c, teacher)
}

// DeleteTeacher godoc
// @Summary Delete teacher
// @Tags Teachers
// @Param id path int true "Teacher ID"
// @Success 204
// @Router /teachers/{id} [delete]
func (h *Handler) DeleteTeacher(c *gin.Context) {
	remove(h, c, "teachers", h.store.DeleteTeacher)
}

// ListStudents godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	response.OK(c, h.store.ListStudents())
}

// StudentMe godoc
// @Summary Get the caller's student profile
// @Tags Students
// @Produce json
// @Success 200 {object} models.Student
// @Failure 404 {object} response.Envelope
// @Router /students/me [get]
func (h *Handler) StudentMe(c *gin.Context) {
	student, err := h.store.StudentByUser(middleware.Claims(c).UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// GetStudent godoc
// @Summary Get student with enrolled subjects
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Router /students/{id} [get]
func (h *Handler) GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := ownership(c, id, h.store.OwnsStudent); !ok {
		return
	}
	student, err := h.store.GetStudent(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// CreateStudent godoc
// @Summary Create student profile
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.StudentPayload true "Student payload"
// @Success 201 {object} models.Student
// @Router /students [post]
func (h *Handler) CreateStudent(c *gin.Context) {
	create(h, c, "students", h.store.CreateStudent)
}

// UpdateStudent godoc
// @Summary Update student; students may change their own subjects
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body models.StudentPayload true "Student payload"
// @Success 200 {object} models.Student
// @Router /students/{id} [put]
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	self, ok := ownership(c, id, h.store.OwnsStudent)
	if !ok {
		return
	}
	var payload models.StudentPayload
	if !h.bind(c, &payload) {
		return
	}
	student, err := h.store.UpdateStudent(id, payload, self)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveWrite("students", "update")
	response.OK(c, student)
}

// DeleteStudent godoc
// @Summary Delete student
// @Tags Students
// @Param id path int true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *Handler) DeleteStudent(c *gin.Context) {
	remove(h, c, "students", h.store.DeleteStudent)
}

// ListUsers godoc
// @Summary List accounts
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	response.OK(c, h.store.ListUsers())
}

// UnassignedUsers godoc
// @Summary List accounts of a role not linked to a profile
// @Tags Users
// @Produce json
// @Param role query string true "ADMIN, TEACHER or STUDENT"
// @Param entity query string true "teachers or students"
// @Success 200 {array} models.User
// @Router /users/unassigned [get]
func (h *Handler) UnassignedUsers(c *gin.Context) {
	rows, err := h.store.Unassigned(models.Role(c.Query("role")), c.Query("entity"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// GetUser godoc
// @Summary Get account by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	get(c, h.store.GetUser)
}

// CreateUser godoc
// @Summary Create account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body models.UserPayload true "User payload"
// @Success 201 {object} models.User
// @Router /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	create(h, c, "users", h.store.CreateUser)
}

// UpdateUser godoc
// @Summary Update account; non-administrators may change their own username and password
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param payload body models.UserPayload true "User payload"
// @Success 200 {object} models.User
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	self := !isAdmin(c)
	update(h, c, "users", func(id int64, p models.UserPayload) (models.User, error) {
		return h.store.UpdateUser(id, p, self)
	})
}

// DeleteUser godoc
// @Summary Delete account
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 409 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	remove(h, c, "users", func(id int64) error {
		if claims := middleware.Claims(c); claims != nil && claims.UserID == id {
			return appErrors.Clone(appErrors.ErrConflict, "you cannot delete your own account")
		}
		return h.store.DeleteUser(id)
	})
}
