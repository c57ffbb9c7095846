package stub

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/response"
)

// ListCareers godoc
// @Summary List careers
// @Tags Careers
// @Produce json
// @Success 200 {array} models.Career
// @Router /careers [get]
func (h *Handler) ListCareers(c *gin.Context) {
	response.OK(c, h.store.ListCareers())
}

// GetCareer godoc
// @Summary Get career by id
// @Tags Careers
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} models.Career
// @Failure 404 {object} response.Envelope
// @Router /careers/{id} [get]
func (h *Handler) GetCareer(c *gin.Context) {
	get(c, h.store.GetCareer)
}

// CreateCareer godoc
// @Summary Create career
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body models.CareerPayload true "Career payload"
// @Success 201 {object} models.Career
// @Failure 409 {object} response.Envelope
// @Router /careers [post]
func (h *Handler) CreateCareer(c *gin.Context) {
	create(h, c, "careers", h.store.CreateCareer)
}

// UpdateCareer godoc
// @Summary Update career
// @Tags Careers
// @Accept json
// @Produce json
// @Param id path int true "Career ID"
// @Param payload body models.CareerPayload true "Career payload"
// @Success 200 {object} models.Career
// @Router /careers/{id} [put]
func (h *Handler) UpdateCareer(c *gin.Context) {
	update(h, c, "careers", h.store.UpdateCareer)
}

// DeleteCareer godoc
// @Summary Delete career
// @Tags Careers
// @Param id path int true "Career ID"
// @Success 204
// @Failure 409 {object} response.Envelope
// @Router /careers/{id} [delete]
func (h *Handler) DeleteCareer(c *gin.Context) {
	remove(h, c, "careers", h.store.DeleteCareer)
}

// ListClassrooms godoc
// @Summary List classrooms
// @Tags Classrooms
// @Produce json
// @Success 200 {array} models.Classroom
// @Router /classrooms [get]
func (h *Handler) ListClassrooms(c *gin.Context) {
	response.OK(c, h.store.ListClassrooms())
}

// GetClassroom godoc
// @Summary Get classroom by id
// @Tags Classrooms
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} models.Classroom
// @Router /classrooms/{id} [get]
func (h *Handler) GetClassroom(c *gin.Context) {
	get(c, h.store.GetClassroom)
}

// CreateClassroom godoc
// @Summary Create classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body models.ClassroomPayload true "Classroom payload"
// @Success 201 {object} models.Classroom
// @Router /classrooms [post]
func (h *Handler) CreateClassroom(c *gin.Context) {
	create(h, c, "classrooms", h.store.CreateClassroom)
}

// UpdateClassroom godoc
// @Summary Update classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param id path int true "Classroom ID"
// @Param payload body models.ClassroomPayload true "Classroom payload"
// @Success 200 {object} models.Classroom
// @Router /classrooms/{id} [put]
func (h *Handler) UpdateClassroom(c *gin.Context) {
	update(h, c, "classrooms", h.store.UpdateClassroom)
}

// DeleteClassroom godoc
// @Summary Delete classroom
// @Tags Classrooms
// @Param id path int true "Classroom ID"
// @Success 204
// @Router /classrooms/{id} [delete]
func (h *Handler) DeleteClassroom(c *gin.Context) {
	remove(h, c, "classrooms", h.store.DeleteClassroom)
}

// ListSchedules godoc
// @Summary List schedules
// @Tags Schedules
// @Produce json
// @Success 200 {array} models.Schedule
// @Router /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	response.OK(c, h.store.ListSchedules())
}

// GetSchedule godoc
// @Summary Get schedule by id
// @Tags Schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} models.Schedule
// @Router /schedules/{id} [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	get(c, h.store.GetSchedule)
}

// CreateSchedule godoc
// @Summary Create schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body models.SchedulePayload true "Schedule payload"
// @Success 201 {object} models.Schedule
// @Router /schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	create(h, c, "schedules", h.store.CreateSchedule)
}

// UpdateSchedule godoc
// @Summary Update schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param payload body models.SchedulePayload true "Schedule payload"
// @Success 200 {object} models.Schedule
// @Router /schedules/{id} [put]
func (h *Handler) UpdateSchedule(c *gin.Context) {
	update(h, c, "schedules", h.store.UpdateSchedule)
}

// DeleteSchedule godoc
// @Summary Delete schedule
// @Tags Schedules
// @Param id path int true "Schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	remove(h, c, "schedules", h.store.DeleteSchedule)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags Subjects
// @Produce json
// @Param careerId query int false "Filter by career"
// @Success 200 {array} models.Subject
// @Router /subjects [get]
func (h *Handler) ListSubjects(c *gin.Context) {
	var careerID int64
	if raw := c.Query("careerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, appErrors.Invalid(appErrors.ErrInvalidNumber, "careerId", "careerId must be a positive whole number"))
			return
		}
		careerID = id
	}
	response.OK(c, h.store.ListSubjects(careerID))
}

// GetSubject godoc
// @Summary Get subject by id
// @Tags Subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject
// @Router /subjects/{id} [get]
func (h *Handler) GetSubject(c *gin.Context) {
	get(c, h.store.GetSubject)
}

// CreateSubject godoc
// @Summary Create subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body models.SubjectPayload true "Subject payload"
// @Success 201 {object} models.Subject
// @Router /subjects [post]
func (h *Handler) CreateSubject(c *gin.Context) {
	create(h, c, "subjects", h.store.CreateSubject)
}

// UpdateSubject godoc
// @Summary Update subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param payload body models.SubjectPayload true "Subject payload"
// @Success 200 {object} models.Subject
// @Router /subjects/{id} [put]
func (h *Handler) UpdateSubject(c *gin.Context) {
	update(h, c, "subjects", h.store.UpdateSubject)
}

// DeleteSubject godoc
// @Summary Delete subject
// @Tags Subjects
// @Param id path int true "Subject ID"
// @Success 204
// @Router /subjects/{id} [delete]
func (h *Handler) DeleteSubject(c *gin.Context) {
	remove(h, c, "subjects", h.store.DeleteSubject)
}

// ListGroups godoc
// @Summary List groups
// @Tags Groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	response.OK(c, h.store.ListGroups())
}

// GetGroup godoc
// @Summary Get group with enrolled students
// @Tags Groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.Group
// @Router /groups/{id} [get]
func (h *Handler) GetGroup(c *gin.Context) {
	get(c, h.store.GetGroup)
}

// CreateGroup godoc
// @Summary Create group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body models.GroupPayload true "Group payload"
// @Success 201 {object} models.Group
// @Router /groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	create(h, c, "groups", h.store.CreateGroup)
}

// UpdateGroup godoc
// @Summary Update group
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param payload body models.GroupPayload true "Group payload"
// @Success 200 {object} models.Group
// @Router /groups/{id} [put]
func (h *Handler) UpdateGroup(c *gin.Context) {
	update(h, c, "groups", h.store.UpdateGroup)
}

// DeleteGroup godoc
// @Summary Delete group
// @Tags Groups
// @Param id path int true "Group ID"
// @Success 204
// @Router /groups/{id} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	remove(h, c, "groups", h.store.DeleteGroup)
}
