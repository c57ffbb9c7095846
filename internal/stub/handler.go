package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/middleware"
	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/response"
)

// Handler serves the gateway endpoints on top of a Store.
type Handler struct {
	store    *Store
	auth     *AuthService
	validate *form.Validator
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewHandler constructs the gateway handler.
func NewHandler(store *Store, auth *AuthService, validate *form.Validator, metrics *MetricsService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = form.New(nil)
	}
	return &Handler{store: store, auth: auth, validate: validate, metrics: metrics, logger: logger}
}

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}
	resp, err := h.auth.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// bind decodes the JSON body into dst and applies the form rules.
func (h *Handler) bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Invalid(appErrors.ErrInvalidNumber, "id", "id must be a positive whole number"))
		return 0, false
	}
	return id, true
}

func isAdmin(c *gin.Context) bool {
	claims := middleware.Claims(c)
	return claims != nil && claims.Role == models.RoleAdmin
}

func get[T any](c *gin.Context, load func(int64) (T, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := load(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, row)
}

func create[P any, T any](h *Handler, c *gin.Context, entity string, save func(P) (T, error)) {
	var payload P
	if !h.bind(c, &payload) {
		return
	}
	row, err := save(payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveWrite(entity, "create")
	response.Created(c, row)
}

func update[P any, T any](h *Handler, c *gin.Context, entity string, save func(int64, P) (T, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload P
	if !h.bind(c, &payload) {
		return
	}
	row, err := save(id, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveWrite(entity, "update")
	response.OK(c, row)
}

func remove(h *Handler, c *gin.Context, entity string, drop func(int64) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := drop(id); err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveWrite(entity, "delete")
	h.logger.Info("record deleted", zap.String("entity", entity), zap.Int64("id", id))
	response.NoContent(c)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
