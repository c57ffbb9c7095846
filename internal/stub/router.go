package stub

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sigue-client/api/swagger"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/middleware"
	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/pkg/config"
	"github.com/noah-isme/sigue-client/pkg/logger"
	"github.com/noah-isme/sigue-client/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sigue-client/pkg/middleware/requestid"
)

const shutdownGrace = 10 * time.Second

// Options configures a stub gateway.
type Options struct {
	Config config.StubConfig
	Logger *zap.Logger
	// BcryptCost defaults to bcrypt.DefaultCost; tests lower it.
	BcryptCost int
	// Docs serves the swagger UI under /docs.
	Docs bool
}

// RouterOptions toggles the optional parts of the router.
type RouterOptions struct {
	Docs        bool
	CORSOrigins []string
}

// Server is a ready-to-serve stub gateway with its seeded store.
type Server struct {
	Store   *Store
	Auth    *AuthService
	Metrics *MetricsService
	engine  *gin.Engine
}

// New builds the gateway and seeds the administrator account.
func New(opts Options) (*Server, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store := NewStore(opts.BcryptCost)
	admin := models.RoleAdmin
	email := opts.Config.AdminEmail
	password := opts.Config.AdminPassword
	if _, err := store.CreateUser(models.UserPayload{
		Email:    &email,
		Username: opts.Config.AdminUsername,
		Password: &password,
		Role:     &admin,
	}); err != nil {
		return nil, err
	}

	validate := form.New(nil)
	metrics := NewMetricsService()
	auth := NewAuthService(store, validate, metrics, log, AuthConfig{
		Secret: opts.Config.JWTSecret,
		Expiry: opts.Config.JWTExpiration,
		Issuer: "sigue-stub",
	})
	handler := NewHandler(store, auth, validate, metrics, log)

	return &Server{
		Store:   store,
		Auth:    auth,
		Metrics: metrics,
		engine:  NewRouter(handler, auth, metrics, log, RouterOptions{Docs: opts.Docs, CORSOrigins: opts.Config.CORSOrigins}),
	}, nil
}

// Handler returns the HTTP handler of the gateway.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is cancelled, then drains open requests
// for up to shutdownGrace.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err := <-failed:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires the gateway routes. Reads of catalog data are open to every
// logged-in role; writes need an administrator unless the route allows self
// access.
func NewRouter(h *Handler, auth *AuthService, metrics *MetricsService, log *zap.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(middleware.Metrics(metrics, "/metrics"))
	r.Use(cors.New(opts.CORSOrigins))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if opts.Docs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/auth/login", h.Login)

	api := r.Group("/")
	api.Use(middleware.JWT(auth), middleware.Audit(log))
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	careers := api.Group("/careers")
	careers.GET("", h.ListCareers)
	careers.GET("/:id", h.GetCareer)
	careers.POST("", adminOnly, h.CreateCareer)
	careers.PUT("/:id", adminOnly, h.UpdateCareer)
	careers.DELETE("/:id", adminOnly, h.DeleteCareer)

	classrooms := api.Group("/classrooms")
	classrooms.GET("", h.ListClassrooms)
	classrooms.GET("/:id", h.GetClassroom)
	classrooms.POST("", adminOnly, h.CreateClassroom)
	classrooms.PUT("/:id", adminOnly, h.UpdateClassroom)
	classrooms.DELETE("/:id", adminOnly, h.DeleteClassroom)

	schedules := api.Group("/schedules")
	schedules.GET("", h.ListSchedules)
	schedules.GET("/:id", h.GetSchedule)
	schedules.POST("", adminOnly, h.CreateSchedule)
	schedules.PUT("/:id", adminOnly, h.UpdateSchedule)
	schedules.DELETE("/:id", adminOnly, h.DeleteSchedule)

	subjects := api.Group("/subjects")
	subjects.GET("", h.ListSubjects)
	subjects.GET("/:id", h.GetSubject)
	subjects.POST("", adminOnly, h.CreateSubject)
	subjects.PUT("/:id", adminOnly, h.UpdateSubject)
	subjects.DELETE("/:id", adminOnly, h.DeleteSubject)

	teachers := api.Group("/teachers")
	teachers.GET("", adminOnly, h.ListTeachers)
	teachers.GET("/me", middleware.RequireRoles(models.RoleTeacher), h.TeacherMe)
	teachers.GET("/:id", h.GetTeacher)
	teachers.POST("", adminOnly, h.CreateTeacher)
	teachers.PUT("/:id", h.UpdateTeacher)
	teachers.DELETE("/:id", adminOnly, h.DeleteTeacher)

	students := api.Group("/students")
	students.GET("", adminOnly, h.ListStudents)
	students.GET("/me", middleware.RequireRoles(models.RoleStudent), h.StudentMe)
	students.GET("/:id", h.GetStudent)
	students.POST("", adminOnly, h.CreateStudent)
	students.PUT("/:id", h.UpdateStudent)
	students.DELETE("/:id", adminOnly, h.DeleteStudent)

	users := api.Group("/users")
	users.GET("", adminOnly, h.ListUsers)
	users.GET("/unassigned", adminOnly, h.UnassignedUsers)
	users.GET("/:id", middleware.RBAC(string(models.RoleAdmin), middleware.Self), h.GetUser)
	users.POST("", adminOnly, h.CreateUser)
	users.PUT("/:id", middleware.RBAC(string(models.RoleAdmin), middleware.Self), h.UpdateUser)
	users.DELETE("/:id", adminOnly, h.DeleteUser)

	groups := api.Group("/groups")
	groups.GET("", h.ListGroups)
	groups.GET("/:id", h.GetGroup)
	groups.POST("", adminOnly, h.CreateGroup)
	groups.PUT("/:id", adminOnly, h.UpdateGroup)
	groups.DELETE("/:id", adminOnly, h.DeleteGroup)

	return r
}
