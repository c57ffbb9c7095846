package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/sigue-client/pkg/config"
	"github.com/noah-isme/sigue-client/pkg/middleware/requestid"
)

// New builds the process logger. Output goes to stderr because the CLI
// prints its results on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	zapCfg, err := buildConfig(cfg.Env, cfg.Log)
	if err != nil {
		return nil, err
	}
	return zapCfg.Build()
}

func buildConfig(env string, log config.LogConfig) (zap.Config, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	}

	switch log.Format {
	case "", "console":
		zapCfg.Encoding = "console"
	case "json":
		zapCfg.Encoding = "json"
	default:
		return zap.Config{}, fmt.Errorf("unknown log format %q", log.Format)
	}

	if log.Level != "" {
		level, err := zapcore.ParseLevel(log.Level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("log level: %w", err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg, nil
}

// GinMiddleware logs every request served by the stub gateway. Server
// errors log at error level and client errors at warn.
func GinMiddleware(l *zap.Logger) gin.HandlerFunc {
	if l == nil {
		l = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := requestid.Value(c); id != "" {
			fields = append(fields, zap.String("request_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.Error("http_request", fields...)
		case status >= http.StatusBadRequest:
			l.Warn("http_request", fields...)
		default:
			l.Info("http_request", fields...)
		}
	}
}
