package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/api/handler"
	"github.com/sneha-510/smart-coalmine-system/internal/api/middleware"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/pkg/redis"
	"github.com/sneha-510/smart-coalmine-system/pkg/session"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, sessions *session.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Authentication, no session required.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.SessionAuth(sessions, rdb, cfg.Auth.Cookie.Name))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			users := authorized.Group("/users")
			{
				users.GET("", middleware.Require(permission.UserManage), h.User.List)
				users.GET("/workers", middleware.Require(permission.WorkerDirectoryRead), h.User.ListWorkers)
				users.POST("", middleware.Require(permission.UserManage), h.User.Create)
				users.PUT("/:id", middleware.Require(permission.UserManage), h.User.Update)
				users.DELETE("/:id", middleware.Require(permission.UserManage), h.User.Delete)
			}

			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", middleware.Require(permission.ShiftReadAll), h.Shift.List)
				shifts.GET("/my", middleware.Require(permission.ShiftReadOwn), h.Shift.ListMine)
				shifts.POST("", middleware.Require(permission.ShiftManage), h.Shift.Create)
				shifts.PUT("/:id", middleware.Require(permission.ShiftManage), h.Shift.Update)
				shifts.DELETE("/:id", middleware.Require(permission.ShiftManage), h.Shift.Delete)
			}

			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", middleware.RequireAny(permission.AttendanceReadAll, permission.AttendanceReadOwn), h.Attendance.List)
				attendance.POST("", middleware.Require(permission.AttendanceCheckSelf), h.Attendance.Check)
				attendance.POST("/admin", middleware.Require(permission.AttendanceManage), h.Attendance.AdminCheck)
			}

			alerts := authorized.Group("/alerts")
			{
				alerts.GET("", middleware.RequireAny(permission.AlertReadAll, permission.AlertReadOwn), h.Alert.List)
				alerts.POST("", middleware.Require(permission.AlertCreate), h.Alert.Create)
				alerts.PUT("/:id", middleware.Require(permission.AlertResolve), h.Alert.UpdateStatus)
			}

			reports := authorized.Group("/reports")
			{
				reports.GET("", middleware.Require(permission.ReportRead), h.Report.List)
				reports.POST("", middleware.Require(permission.ReportCreate), h.Report.Create)
			}

			authorized.POST("/chatbot/message", h.Chatbot.Message)

			export := authorized.Group("/export")
			{
				export.GET("/attendance", middleware.Require(permission.ExportAttendance), h.Export.Attendance)
				export.GET("/shifts.ics", middleware.Require(permission.ExportOwnCalendar), h.Export.ShiftCalendar)
			}
		}
	}

	return r
}
