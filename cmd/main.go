package main

import (
	"noteshare/config"
	"noteshare/internal/auth"
	"noteshare/internal/comment"
	"noteshare/internal/middleware"
	"noteshare/internal/note"
	"noteshare/internal/notification"
	"noteshare/internal/svc"
	"noteshare/internal/user"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	utils.InitLogger(cfg.AppEnv)

	serviceContext := svc.NewServiceContext(cfg)
	defer serviceContext.Close()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(otelgin.Middleware("noteshare-api"))

	authHandler := auth.NewAuthHandler(serviceContext)
	userHandler := user.NewUserHandler(serviceContext)
	noteHandler := note.NewNoteHandler(serviceContext)
	commentHandler := comment.NewCommentHandler(serviceContext)
	notificationHandler := notification.NewNotificationHandler(serviceContext)

	requireAuth := middleware.JWTAuth(cfg, serviceContext.Cache)
	optionalAuth := middleware.OptionalAuth(cfg, serviceContext.Cache)
	noteOwner := middleware.NoteOwner(serviceContext.DB)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", requireAuth, authHandler.Me)
			authGroup.POST("/logout", requireAuth, authHandler.Logout)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", optionalAuth, noteHandler.List)
			notes.GET("/:id", optionalAuth, noteHandler.Get)
			notes.POST("", requireAuth, noteHandler.Create)
			notes.PUT("/:id", requireAuth, noteOwner, noteHandler.Update)
			notes.DELETE("/:id", requireAuth, noteOwner, noteHandler.Delete)

			notes.PUT("/:id/like", requireAuth, noteHandler.ToggleLike)
			notes.PUT("/:id/bookmark", requireAuth, noteHandler.ToggleBookmark)
			notes.GET("/:id/download", noteHandler.Download)

			notes.GET("/:id/comments", commentHandler.List)
			notes.POST("/:id/comments", requireAuth, commentHandler.Create)
			notes.DELETE("/:id/comments/:commentId", requireAuth, commentHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.PUT("/profile", requireAuth, userHandler.UpdateProfile)
			users.PUT("/password", requireAuth, userHandler.ChangePassword)
			users.GET("/notes", requireAuth, userHandler.MyNotes)
			users.GET("/bookmarks", requireAuth, userHandler.Bookmarks)
			users.POST("/:id/follow", requireAuth, userHandler.ToggleFollow)
			users.GET("/:id", optionalAuth, userHandler.PublicProfile)
		}

		notifications := api.Group("/notifications", requireAuth)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/read-all", notificationHandler.MarkAllAsRead)
			notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
		}
	}

	addr := ":" + cfg.ServerPort
	zap.L().Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
