package main

import (
	"quicknotes/internal/config"
	"quicknotes/internal/domain/sqlite"
	"quicknotes/internal/domain/sqlite/repository"
	"quicknotes/internal/http/handler"
	authmw "quicknotes/internal/http/middleware"
	"quicknotes/internal/infrastructure/google"
	"quicknotes/internal/infrastructure/mail"
	"quicknotes/internal/service"
	"quicknotes/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := uid.Init(cfg.MachineID); err != nil {
		panic(err)
	}

	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		panic(err)
	}

	verifier, err := google.NewIDTokenVerifier(cfg.GoogleClientID)
	if err != nil {
		panic(err)
	}

	mailer := mail.NewSMTPSender(&mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
		Timeout:  cfg.MailTimeout,
	})

	validate := validator.New()

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	authService := service.NewAuthService(userRepo, mailer, verifier, validate, []byte(cfg.JWTSecret))
	noteService := service.NewNoteService(noteRepo, validate)

	// Getting handlers
	authRoutes := handler.NewAuthDefault(authService)
	noteRoutes := handler.NewNoteDefault(noteService)

	authGate := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		Secret: []byte(cfg.JWTSecret),
	})

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Auth
	e.POST("/api/auth/send-otp", authRoutes.SendOTP)
	e.POST("/api/auth/verify-otp", authRoutes.VerifyOTP)
	e.POST("/api/auth/google", authRoutes.GoogleLogin)
	e.GET("/api/auth/me", authRoutes.Me, authGate)

	// Notes
	notes := e.Group("/api/notes", authGate)
	notes.POST("", noteRoutes.CreateNote)
	notes.GET("", noteRoutes.GetNotes)
	notes.DELETE("/:id", noteRoutes.DeleteNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(cfg.Addr); err != nil {
		panic(err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
