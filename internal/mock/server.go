package mock

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/domain/auth"
	"github.com/telecare/telecare/internal/domain/consultation"
	"github.com/telecare/telecare/internal/domain/lab"
	"github.com/telecare/telecare/internal/domain/symptom"
)

// Server exposes a Gateway over the REST surface the app clients expect.
type Server struct {
	gateway *Gateway
	log     zerolog.Logger
	echo    *echo.Echo
}

func NewServer(gateway *Gateway, logger zerolog.Logger) *Server {
	s := &Server{gateway: gateway, log: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	api := e.Group("/api")
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/logout", s.handleLogout)
	api.GET("/patients/profile", s.handleGetProfile)
	api.PUT("/patients/profile", s.handleUpdateProfile)
	api.POST("/symptoms/reports", s.handleCreateReport)
	api.GET("/symptoms/reports", s.handleListReports)
	api.PUT("/symptoms/reports/:id", s.handleUpdateReport)
	api.POST("/symptoms/reports/:id/submit", s.handleSubmitReport)
	api.POST("/symptoms/transcribe", s.handleTranscribe)
	api.GET("/consultations/doctors/available", s.handleAvailableDoctors)
	api.POST("/consultations/request", s.handleRequestConsultation)
	api.GET("/consultations", s.handleListConsultations)
	api.POST("/consultations/:id/join", s.handleJoinCall)
	api.GET("/lab-results", s.handleListResults)
	api.POST("/lab-results/upload", s.handleUploadResult)
	api.GET("/notifications", s.handleListNotifications)
	api.PUT("/notifications/:id/read", s.handleMarkRead)
	api.POST("/notifications/register-device", s.handleRegisterDevice)

	s.echo = e
	return s
}

// Handler returns the HTTP handler, for mounting and for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until Shutdown.
func (s *Server) Start(addr string) error { return s.echo.Start(addr) }

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error { return s.echo.Shutdown(ctx) }

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		s.log.Debug().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Msg("request")
		return err
	}
}

// bearerToken strips the Authorization scheme; handlers pass the raw token
// through to the gateway, which rejects anything it did not issue.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrReportNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusRequestTimeout
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (s *Server) handleLogin(c echo.Context) error {
	var creds auth.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	session, err := s.gateway.Login(c.Request().Context(), creds.Email, creds.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *Server) handleRegister(c echo.Context) error {
	var reg auth.Registration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := reg.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	session, err := s.gateway.Register(c.Request().Context(), reg)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := s.gateway.Logout(c.Request().Context(), bearerToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	user, err := s.gateway.GetProfile(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var patch auth.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	user, err := s.gateway.UpdateProfile(c.Request().Context(), bearerToken(c), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleCreateReport(c echo.Context) error {
	var draft symptom.Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := draft.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	report, err := s.gateway.CreateReport(c.Request().Context(), bearerToken(c), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, report)
}

func (s *Server) handleListReports(c echo.Context) error {
	reports, err := s.gateway.ListReports(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reports)
}

func (s *Server) handleUpdateReport(c echo.Context) error {
	var patch symptom.Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	report, err := s.gateway.UpdateReport(c.Request().Context(), bearerToken(c), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleSubmitReport(c echo.Context) error {
	report, err := s.gateway.SubmitReport(c.Request().Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleTranscribe(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "audio file is required"})
	}
	audio, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to open uploaded file"})
	}
	defer audio.Close()

	language := c.FormValue("language")
	result, err := s.gateway.Transcribe(c.Request().Context(), bearerToken(c), audio, fileHeader.Filename, language)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleAvailableDoctors(c echo.Context) error {
	doctors, err := s.gateway.AvailableDoctors(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (s *Server) handleRequestConsultation(c echo.Context) error {
	var req consultation.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	cons, err := s.gateway.RequestConsultation(c.Request().Context(), bearerToken(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cons)
}

func (s *Server) handleListConsultations(c echo.Context) error {
	consultations, err := s.gateway.ListConsultations(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, consultations)
}

func (s *Server) handleJoinCall(c echo.Context) error {
	session, err := s.gateway.JoinCall(c.Request().Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *Server) handleListResults(c echo.Context) error {
	results, err := s.gateway.ListResults(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (s *Server) handleUploadResult(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to open uploaded file"})
	}
	defer file.Close()

	up := lab.Upload{
		TestName: c.FormValue("testName"),
		TestDate: c.FormValue("testDate"),
		FileName: fileHeader.Filename,
	}
	if err := up.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	result, err := s.gateway.UploadResult(c.Request().Context(), bearerToken(c), up, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (s *Server) handleListNotifications(c echo.Context) error {
	notifications, err := s.gateway.ListNotifications(c.Request().Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (s *Server) handleMarkRead(c echo.Context) error {
	if err := s.gateway.MarkRead(c.Request().Context(), bearerToken(c), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleRegisterDevice(c echo.Context) error {
	var body struct {
		PushToken string `json:"pushToken"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.gateway.RegisterDevice(c.Request().Context(), bearerToken(c), body.PushToken); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
