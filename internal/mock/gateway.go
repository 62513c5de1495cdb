// Package mock is a self-contained stand-in for the telehealth backend.
// A Gateway holds one run's worth of in-memory data behind the same client
// interfaces the real backend is reached through, and Server exposes the
// same REST surface over HTTP. Every response is delayed by a random
// interval so timing-dependent behavior shows up during development.
package mock

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/domain/auth"
	"github.com/telecare/telecare/internal/domain/consultation"
	"github.com/telecare/telecare/internal/domain/lab"
	"github.com/telecare/telecare/internal/domain/notification"
	"github.com/telecare/telecare/internal/domain/symptom"
)

// Error strings match what the production backend returns, so the stores
// surface identical messages against either.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNotAuthenticated   = errors.New("User not authenticated")
	ErrReportNotFound     = errors.New("Report not found")
)

// Options tunes a Gateway. Zero delays disable the simulated latency,
// which tests rely on.
type Options struct {
	DemoEmail    string
	DemoPassword string
	TokenSecret  string
	TokenTTL     time.Duration
	MinDelay     time.Duration
	MaxDelay     time.Duration
}

func defaultedOptions(opts Options) Options {
	if opts.DemoEmail == "" {
		opts.DemoEmail = "patient@demo.com"
	}
	if opts.DemoPassword == "" {
		opts.DemoPassword = "demo123"
	}
	if opts.TokenSecret == "" {
		opts.TokenSecret = "telecare-dev-secret"
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return opts
}

// Gateway implements the auth, symptom, consultation, lab and notification
// client interfaces against in-memory data. Each Gateway owns its own state;
// two Gateways never share anything, so every run starts from the same seed.
type Gateway struct {
	opts   Options
	issuer *TokenIssuer
	log    zerolog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	mu            sync.Mutex
	users         map[string]auth.User
	demoUserID    string
	reports       []symptom.Report
	doctors       []consultation.Doctor
	consultations []consultation.Consultation
	labResults    []lab.Result
	notifications []notification.Notification
	pushTokens    []string
}

var (
	_ auth.Client         = (*Gateway)(nil)
	_ symptom.Client      = (*Gateway)(nil)
	_ consultation.Client = (*Gateway)(nil)
	_ lab.Client          = (*Gateway)(nil)
	_ notification.Client = (*Gateway)(nil)
)

func NewGateway(opts Options, logger zerolog.Logger) *Gateway {
	opts = defaultedOptions(opts)
	now := time.Now()
	user := seedUser()
	user.Email = opts.DemoEmail
	return &Gateway{
		opts:          opts,
		issuer:        NewTokenIssuer(opts.TokenSecret, opts.TokenTTL),
		log:           logger,
		rng:           rand.New(rand.NewSource(now.UnixNano())),
		users:         map[string]auth.User{user.ID: user},
		demoUserID:    user.ID,
		reports:       seedSymptomReports(),
		doctors:       seedDoctors(),
		consultations: seedConsultations(now),
		labResults:    seedLabResults(),
		notifications: seedNotifications(now),
	}
}

// delay blocks for a random interval in the configured window, or until the
// context is cancelled.
func (g *Gateway) delay(ctx context.Context) error {
	window := g.opts.MaxDelay - g.opts.MinDelay
	d := g.opts.MinDelay
	if window > 0 {
		g.rngMu.Lock()
		d += time.Duration(g.rng.Int63n(int64(window)))
		g.rngMu.Unlock()
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// authenticate resolves a bearer token to a known user.
func (g *Gateway) authenticate(token string) (auth.User, error) {
	id, err := g.issuer.Verify(token)
	if err != nil {
		return auth.User{}, ErrNotAuthenticated
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	user, ok := g.users[id]
	if !ok {
		return auth.User{}, ErrNotAuthenticated
	}
	return user, nil
}

func (g *Gateway) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if email != g.opts.DemoEmail || password != g.opts.DemoPassword {
		return nil, ErrInvalidCredentials
	}
	g.mu.Lock()
	user := g.users[g.demoUserID]
	g.mu.Unlock()
	token, err := g.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &auth.Session{User: &user, Token: token}, nil
}

func (g *Gateway) Register(ctx context.Context, reg auth.Registration) (*auth.Session, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	now := time.Now()
	user := auth.User{
		ID:                uuid.NewString(),
		Email:             reg.Email,
		FirstName:         reg.FirstName,
		LastName:          reg.LastName,
		Phone:             reg.Phone,
		DateOfBirth:       reg.DateOfBirth,
		Gender:            reg.Gender,
		Address:           reg.Address,
		PreferredLanguage: reg.PreferredLanguage,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if user.Gender == "" {
		user.Gender = auth.GenderOther
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "en"
	}
	if reg.EmergencyContact != nil {
		user.EmergencyContact = *reg.EmergencyContact
	}
	g.mu.Lock()
	g.users[user.ID] = user
	g.mu.Unlock()

	token, err := g.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &auth.Session{User: &user, Token: token}, nil
}

func (g *Gateway) Logout(ctx context.Context, token string) error {
	if err := g.delay(ctx); err != nil {
		return err
	}
	// Tokens are stateless; logout is client-side.
	return nil
}

func (g *Gateway) GetProfile(ctx context.Context, token string) (*auth.User, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	user, err := g.authenticate(token)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Gateway) UpdateProfile(ctx context.Context, token string, patch auth.ProfilePatch) (*auth.User, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	user, err := g.authenticate(token)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		user.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.EmergencyContact != nil {
		user.EmergencyContact = *patch.EmergencyContact
	}
	if patch.PreferredLanguage != nil {
		user.PreferredLanguage = *patch.PreferredLanguage
	}
	user.UpdatedAt = time.Now()

	g.mu.Lock()
	g.users[user.ID] = user
	g.mu.Unlock()
	return &user, nil
}

func (g *Gateway) CreateReport(ctx context.Context, token string, draft symptom.Draft) (*symptom.Report, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	user, err := g.authenticate(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := symptom.Report{
		ID:             uuid.NewString(),
		PatientID:      user.ID,
		Transcription:  draft.Transcription,
		TranslatedText: draft.TranslatedText,
		Status:         draft.Status,
		DoctorID:       draft.DoctorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if report.TranslatedText == "" {
		report.TranslatedText = draft.Transcription
	}
	if draft.StructuredReport != nil {
		report.StructuredReport = *draft.StructuredReport
	} else {
		report.StructuredReport = symptom.StructuredReport{Symptoms: []string{}, Severity: symptom.SeverityMild}
	}
	if report.Status == "" {
		report.Status = symptom.StatusDraft
	}

	g.mu.Lock()
	g.reports = append([]symptom.Report{report}, g.reports...)
	g.mu.Unlock()
	return &report, nil
}

func (g *Gateway) ListReports(ctx context.Context, token string) ([]symptom.Report, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]symptom.Report, len(g.reports))
	copy(out, g.reports)
	return out, nil
}

func (g *Gateway) UpdateReport(ctx context.Context, token, id string, patch symptom.Patch) (*symptom.Report, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.reports {
		if g.reports[i].ID != id {
			continue
		}
		if patch.Transcription != nil {
			g.reports[i].Transcription = *patch.Transcription
		}
		if patch.TranslatedText != nil {
			g.reports[i].TranslatedText = *patch.TranslatedText
		}
		if patch.StructuredReport != nil {
			g.reports[i].StructuredReport = *patch.StructuredReport
		}
		if patch.DoctorID != nil {
			g.reports[i].DoctorID = *patch.DoctorID
		}
		g.reports[i].UpdatedAt = time.Now()
		report := g.reports[i]
		return &report, nil
	}
	return nil, ErrReportNotFound
}

func (g *Gateway) SubmitReport(ctx context.Context, token, id string) (*symptom.Report, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.reports {
		if g.reports[i].ID != id {
			continue
		}
		g.reports[i].Status = symptom.StatusSubmitted
		g.reports[i].UpdatedAt = time.Now()
		report := g.reports[i]
		return &report, nil
	}
	return nil, ErrReportNotFound
}

func (g *Gateway) Transcribe(ctx context.Context, token string, audio io.Reader, fileName, language string) (*symptom.TranscriptionResult, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	// The audio payload is drained but never inspected.
	if audio != nil {
		if _, err := io.Copy(io.Discard, audio); err != nil {
			return nil, err
		}
	}

	transcription, ok := transcripts[language]
	if !ok {
		transcription = transcripts["en"]
		language = "en"
	}
	translation := transcription
	if language != "en" {
		translation = transcripts["en"]
	}
	return &symptom.TranscriptionResult{Transcription: transcription, Translation: translation}, nil
}

func (g *Gateway) AvailableDoctors(ctx context.Context, token string) ([]consultation.Doctor, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]consultation.Doctor, len(g.doctors))
	copy(out, g.doctors)
	return out, nil
}

func (g *Gateway) RequestConsultation(ctx context.Context, token string, req consultation.Request) (*consultation.Consultation, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	user, err := g.authenticate(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cons := consultation.Consultation{
		ID:          uuid.NewString(),
		PatientID:   user.ID,
		DoctorID:    req.DoctorID,
		Type:        req.Type,
		Status:      consultation.StatusScheduled,
		ScheduledAt: req.ScheduledAt,
		Symptoms:    req.Symptoms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cons.Type == "" {
		cons.Type = consultation.CallVideo
	}
	if cons.ScheduledAt.IsZero() {
		cons.ScheduledAt = now
	}

	g.mu.Lock()
	g.consultations = append([]consultation.Consultation{cons}, g.consultations...)
	g.mu.Unlock()
	return &cons, nil
}

func (g *Gateway) ListConsultations(ctx context.Context, token string) ([]consultation.Consultation, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]consultation.Consultation, len(g.consultations))
	copy(out, g.consultations)
	return out, nil
}

func (g *Gateway) JoinCall(ctx context.Context, token, consultationID string) (*consultation.CallSession, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	return &consultation.CallSession{
		CallToken:   "mock-call-token-" + consultationID,
		ChannelName: "consultation-" + consultationID,
	}, nil
}

func (g *Gateway) ListResults(ctx context.Context, token string) ([]lab.Result, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]lab.Result, len(g.labResults))
	copy(out, g.labResults)
	return out, nil
}

func (g *Gateway) UploadResult(ctx context.Context, token string, up lab.Upload, file io.Reader) (*lab.Result, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	user, err := g.authenticate(token)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if _, err := io.Copy(io.Discard, file); err != nil {
			return nil, err
		}
	}

	result := lab.Result{
		ID:        uuid.NewString(),
		PatientID: user.ID,
		TestName:  up.TestName,
		TestDate:  up.TestDate,
		Results:   "Results will be processed and updated by the medical team within 24-48 hours.",
		FileURL:   "mock://uploads/" + up.FileName,
		CreatedAt: time.Now(),
	}

	g.mu.Lock()
	g.labResults = append([]lab.Result{result}, g.labResults...)
	g.mu.Unlock()
	return &result, nil
}

func (g *Gateway) ListNotifications(ctx context.Context, token string) ([]notification.Notification, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	if _, err := g.authenticate(token); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]notification.Notification, len(g.notifications))
	copy(out, g.notifications)
	return out, nil
}

func (g *Gateway) MarkRead(ctx context.Context, token, notificationID string) error {
	if err := g.delay(ctx); err != nil {
		return err
	}
	if _, err := g.authenticate(token); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.notifications {
		if g.notifications[i].ID == notificationID {
			g.notifications[i].IsRead = true
			break
		}
	}
	// Unknown ids are ignored, matching the production backend.
	return nil
}

func (g *Gateway) RegisterDevice(ctx context.Context, token, pushToken string) error {
	if err := g.delay(ctx); err != nil {
		return err
	}
	if _, err := g.authenticate(token); err != nil {
		return err
	}
	g.mu.Lock()
	g.pushTokens = append(g.pushTokens, pushToken)
	g.mu.Unlock()
	g.log.Info().Str("push_token", pushToken).Msg("push token registered")
	return nil
}
