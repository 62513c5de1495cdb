package mock

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/domain/lab"
	"github.com/telecare/telecare/internal/domain/symptom"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(Options{}, zerolog.Nop())
}

func login(t *testing.T, g *Gateway) string {
	t.Helper()
	session, err := g.Login(context.Background(), "patient@demo.com", "demo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return session.Token
}

func TestLoginWithDemoCredentials(t *testing.T) {
	g := newTestGateway(t)
	session, err := g.Login(context.Background(), "patient@demo.com", "demo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.User == nil || session.User.ID != "1" {
		t.Fatalf("user = %+v, want id 1", session.User)
	}
	if session.Token == "" {
		t.Fatal("empty token")
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	g := newTestGateway(t)
	_, err := g.Login(context.Background(), "patient@demo.com", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	if err.Error() != "Invalid email or password" {
		t.Fatalf("error = %q", err)
	}
}

func TestForgedTokenRejected(t *testing.T) {
	g := newTestGateway(t)
	other := NewTokenIssuer("some-other-secret", time.Hour)
	forged, err := other.Issue("1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := g.GetProfile(context.Background(), forged); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
	if _, err := g.ListReports(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestGatewaysDoNotShareState(t *testing.T) {
	g1 := newTestGateway(t)
	g2 := newTestGateway(t)
	token := login(t, g1)

	draft := symptom.Draft{Transcription: "sore throat since monday"}
	if _, err := g1.CreateReport(context.Background(), token, draft); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	token2 := login(t, g2)
	reports, err := g2.ListReports(context.Background(), token2)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("second gateway has %d reports, want the 2 seeded", len(reports))
	}
}

func TestCreateReportDefaultsAndPrepends(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)

	created, err := g.CreateReport(context.Background(), token, symptom.Draft{Transcription: "dry cough"})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if created.Status != symptom.StatusDraft {
		t.Fatalf("status = %q, want draft", created.Status)
	}
	if created.TranslatedText != "dry cough" {
		t.Fatalf("translated text = %q, want transcription echoed", created.TranslatedText)
	}

	reports, err := g.ListReports(context.Background(), token)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if reports[0].ID != created.ID {
		t.Fatalf("new report not first: %+v", reports[0])
	}
}

func TestSubmitUnknownReport(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)
	if _, err := g.SubmitReport(context.Background(), token, "nope"); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("err = %v, want ErrReportNotFound", err)
	}
}

func TestTranscribeLanguages(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)

	hindi, err := g.Transcribe(context.Background(), token, strings.NewReader("audio"), "note.m4a", "hi")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if hindi.Transcription == hindi.Translation {
		t.Fatal("hindi transcription should differ from its english translation")
	}
	if hindi.Translation != transcripts["en"] {
		t.Fatalf("translation = %q", hindi.Translation)
	}

	english, err := g.Transcribe(context.Background(), token, strings.NewReader("audio"), "note.m4a", "en")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if english.Transcription != english.Translation {
		t.Fatal("english transcription should equal its translation")
	}

	unknown, err := g.Transcribe(context.Background(), token, strings.NewReader("audio"), "note.m4a", "fr")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if unknown.Transcription != transcripts["en"] {
		t.Fatalf("unknown language should fall back to english, got %q", unknown.Transcription)
	}
}

func TestUploadResultPrependsWithPlaceholder(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)

	up := lab.Upload{TestName: "Blood Test", TestDate: "2024-12-20", FileName: "report.pdf"}
	created, err := g.UploadResult(context.Background(), token, up, strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadResult: %v", err)
	}
	if !strings.Contains(created.Results, "24-48 hours") {
		t.Fatalf("results = %q, want processing placeholder", created.Results)
	}

	results, err := g.ListResults(context.Background(), token)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if results[0].ID != created.ID {
		t.Fatalf("upload not first: %+v", results[0])
	}
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
}

func TestMarkReadUnknownIDIgnored(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)
	if err := g.MarkRead(context.Background(), token, "nope"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
}

func TestJoinCallCredentialsDeriveFromConsultation(t *testing.T) {
	g := newTestGateway(t)
	token := login(t, g)

	session, err := g.JoinCall(context.Background(), token, "cons1")
	if err != nil {
		t.Fatalf("JoinCall: %v", err)
	}
	if session.CallToken != "mock-call-token-cons1" || session.ChannelName != "consultation-cons1" {
		t.Fatalf("session = %+v", session)
	}
}

func TestDelayWithinConfiguredWindow(t *testing.T) {
	g := NewGateway(Options{MinDelay: 10 * time.Millisecond, MaxDelay: 30 * time.Millisecond}, zerolog.Nop())

	start := time.Now()
	if _, err := g.Login(context.Background(), "patient@demo.com", "demo123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 10*time.Millisecond {
		t.Fatalf("elapsed %v, want at least the minimum delay", elapsed)
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("elapsed %v, far beyond the maximum delay", elapsed)
	}
}

func TestDelayHonorsCancellation(t *testing.T) {
	g := NewGateway(Options{MinDelay: 10 * time.Second, MaxDelay: 11 * time.Second}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := g.Login(ctx, "patient@demo.com", "demo123")
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancellation did not interrupt the delay")
	}
}
