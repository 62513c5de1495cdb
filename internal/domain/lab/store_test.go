package lab

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeClient struct {
	results []Result
	created *Result
	err     error

	uploadCalls int
}

func (f *fakeClient) ListResults(ctx context.Context, token string) ([]Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeClient) UploadResult(ctx context.Context, token string, up Upload, file io.Reader) (*Result, error) {
	f.uploadCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func TestFetchResultsReplacesList(t *testing.T) {
	fake := &fakeClient{results: []Result{
		{ID: "lab1", TestName: "Complete Blood Count"},
		{ID: "lab2", TestName: "Lipid Panel"},
	}}
	s := NewStore(fake, zerolog.Nop())

	if err := s.FetchResults(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchResults: %v", err)
	}
	if got := len(s.Results()); got != 2 {
		t.Fatalf("results = %d, want 2", got)
	}

	fake.results = []Result{{ID: "lab3", TestName: "Thyroid Function"}}
	if err := s.FetchResults(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchResults: %v", err)
	}
	got := s.Results()
	if len(got) != 1 || got[0].ID != "lab3" {
		t.Fatalf("list not replaced: %+v", got)
	}
}

func TestUploadPrependsCreatedRecord(t *testing.T) {
	fake := &fakeClient{
		results: []Result{{ID: "lab1", TestName: "Complete Blood Count"}},
		created: &Result{
			ID:       "lab9",
			TestName: "Blood Test",
			TestDate: "2024-03-01",
			Results:  "Results will be processed and updated by the medical team within 24-48 hours.",
		},
	}
	s := NewStore(fake, zerolog.Nop())
	if err := s.FetchResults(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchResults: %v", err)
	}

	up := Upload{TestName: "Blood Test", TestDate: "2024-03-01", FileName: "report.pdf"}
	created, err := s.UploadResult(context.Background(), "tok", up, strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadResult: %v", err)
	}
	if created.ID != "lab9" {
		t.Fatalf("created = %+v", created)
	}

	list := s.Results()
	if len(list) != 2 || list[0].TestName != "Blood Test" {
		t.Fatalf("upload not prepended: %+v", list)
	}
	if list[1].ID != "lab1" {
		t.Fatalf("existing record displaced: %+v", list)
	}
}

func TestUploadValidatesBeforeNetwork(t *testing.T) {
	fake := &fakeClient{}
	s := NewStore(fake, zerolog.Nop())

	_, err := s.UploadResult(context.Background(), "tok", Upload{TestName: "Blood Test"}, strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected validation error for missing test date")
	}
	if fake.uploadCalls != 0 {
		t.Fatalf("backend called %d times for invalid upload", fake.uploadCalls)
	}
	if s.Err() != "" {
		t.Fatalf("validation failure recorded in state: %q", s.Err())
	}
}

func TestFailedUploadKeepsListAndRecordsError(t *testing.T) {
	fake := &fakeClient{results: []Result{{ID: "lab1"}}}
	s := NewStore(fake, zerolog.Nop())
	if err := s.FetchResults(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchResults: %v", err)
	}

	fake.err = errors.New("upload rejected")
	up := Upload{TestName: "Blood Test", TestDate: "2024-03-01", FileName: "report.pdf"}
	if _, err := s.UploadResult(context.Background(), "tok", up, strings.NewReader("x")); err == nil {
		t.Fatal("expected upload error")
	}
	if got := len(s.Results()); got != 1 {
		t.Fatalf("cached list changed on failure, len = %d", got)
	}
	if s.Err() != "upload rejected" {
		t.Fatalf("Err = %q", s.Err())
	}
	if s.IsLoading() {
		t.Fatal("store still loading after failure")
	}
}
