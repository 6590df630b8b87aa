package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ai-buddy/student-support-service/internal/repositories/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRepo(t *testing.T) *memory.Repository {
	t.Helper()
	repo, err := memory.NewRepository()
	if err != nil {
		t.Fatalf("build repository: %v", err)
	}
	return repo
}
