package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dimitrije/places-api/internal/models"
	"github.com/dimitrije/places-api/internal/services"
)

// TestSessionService creates a SessionService with test credentials
func TestSessionService() *services.SessionService {
	return services.NewSessionService(
		"test-secret-key-for-testing-only",
		24*time.Hour,
		"admin",
		"correct-horse",
	)
}

// LoginTestSession logs in against svc with the test credentials and returns
// the session cookie token
func LoginTestSession(t *testing.T, svc *services.SessionService) string {
	t.Helper()
	token, _, err := svc.Login("admin", "correct-horse")
	if err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return token
}

// WriteDocument writes a places document into dir as the live data file and
// returns its path
func WriteDocument(t *testing.T, dir string, doc models.PlacesDocument) string {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}
	path := filepath.Join(dir, "places.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// SamplePlace returns a valid place for seeding test documents
func SamplePlace(id int64, name string) models.Place {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return models.Place{
		ID:        id,
		Name:      name,
		Category:  "Museum",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
