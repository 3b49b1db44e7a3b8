package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"event-experience/internal/model"
	"event-experience/test/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	db, cleanup, err := testutil.SetupDBOnly()
	if err != nil {
		// no database, nothing to verify here
		log.Printf("Skipping repository tests: %v", err)
		os.Exit(0)
	}
	testDB = db

	log.Println("Running repository tests...")
	code := m.Run()

	cleanup()
	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE tickets, events, users, organizations, organization_members, organizer_profiles RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func createTestUser(t *testing.T, username, email string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO users (username, password, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, username, "secret", email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

func createTestEvent(t *testing.T, title string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO events (title, status)
		VALUES ($1, 'active')
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, title).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

func createTestTicket(t *testing.T, attendeeID, eventID int, status model.TicketStatus) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO tickets (attendee_id, event_id, qr_code, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, attendeeID, eventID, "test-payload", status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}

	return id
}
