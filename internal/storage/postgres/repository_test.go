//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
	quiet    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(ctx, testPool); err != nil {
		fmt.Println("Migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE tasks, reports, location_history, volunteer_positions, users CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedUser(t *testing.T, name string, role domain.Role, createdAt time.Time) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Email: name + "@example.org", Role: role, CreatedAt: createdAt}
	if err := NewUsers(testPool, quiet).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func TestPositions_NearestVolunteer_PicksClosestWithinRadius(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewPositions(testPool, quiet)

	near := seedUser(t, "near", domain.RoleVolunteer, time.Now().UTC())
	far := seedUser(t, "far", domain.RoleVolunteer, time.Now().UTC())
	out := seedUser(t, "out", domain.RoleVolunteer, time.Now().UTC())
	admin := seedUser(t, "admin", domain.RoleAdmin, time.Now().UTC())

	report := domain.Point{Lat: 18.5204, Lng: 73.8567}
	now := time.Now().UTC()
	must(t, repo.Upsert(ctx, near.ID, domain.Point{Lat: 18.5300, Lng: 73.8567}, now))
	must(t, repo.Upsert(ctx, far.ID, domain.Point{Lat: 18.5600, Lng: 73.8567}, now))
	must(t, repo.Upsert(ctx, out.ID, domain.Point{Lat: 19.5204, Lng: 73.8567}, now))
	must(t, repo.Upsert(ctx, admin.ID, report, now))

	got, err := repo.NearestVolunteer(ctx, report, 10, false)
	if err != nil {
		t.Fatalf("NearestVolunteer: %v", err)
	}
	if got == nil || got.UserID != near.ID {
		t.Fatalf("expected %s, got %+v", near.ID, got)
	}
	if got.DistanceKM <= 0 || got.DistanceKM > 2 {
		t.Fatalf("unexpected distance %v", got.DistanceKM)
	}

	list, err := repo.NearbyVolunteers(ctx, report, 10, 10)
	if err != nil {
		t.Fatalf("NearbyVolunteers: %v", err)
	}
	if len(list) != 2 || list[0].UserID != near.ID || list[1].UserID != far.ID {
		t.Fatalf("unexpected nearby list: %+v", list)
	}
}

func TestPositions_NearestVolunteer_NoneWithinRadius(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewPositions(testPool, quiet)

	v := seedUser(t, "v", domain.RoleVolunteer, time.Now().UTC())
	must(t, repo.Upsert(ctx, v.ID, domain.Point{Lat: 20, Lng: 73.8567}, time.Now().UTC()))

	got, err := repo.NearestVolunteer(ctx, domain.Point{Lat: 18.5204, Lng: 73.8567}, 10, false)
	if err != nil {
		t.Fatalf("NearestVolunteer: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no candidate, got %+v", got)
	}
}

func TestPositions_NearestVolunteer_ActiveOnly(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewPositions(testPool, quiet)
	users := NewUsers(testPool, quiet)

	offline := seedUser(t, "offline", domain.RoleVolunteer, time.Now().UTC())
	online := seedUser(t, "online", domain.RoleVolunteer, time.Now().UTC())

	report := domain.Point{Lat: 18.5204, Lng: 73.8567}
	now := time.Now().UTC()
	must(t, repo.Upsert(ctx, offline.ID, report, now))
	must(t, repo.Upsert(ctx, online.ID, domain.Point{Lat: 18.55, Lng: 73.8567}, now))
	must(t, users.SetConnected(ctx, online.ID, &now))

	got, err := repo.NearestVolunteer(ctx, report, 10, true)
	if err != nil {
		t.Fatalf("NearestVolunteer: %v", err)
	}
	if got == nil || got.UserID != online.ID {
		t.Fatalf("expected online volunteer, got %+v", got)
	}

	n, err := users.ResetConnected(ctx)
	if err != nil || n != 1 {
		t.Fatalf("ResetConnected: n=%d err=%v", n, err)
	}
	got, err = repo.NearestVolunteer(ctx, report, 10, true)
	if err != nil || got != nil {
		t.Fatalf("expected no active volunteer, got %+v err=%v", got, err)
	}
}

func TestPositions_Upsert_LngLatOrder_RoundTrip(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewPositions(testPool, quiet)

	v := seedUser(t, "v", domain.RoleVolunteer, time.Now().UTC())
	must(t, repo.Upsert(ctx, v.ID, domain.Point{Lat: 1, Lng: 1}, time.Now().UTC()))
	want := domain.Point{Lat: 49.281441, Lng: -123.055913}
	must(t, repo.Upsert(ctx, v.ID, want, time.Now().UTC()))

	got, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Point != want {
		t.Fatalf("round trip mismatch got=%+v want=%+v", got.Point, want)
	}

	var rows int
	_ = testPool.QueryRow(ctx, `SELECT COUNT(*) FROM volunteer_positions`).Scan(&rows)
	if rows != 1 {
		t.Fatalf("expected one row per user, got %d", rows)
	}
}

func TestUsers_FirstFallbackAdmin_InsertionOrder(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	users := NewUsers(testPool, quiet)

	got, err := users.FirstFallbackAdmin(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected nil on empty table, got %+v err=%v", got, err)
	}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUser(t, "volunteer", domain.RoleVolunteer, base)
	org := seedUser(t, "org", domain.RoleOrganization, base.Add(time.Minute))
	seedUser(t, "admin", domain.RoleAdmin, base.Add(2*time.Minute))

	got, err = users.FirstFallbackAdmin(ctx)
	if err != nil {
		t.Fatalf("FirstFallbackAdmin: %v", err)
	}
	if got == nil || got.UserID != org.ID {
		t.Fatalf("expected first fallback %s, got %+v", org.ID, got)
	}
}

func TestHistory_PruneAndRecent(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewHistory(testPool, quiet)

	v := seedUser(t, "v", domain.RoleVolunteer, time.Now().UTC())
	now := time.Now().UTC()

	for i, age := range []time.Duration{25 * time.Hour, 23 * time.Hour, time.Hour, 0} {
		must(t, repo.Record(ctx, &domain.LocationHistoryEntry{
			UserID:     v.ID,
			Point:      domain.Point{Lat: 10 + float64(i), Lng: 20},
			RecordedAt: now.Add(-age),
			Role:       domain.RoleVolunteer,
		}))
	}

	n, err := repo.Prune(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 pruned, got %d", n)
	}

	recent, err := repo.Recent(ctx, v.ID, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].RecordedAt.After(recent[i-1].RecordedAt) {
			t.Fatalf("expected descending order")
		}
	}

	lastHour, err := repo.SinceAll(ctx, now.Add(-90*time.Minute))
	if err != nil {
		t.Fatalf("SinceAll: %v", err)
	}
	if len(lastHour[v.ID]) != 2 {
		t.Fatalf("expected 2 entries in window, got %d", len(lastHour[v.ID]))
	}
}

func TestReports_AssignToVolunteer_CreatesTaskOnce(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	reports := NewReports(testPool, quiet)
	tasks := NewTasks(testPool, quiet)

	reporter := seedUser(t, "reporter", domain.RoleUser, time.Now().UTC())
	v := seedUser(t, "v", domain.RoleVolunteer, time.Now().UTC())

	r := &domain.Report{ReporterID: reporter.ID, Description: "injured dog", Point: domain.Point{Lat: 18.5204, Lng: 73.8567}}
	must(t, reports.Create(ctx, r))
	if r.Status != domain.ReportPending || r.Priority != domain.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", r)
	}

	task := &domain.Task{Title: "Rescue", Description: r.Description}
	must(t, reports.AssignToVolunteer(ctx, r.ID, v.ID, task))

	got, err := reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReportAssigned || got.AssigneeID == nil || *got.AssigneeID != v.ID {
		t.Fatalf("unexpected report after assign: %+v", got)
	}

	err = reports.AssignToAdmin(ctx, r.ID, v.ID)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict on second assignment, got %v", err)
	}

	open, err := tasks.ListByAssignee(ctx, v.ID, false)
	if err != nil {
		t.Fatalf("ListByAssignee: %v", err)
	}
	if len(open) != 1 || open[0].ReportID == nil || *open[0].ReportID != r.ID {
		t.Fatalf("expected one task linked to report, got %+v", open)
	}
}

func TestTasks_Complete_ClosesReport(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	reports := NewReports(testPool, quiet)
	tasks := NewTasks(testPool, quiet)

	reporter := seedUser(t, "reporter", domain.RoleUser, time.Now().UTC())
	v := seedUser(t, "v", domain.RoleVolunteer, time.Now().UTC())
	other := seedUser(t, "other", domain.RoleVolunteer, time.Now().UTC())

	r := &domain.Report{ReporterID: reporter.ID, Description: "cat on roof", Point: domain.Point{Lat: 1, Lng: 2}}
	must(t, reports.Create(ctx, r))
	task := &domain.Task{Title: "Rescue", Description: r.Description}
	must(t, reports.AssignToVolunteer(ctx, r.ID, v.ID, task))

	if _, err := tasks.Complete(ctx, task.ID, other.ID, time.Now().UTC()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign task, got %v", err)
	}

	first := time.Now().UTC().Truncate(time.Microsecond)
	done, err := tasks.Complete(ctx, task.ID, v.ID, first)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(first) {
		t.Fatalf("unexpected task: %+v", done)
	}

	again, err := tasks.Complete(ctx, task.ID, v.ID, first.Add(time.Hour))
	if err != nil {
		t.Fatalf("Complete again: %v", err)
	}
	if !again.CompletedAt.Equal(first) {
		t.Fatalf("expected completion time kept, got %v", again.CompletedAt)
	}

	got, err := reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReportCompleted || got.AssigneeID == nil {
		t.Fatalf("expected COMPLETED with historical assignee, got %+v", got)
	}
}

func TestStats_CountActiveUsers(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	history := NewHistory(testPool, quiet)
	stats := NewStats(testPool, quiet)

	a := seedUser(t, "a", domain.RoleVolunteer, time.Now().UTC())
	b := seedUser(t, "b", domain.RoleUser, time.Now().UTC())
	now := time.Now().UTC()
	for _, id := range []uuid.UUID{a.ID, a.ID, b.ID} {
		must(t, history.Record(ctx, &domain.LocationHistoryEntry{UserID: id, Point: domain.Point{Lat: 1, Lng: 1}, RecordedAt: now, Role: domain.RoleUser}))
	}
	must(t, history.Record(ctx, &domain.LocationHistoryEntry{UserID: b.ID, Point: domain.Point{Lat: 1, Lng: 1}, RecordedAt: now.Add(-2 * time.Hour), Role: domain.RoleUser}))

	users, err := stats.CountActiveUsers(ctx, 60)
	if err != nil || users != 2 {
		t.Fatalf("CountActiveUsers: n=%d err=%v", users, err)
	}
	updates, err := stats.CountUpdates(ctx, 60)
	if err != nil || updates != 3 {
		t.Fatalf("CountUpdates: n=%d err=%v", updates, err)
	}
	if _, err := stats.CountUpdates(ctx, 0); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
