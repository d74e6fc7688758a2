package storage

import (
	"context"
	"testing"
)

// seedDailyFixture layers daily entries for Wednesday 2026-01-07 on top of
// the schedule fixture: one absence, one swap and one regular filled period.
func seedDailyFixture(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	seedScheduleFixture(t, db)

	sessions := []SyllabusSession{
		{SessionNumber: 31, Title: "Introduction to Pointers", Unit: 5, Topics: "Pointer basics, address-of and dereference operators"},
	}
	if err := db.SaveSyllabusSessions(ctx, sessions); err != nil {
		t.Fatalf("SaveSyllabusSessions failed: %v", err)
	}

	entries := []*DailyEntry{
		{FacultyID: 1, DepartmentCode: "AIDS-A", Date: "2026-01-07", Period: 5, SessionNumber: 31, Summary: "Covered pointer declaration and dereferencing"},
		{FacultyID: 1, DepartmentCode: "AIDS-A", Date: "2026-01-07", Period: 7, IsAbsent: true},
		{FacultyID: 5, DepartmentCode: "CSE-A", Date: "2026-01-07", Period: 7, IsSwapped: true, SwappedWith: "Sathish R", SwapType: "period"},
		{FacultyID: 5, DepartmentCode: "CSE-A", Date: "2026-01-05", Period: 5, Summary: "Loops recap"},
	}
	for _, entry := range entries {
		if err := db.SaveDailyEntry(ctx, entry); err != nil {
			t.Fatalf("SaveDailyEntry failed: %v", err)
		}
	}
}

func TestDailyStatus(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)
	ctx := context.Background()

	statuses, err := db.DailyStatus(ctx, "2026-01-07", StatusFilter{})
	if err != nil {
		t.Fatalf("DailyStatus failed: %v", err)
	}

	if len(statuses) != 3 {
		t.Fatalf("Expected 3 entries for 2026-01-07, got %d", len(statuses))
	}

	// Ordered by period; the filled period 5 entry carries the session join
	first := statuses[0]
	if first.Period != 5 {
		t.Errorf("Expected period 5 first, got %d", first.Period)
	}
	if first.SessionNumber != 31 || first.SessionTitle != "Introduction to Pointers" {
		t.Errorf("Expected session 31 joined with title, got %d %q", first.SessionNumber, first.SessionTitle)
	}
	if first.FacultyName != "Sathish R" || first.DepartmentCode != "AIDS-A" {
		t.Errorf("Expected joined faculty/department details, got %+v", first)
	}
}

func TestDailyStatus_AbsentOnly(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)

	statuses, err := db.DailyStatus(context.Background(), "2026-01-07", StatusFilter{AbsentOnly: true})
	if err != nil {
		t.Fatalf("DailyStatus failed: %v", err)
	}

	if len(statuses) != 1 {
		t.Fatalf("Expected 1 absent entry, got %d", len(statuses))
	}
	if !statuses[0].IsAbsent || statuses[0].FacultyName != "Sathish R" || statuses[0].Period != 7 {
		t.Errorf("Expected Sathish R absent in period 7, got %+v", statuses[0])
	}
}

func TestDailyStatus_FacultyFilter(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)

	statuses, err := db.DailyStatus(context.Background(), "2026-01-07", StatusFilter{FacultyID: 5})
	if err != nil {
		t.Fatalf("DailyStatus failed: %v", err)
	}

	if len(statuses) != 1 {
		t.Fatalf("Expected 1 entry for faculty 5, got %d", len(statuses))
	}
	status := statuses[0]
	if !status.IsSwapped || status.SwappedWith != "Sathish R" || status.SwapType != "period" {
		t.Errorf("Expected swap fields populated, got %+v", status)
	}
}

func TestDailyStatus_EmptyDate(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)

	statuses, err := db.DailyStatus(context.Background(), "2026-03-02", StatusFilter{})
	if err != nil {
		t.Fatalf("DailyStatus failed: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("Expected no entries for an unfilled date, got %d", len(statuses))
	}
}

func TestTodaySummaryCounts(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)

	// 2026-01-07 is a Wednesday: 3 scheduled slots, 3 filled entries
	counts, err := db.TodaySummaryCounts(context.Background(), "2026-01-07")
	if err != nil {
		t.Fatalf("TodaySummaryCounts failed: %v", err)
	}

	if counts.Scheduled != 3 {
		t.Errorf("Expected 3 scheduled, got %d", counts.Scheduled)
	}
	if counts.Filled != 3 {
		t.Errorf("Expected 3 filled, got %d", counts.Filled)
	}
	if counts.Pending != 0 {
		t.Errorf("Expected 0 pending, got %d", counts.Pending)
	}
	if counts.Absent != 1 {
		t.Errorf("Expected 1 absent, got %d", counts.Absent)
	}
	if counts.Swapped != 1 {
		t.Errorf("Expected 1 swapped, got %d", counts.Swapped)
	}
}

func TestTodaySummaryCounts_NoEntries(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)

	// 2026-01-09 is a Friday: one scheduled slot, nothing filled
	counts, err := db.TodaySummaryCounts(context.Background(), "2026-01-09")
	if err != nil {
		t.Fatalf("TodaySummaryCounts failed: %v", err)
	}

	if counts.Scheduled != 1 {
		t.Errorf("Expected 1 scheduled on Friday, got %d", counts.Scheduled)
	}
	if counts.Filled != 0 || counts.Absent != 0 {
		t.Errorf("Expected no filled entries, got %+v", counts)
	}
	if counts.Pending != 1 {
		t.Errorf("Expected 1 pending, got %d", counts.Pending)
	}
}

func TestTodaySummaryCounts_BadDate(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	if _, err := db.TodaySummaryCounts(context.Background(), "07/01/2026"); err == nil {
		t.Error("Expected error for malformed date, got nil")
	}
}

func TestTeachingHistory(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)
	ctx := context.Background()

	records, err := db.TeachingHistory(ctx, HistoryFilter{}, 10)
	if err != nil {
		t.Fatalf("TeachingHistory failed: %v", err)
	}

	// The absence marker is excluded; 3 teaching records remain
	if len(records) != 3 {
		t.Fatalf("Expected 3 teaching records, got %d", len(records))
	}

	// Newest first
	if records[0].Date != "2026-01-07" {
		t.Errorf("Expected newest record first, got date %s", records[0].Date)
	}
	if records[len(records)-1].Date != "2026-01-05" {
		t.Errorf("Expected oldest record last, got date %s", records[len(records)-1].Date)
	}

	// Limit caps the rows
	limited, err := db.TeachingHistory(ctx, HistoryFilter{}, 1)
	if err != nil {
		t.Fatalf("TeachingHistory failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit of 1 record, got %d", len(limited))
	}

	// Faculty filter
	filtered, err := db.TeachingHistory(ctx, HistoryFilter{FacultyID: 5}, 10)
	if err != nil {
		t.Fatalf("TeachingHistory failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("Expected 2 records for faculty 5, got %d", len(filtered))
	}
}

func TestSaveDailyEntry_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)
	ctx := context.Background()

	// Refill the same slot with a new summary
	update := &DailyEntry{
		FacultyID:      1,
		DepartmentCode: "AIDS-A",
		Date:           "2026-01-07",
		Period:         5,
		SessionNumber:  31,
		Summary:        "Re-taught pointer arithmetic with examples",
	}
	if err := db.SaveDailyEntry(ctx, update); err != nil {
		t.Fatalf("SaveDailyEntry failed: %v", err)
	}

	statuses, err := db.DailyStatus(ctx, "2026-01-07", StatusFilter{FacultyID: 1})
	if err != nil {
		t.Fatalf("DailyStatus failed: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("Upsert created a duplicate: expected 2 entries, got %d", len(statuses))
	}
	if statuses[0].Summary != "Re-taught pointer arithmetic with examples" {
		t.Errorf("Expected updated summary, got %q", statuses[0].Summary)
	}
}

func TestPruneDailyEntries(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedDailyFixture(t, db)
	ctx := context.Background()

	deleted, err := db.PruneDailyEntries(ctx, "2026-01-07")
	if err != nil {
		t.Fatalf("PruneDailyEntries failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 pruned entry (2026-01-05), got %d", deleted)
	}

	remaining, err := db.CountDailyEntries(ctx)
	if err != nil {
		t.Fatalf("CountDailyEntries failed: %v", err)
	}
	if remaining != 3 {
		t.Errorf("Expected 3 remaining entries, got %d", remaining)
	}
}
