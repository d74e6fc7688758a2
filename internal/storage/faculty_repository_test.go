package storage

import (
	"context"
	"testing"

	domerrors "github.com/campustrack/chatbot-go/internal/errors"
)

func TestFacultyByID(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedScheduleFixture(t, db)
	ctx := context.Background()

	faculty, err := db.FacultyByID(ctx, 1)
	if err != nil {
		t.Fatalf("FacultyByID failed: %v", err)
	}

	if faculty.Name != "Sathish R" {
		t.Errorf("Expected name Sathish R, got %s", faculty.Name)
	}
	if faculty.Email != "r.sathish@kgkite.ac.in" {
		t.Errorf("Expected email r.sathish@kgkite.ac.in, got %s", faculty.Email)
	}
	if faculty.DepartmentCode != "AIDS-A" {
		t.Errorf("Expected department AIDS-A, got %s", faculty.DepartmentCode)
	}
	if !faculty.IsActive {
		t.Error("Expected faculty to be active")
	}
}

func TestFacultyByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedScheduleFixture(t, db)

	_, err := db.FacultyByID(context.Background(), 999)
	if err == nil {
		t.Fatal("Expected error for missing faculty, got nil")
	}
	if !domerrors.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestAllActiveFaculty(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedScheduleFixture(t, db)
	ctx := context.Background()

	// Deactivate one member
	inactive := []Faculty{
		{ID: 14, Name: "Madhan S", Email: "madhan.m@kgkite.ac.in", DepartmentCode: "RA", IsActive: false},
	}
	if err := db.SaveFaculty(ctx, inactive); err != nil {
		t.Fatalf("SaveFaculty failed: %v", err)
	}

	faculty, err := db.AllActiveFaculty(ctx)
	if err != nil {
		t.Fatalf("AllActiveFaculty failed: %v", err)
	}

	if len(faculty) != 2 {
		t.Fatalf("Expected 2 active faculty, got %d", len(faculty))
	}

	// Ordered by ID
	if faculty[0].ID != 1 || faculty[1].ID != 5 {
		t.Errorf("Expected IDs 1,5 in order, got %d,%d", faculty[0].ID, faculty[1].ID)
	}

	for _, f := range faculty {
		if f.Name == "Madhan S" {
			t.Error("Inactive faculty should not be returned")
		}
	}
}

func TestSaveFaculty_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	seedScheduleFixture(t, db)
	ctx := context.Background()

	update := []Faculty{
		{ID: 1, Name: "Sathish R", Email: "r.sathish@kgkite.ac.in", Phone: "9791406167", DepartmentCode: "AIDS-A", Experience: "14", ResearchArea: "Machine Learning", IsActive: true},
	}
	if err := db.SaveFaculty(ctx, update); err != nil {
		t.Fatalf("SaveFaculty failed: %v", err)
	}

	count, err := db.CountFaculty(ctx)
	if err != nil {
		t.Fatalf("CountFaculty failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Upsert created a duplicate: expected 3 faculty, got %d", count)
	}

	faculty, err := db.FacultyByID(ctx, 1)
	if err != nil {
		t.Fatalf("FacultyByID failed: %v", err)
	}
	if faculty.Experience != "14" {
		t.Errorf("Expected updated experience 14, got %s", faculty.Experience)
	}
}
