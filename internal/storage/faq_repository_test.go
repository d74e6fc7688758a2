package storage

import (
	"context"
	"testing"
)

func TestFAQCatalog(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	faqs := []FAQEntry{
		{ID: 1, Question: "What is the passing criteria for C Programming?", Answer: "You need a minimum of 50% in internals and externals combined.", IsActive: true},
		{ID: 2, Question: "Where can I find the lab manual?", Answer: "The lab manual is available on Moodle under the C Programming course page.", IsActive: true},
		{ID: 3, Question: "Retired question", Answer: "Old answer.", IsActive: false},
	}
	if err := db.SaveFAQs(ctx, faqs); err != nil {
		t.Fatalf("SaveFAQs failed: %v", err)
	}

	catalog, err := db.FAQCatalog(ctx)
	if err != nil {
		t.Fatalf("FAQCatalog failed: %v", err)
	}

	// Inactive entries are excluded, remaining rows keep catalog order
	if len(catalog) != 2 {
		t.Fatalf("Expected 2 active FAQs, got %d", len(catalog))
	}
	if catalog[0].ID != 1 || catalog[1].ID != 2 {
		t.Errorf("Expected FAQs ordered by id, got %d, %d", catalog[0].ID, catalog[1].ID)
	}
	if catalog[0].Question != "What is the passing criteria for C Programming?" {
		t.Errorf("Unexpected first question: %q", catalog[0].Question)
	}
}

func TestSaveFAQs_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	initial := []FAQEntry{{ID: 1, Question: "When are internal exams conducted?", Answer: "Internal exams are held in weeks 6, 11 and 15.", IsActive: true}}
	if err := db.SaveFAQs(ctx, initial); err != nil {
		t.Fatalf("SaveFAQs failed: %v", err)
	}

	update := []FAQEntry{{ID: 1, Question: "When are internal exams conducted?", Answer: "Internal exams are held in weeks 6, 11 and 15. Check the notice board for exact dates.", IsActive: true}}
	if err := db.SaveFAQs(ctx, update); err != nil {
		t.Fatalf("SaveFAQs failed: %v", err)
	}

	count, err := db.CountFAQs(ctx)
	if err != nil {
		t.Fatalf("CountFAQs failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Upsert created a duplicate: expected 1 FAQ, got %d", count)
	}

	catalog, err := db.FAQCatalog(ctx)
	if err != nil {
		t.Fatalf("FAQCatalog failed: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("Expected 1 FAQ, got %d", len(catalog))
	}
	if catalog[0].Answer == "Internal exams are held in weeks 6, 11 and 15." {
		t.Error("Expected answer to be updated by upsert")
	}
}

func TestCountFAQs_ActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	faqs := []FAQEntry{
		{ID: 1, Question: "Q1", Answer: "A1", IsActive: true},
		{ID: 2, Question: "Q2", Answer: "A2", IsActive: false},
	}
	if err := db.SaveFAQs(ctx, faqs); err != nil {
		t.Fatalf("SaveFAQs failed: %v", err)
	}

	count, err := db.CountFAQs(ctx)
	if err != nil {
		t.Fatalf("CountFAQs failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 active FAQ, got %d", count)
	}
}
