package repositories

import (
	"context"
	"testing"

	"estateBack/internal/models"
)

func testProperty(title string) models.Property {
	return models.Property{
		Title:        title,
		Description:  "desc",
		City:         "Tirupati",
		Area:         "X",
		PropertyType: "Villas",
		Price:        "1000000",
		Sqft:         1000,
		Images:       []string{},
		Amenities:    []string{},
		Status:       "available",
		OwnerID:      "owner-1",
	}
}

func TestCreateThenGet(t *testing.T) {
	repo := NewPropertyMemoryRepository(nil)
	ctx := context.Background()

	created, err := repo.CreateProperty(ctx, testProperty("Test Villa"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}

	got, err := repo.GetPropertyByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Test Villa" || got.OwnerID != "owner-1" {
		t.Fatalf("stored record does not match input: %+v", got)
	}
}

func TestListInsertionOrder(t *testing.T) {
	repo := NewPropertyMemoryRepository(nil)
	ctx := context.Background()

	titles := []string{"first", "second", "third", "fourth"}
	for _, title := range titles {
		if _, err := repo.CreateProperty(ctx, testProperty(title)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Repeated calls with no intervening writes must return the same order.
	for i := 0; i < 3; i++ {
		properties, err := repo.GetProperties(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(properties) != len(titles) {
			t.Fatalf("expected %d properties, got %d", len(titles), len(properties))
		}
		for j, p := range properties {
			if p.Title != titles[j] {
				t.Fatalf("expected %q at position %d, got %q", titles[j], j, p.Title)
			}
		}
	}
}

func TestUpdateMissingDoesNotMutate(t *testing.T) {
	repo := NewPropertyMemoryRepository(nil)
	ctx := context.Background()

	created, _ := repo.CreateProperty(ctx, testProperty("keep me"))

	missing := testProperty("ghost")
	missing.ID = "no-such-id"
	if _, err := repo.UpdateProperty(ctx, missing); err != models.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}

	properties, _ := repo.GetProperties(ctx)
	if len(properties) != 1 || properties[0].ID != created.ID {
		t.Fatalf("store mutated by failed update: %+v", properties)
	}
}

func TestDelete(t *testing.T) {
	repo := NewPropertyMemoryRepository(nil)
	ctx := context.Background()

	if err := repo.DeleteProperty(ctx, "absent"); err != models.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}

	created, _ := repo.CreateProperty(ctx, testProperty("doomed"))
	if err := repo.DeleteProperty(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.GetPropertyByID(ctx, created.ID); err != models.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound after delete, got %v", err)
	}
}

func TestSeededRepository(t *testing.T) {
	repo := NewPropertyMemoryRepository(SeedProperties())
	properties, err := repo.GetProperties(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(properties) != len(SeedProperties()) {
		t.Fatalf("expected %d seeded properties, got %d", len(SeedProperties()), len(properties))
	}
	for _, p := range properties {
		if p.ID == "" {
			t.Fatalf("seeded property %q has no id", p.Title)
		}
	}
}
