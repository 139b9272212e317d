package service

import (
	"context"
	"errors"
	"testing"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockGalleryRepository — func-field stub for unit tests
// ---------------------------------------------------------------------------

type mockGalleryRepository struct {
	listFunc    func(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error)
	getByIDFunc func(ctx context.Context, id string) (*model.GalleryItem, error)
	createFunc  func(ctx context.Context, item *model.GalleryItem) error
	updateFunc  func(ctx context.Context, id string, patch model.GalleryPatch) error
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockGalleryRepository) List(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filters, limit, cursor)
	}
	return &model.GalleryPage{}, nil
}

func (m *mockGalleryRepository) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGalleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockGalleryRepository) Update(ctx context.Context, id string, patch model.GalleryPatch) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil
}

func (m *mockGalleryRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestGalleryService_List_DefaultPageSize(t *testing.T) {
	var capturedLimit int
	var capturedFilters model.GalleryFilters
	repo := &mockGalleryRepository{
		listFunc: func(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error) {
			capturedLimit = limit
			capturedFilters = filters
			return &model.GalleryPage{}, nil
		},
	}
	svc := NewGalleryService(repo)

	category := model.GallerySketch
	_, err := svc.List(context.Background(), GalleryListOptions{
		Filters: model.GalleryFilters{Category: &category},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if capturedLimit != DefaultGalleryPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultGalleryPageSize, capturedLimit)
	}
	if capturedFilters.Category == nil || *capturedFilters.Category != category {
		t.Errorf("expected category filter to pass through, got %v", capturedFilters.Category)
	}
}

func TestGalleryService_List_ExplicitPageSizeKept(t *testing.T) {
	var capturedLimit int
	var capturedCursor string
	repo := &mockGalleryRepository{
		listFunc: func(ctx context.Context, filters model.GalleryFilters, limit int, cursor string) (*model.GalleryPage, error) {
			capturedLimit = limit
			capturedCursor = cursor
			return &model.GalleryPage{}, nil
		},
	}
	svc := NewGalleryService(repo)

	_, err := svc.List(context.Background(), GalleryListOptions{PageSize: 5, Cursor: "tok"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if capturedLimit != 5 {
		t.Errorf("expected page size 5, got %d", capturedLimit)
	}
	if capturedCursor != "tok" {
		t.Errorf("expected cursor to pass through, got %q", capturedCursor)
	}
}

func TestGalleryService_GetByID_MissingIsNil(t *testing.T) {
	svc := NewGalleryService(&mockGalleryRepository{})

	item, err := svc.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestGalleryService_GetByID_RepositoryError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewGalleryService(&mockGalleryRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.GalleryItem, error) {
			return nil, boom
		},
	})

	_, err := svc.GetByID(context.Background(), "any")
	if !errors.Is(err, boom) {
		t.Errorf("expected repository error to propagate, got %v", err)
	}
}

func TestGalleryService_Create_ReturnsID(t *testing.T) {
	svc := NewGalleryService(&mockGalleryRepository{
		createFunc: func(ctx context.Context, item *model.GalleryItem) error {
			item.ID = "gal-1"
			return nil
		},
	})

	id, err := svc.Create(context.Background(), &model.GalleryItem{Title: "Piece"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != "gal-1" {
		t.Errorf("expected id gal-1, got %q", id)
	}
}
