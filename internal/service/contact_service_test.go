package service

import (
	"context"
	"errors"
	"testing"

	"github.com/veldwerk/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository — func-field stub for unit tests
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc      func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc        func(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error)
	getByIDFunc     func(ctx context.Context, id string) (*model.ContactSubmission, error)
	setReadFunc     func(ctx context.Context, id string, read bool) error
	setArchivedFunc func(ctx context.Context, id string, archived bool) error
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return &model.ContactPage{}, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) SetRead(ctx context.Context, id string, read bool) error {
	if m.setReadFunc != nil {
		return m.setReadFunc(ctx, id, read)
	}
	return nil
}

func (m *mockContactRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	if m.setArchivedFunc != nil {
		return m.setArchivedFunc(ctx, id, archived)
	}
	return nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

// TestContactService_Submit_ForcesModerationFlags verifies a submission
// claiming to be read/archived is stored unread and unarchived anyway.
func TestContactService_Submit_ForcesModerationFlags(t *testing.T) {
	var saved *model.ContactSubmission
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			sub.ID = "sub-1"
			saved = sub
			return nil
		},
	}
	svc := NewContactService(mock)

	sub := &model.ContactSubmission{
		Name:     "Mallory",
		Email:    "m@example.com",
		Message:  "hi",
		Read:     true,
		Archived: true,
	}
	id, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "sub-1" {
		t.Errorf("expected id sub-1, got %q", id)
	}
	if saved == nil {
		t.Fatal("expected Create to be called")
	}
	if saved.Read {
		t.Error("expected read flag forced to false")
	}
	if saved.Archived {
		t.Error("expected archived flag forced to false")
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("db write failed")
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.Submit(context.Background(), &model.ContactSubmission{}); err == nil {
		t.Error("expected error from repository, got nil")
	}
}

// ---------------------------------------------------------------------------
// List / flag tests
// ---------------------------------------------------------------------------

func TestContactService_List_DefaultPageSize(t *testing.T) {
	var captured model.ContactListOptions
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
			captured = opts
			return &model.ContactPage{}, nil
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.List(context.Background(), model.ContactListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.PageSize != DefaultContactPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultContactPageSize, captured.PageSize)
	}
	if captured.IncludeArchived {
		t.Error("expected archived excluded by default")
	}
}

func TestContactService_MarkReadAndArchive(t *testing.T) {
	var readID string
	var readVal bool
	var archivedID string
	var archivedVal bool
	mock := &mockContactRepository{
		setReadFunc: func(ctx context.Context, id string, read bool) error {
			readID, readVal = id, read
			return nil
		},
		setArchivedFunc: func(ctx context.Context, id string, archived bool) error {
			archivedID, archivedVal = id, archived
			return nil
		},
	}
	svc := NewContactService(mock)

	if err := svc.MarkRead(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readID != "a" || !readVal {
		t.Errorf("expected SetRead(a, true), got (%q, %v)", readID, readVal)
	}

	if err := svc.Archive(context.Background(), "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if archivedID != "b" || !archivedVal {
		t.Errorf("expected SetArchived(b, true), got (%q, %v)", archivedID, archivedVal)
	}
}
