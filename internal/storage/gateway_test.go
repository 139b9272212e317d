package storage

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

// filenamePattern matches the generated object name: <unix-ms>-<uuid><ext>.
var filenamePattern = regexp.MustCompile(`^\d+-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(NewLocalStorage(t.TempDir(), "/uploads"))
}

func TestGateway_Upload_GeneratedFilename(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	url, err := g.Upload(ctx, strings.NewReader("x"), "Original Photo.JPG", UploadOptions{Folder: FolderProjects})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/projects/") {
		t.Errorf("expected url under /uploads/projects/, got %q", url)
	}
	name := url[strings.LastIndex(url, "/")+1:]
	if !filenamePattern.MatchString(name) {
		t.Errorf("generated filename %q does not match <unix-ms>-<uuid>.jpg", name)
	}
}

func TestGateway_Upload_SubfolderAndExplicitName(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	url, err := g.Upload(ctx, strings.NewReader("x"), "a.png", UploadOptions{
		Folder:    FolderGallery,
		Subfolder: "sketches",
		Filename:  "fixed.png",
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if url != "/uploads/gallery/sketches/fixed.png" {
		t.Errorf("unexpected url: %q", url)
	}
}

func TestGateway_Upload_InvalidFolder(t *testing.T) {
	g := newTestGateway(t)

	_, err := g.Upload(context.Background(), strings.NewReader("x"), "a.jpg", UploadOptions{Folder: "etc"})
	if !errors.Is(err, ErrInvalidFolder) {
		t.Errorf("expected ErrInvalidFolder, got %v", err)
	}
}

// TestGateway_UploadWithProgress_Fractions verifies progress moves through
// (0, 1] and ends exactly at 1.
func TestGateway_UploadWithProgress_Fractions(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	content := strings.Repeat("a", 64*1024)
	var fractions []float64
	opts := UploadOptions{
		Folder: FolderUploads,
		OnProgress: func(f float64) {
			fractions = append(fractions, f)
		},
	}

	_, err := g.UploadWithProgress(ctx, strings.NewReader(content), int64(len(content)), "big.jpg", opts)
	if err != nil {
		t.Fatalf("UploadWithProgress failed: %v", err)
	}
	if len(fractions) == 0 {
		t.Fatal("expected at least one progress callback")
	}
	for i, f := range fractions {
		if f <= 0 || f > 1 {
			t.Errorf("fraction %d out of range: %v", i, f)
		}
		if i > 0 && f < fractions[i-1] {
			t.Errorf("fractions regressed: %v -> %v", fractions[i-1], f)
		}
	}
	if last := fractions[len(fractions)-1]; last != 1 {
		t.Errorf("expected final fraction 1, got %v", last)
	}
}

func TestGateway_UploadWithProgress_CancelledContext(t *testing.T) {
	g := newTestGateway(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.UploadWithProgress(ctx, strings.NewReader("data"), 4, "a.jpg", UploadOptions{Folder: FolderUploads})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

// TestGateway_UploadAll_OrderPreserved verifies URLs come back in input
// order even though uploads run concurrently.
func TestGateway_UploadAll_OrderPreserved(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	files := []File{
		{Name: "one.jpg", Data: strings.NewReader("1")},
		{Name: "two.jpg", Data: strings.NewReader("2")},
		{Name: "three.jpg", Data: strings.NewReader("3")},
	}
	urls, err := g.UploadAll(ctx, files, UploadOptions{Folder: FolderProjects})
	if err != nil {
		t.Fatalf("UploadAll failed: %v", err)
	}
	if len(urls) != 3 {
		t.Fatalf("expected 3 urls, got %d", len(urls))
	}
	for i, url := range urls {
		if url == "" {
			t.Errorf("url %d is empty", i)
		}
	}
}

// ---------------------------------------------------------------------------
// delete tolerance
// ---------------------------------------------------------------------------

func TestGateway_DeleteByURL_MissingIsSuccess(t *testing.T) {
	g := newTestGateway(t)

	if err := g.DeleteByURL(context.Background(), "/uploads/projects/long-gone.jpg"); err != nil {
		t.Errorf("expected missing object to be tolerated, got %v", err)
	}
}

func TestGateway_DeleteByURL_ForeignIsSuccess(t *testing.T) {
	g := newTestGateway(t)

	if err := g.DeleteByURL(context.Background(), "https://cdn.example.com/x.jpg"); err != nil {
		t.Errorf("expected foreign URL to be tolerated, got %v", err)
	}
}

func TestGateway_DeleteByURL_RemovesObject(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	url, err := g.Upload(ctx, strings.NewReader("x"), "a.jpg", UploadOptions{Folder: FolderGallery})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if err := g.DeleteByURL(ctx, url); err != nil {
		t.Fatalf("DeleteByURL failed: %v", err)
	}

	objects, err := g.ListFiles(ctx, FolderGallery, "")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(objects) != 0 {
		t.Errorf("expected empty folder after delete, got %v", objects)
	}
}

func TestGateway_DeleteByPath_MissingIsError(t *testing.T) {
	g := newTestGateway(t)

	err := g.DeleteByPath(context.Background(), "projects/nope.jpg")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("expected strict ErrNotExist, got %v", err)
	}
}

func TestGateway_ListFiles(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	if _, err := g.Upload(ctx, strings.NewReader("x"), "a.jpg", UploadOptions{Folder: FolderAbout}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	objects, err := g.ListFiles(ctx, FolderAbout, "")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objects))
	}
	if objects[0].Name == "" || !strings.HasPrefix(objects[0].URL, "/uploads/about/") {
		t.Errorf("unexpected object: %+v", objects[0])
	}

	if _, err := g.ListFiles(ctx, "bogus", ""); !errors.Is(err, ErrInvalidFolder) {
		t.Errorf("expected ErrInvalidFolder, got %v", err)
	}
}
