package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Folder is the fixed set of top-level storage folders.
type Folder string

const (
	FolderProjects Folder = "projects"
	FolderGallery  Folder = "gallery"
	FolderAbout    Folder = "about"
	FolderUploads  Folder = "uploads"
)

// Valid reports whether f is one of the known storage folders.
func (f Folder) Valid() bool {
	switch f {
	case FolderProjects, FolderGallery, FolderAbout, FolderUploads:
		return true
	}
	return false
}

// ErrInvalidFolder is returned for uploads outside the fixed folder set.
var ErrInvalidFolder = errors.New("storage: invalid folder")

// UploadOptions controls where an upload lands. Filename is generated from
// the original name when empty. OnProgress, when set, receives the upload
// fraction in [0, 1] on every read tick (progress uploads only).
type UploadOptions struct {
	Folder     Folder
	Subfolder  string
	Filename   string
	OnProgress func(fraction float64)
}

// File pairs an original filename with its content, for batch uploads.
type File struct {
	Name string
	Data io.Reader
}

// Object is one stored object in a listing.
type Object struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Gateway is the upload/delete/list surface over a Storage backend. It owns
// the path convention <folder>/[<subfolder>/]<filename>.
type Gateway struct {
	store Storage
}

// NewGateway creates a Gateway over the given store.
func NewGateway(store Storage) *Gateway {
	return &Gateway{store: store}
}

// objectKey builds the storage key for an upload, generating a unique
// filename from the original name when none is supplied.
func objectKey(opts UploadOptions, originalName string) (string, error) {
	if !opts.Folder.Valid() {
		return "", ErrInvalidFolder
	}
	name := opts.Filename
	if name == "" {
		name = generateFilename(originalName)
	}
	if opts.Subfolder != "" {
		return path.Join(string(opts.Folder), opts.Subfolder, name), nil
	}
	return path.Join(string(opts.Folder), name), nil
}

// generateFilename builds a collision-free object name that keeps the
// original extension: <unix-ms>-<uuid><ext>.
func generateFilename(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// Upload stores the content and returns its public URL.
func (g *Gateway) Upload(ctx context.Context, data io.Reader, originalName string, opts UploadOptions) (string, error) {
	key, err := objectKey(opts, originalName)
	if err != nil {
		return "", err
	}
	return g.store.Save(ctx, key, data, "")
}

// UploadWithProgress stores the content, reporting the transferred fraction
// through opts.OnProgress as bytes move. size is the total content length.
// Cancelling ctx aborts the transfer at the next read.
func (g *Gateway) UploadWithProgress(ctx context.Context, data io.Reader, size int64, originalName string, opts UploadOptions) (string, error) {
	key, err := objectKey(opts, originalName)
	if err != nil {
		return "", err
	}
	pr := &progressReader{
		ctx:        ctx,
		r:          data,
		total:      size,
		onProgress: opts.OnProgress,
	}
	return g.store.Save(ctx, key, pr, "")
}

// UploadAll uploads every file concurrently and returns their URLs in input
// order. The first failure cancels the rest and is returned; already
// written objects are not rolled back.
func (g *Gateway) UploadAll(ctx context.Context, files []File, opts UploadOptions) ([]string, error) {
	urls := make([]string, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		eg.Go(func() error {
			url, err := g.Upload(ctx, f.Data, f.Name, opts)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// DeleteByURL removes the object a public URL points at. A URL for an
// already-removed object is a benign, expected case (callers often delete
// then recreate), so it is logged and treated as success. Any other
// failure propagates.
func (g *Gateway) DeleteByURL(ctx context.Context, url string) error {
	key, ok := g.store.KeyForURL(url)
	if !ok {
		slog.Warn("delete for foreign or malformed url skipped", "url", url)
		return nil
	}
	if err := g.store.Delete(ctx, key); err != nil {
		if errors.Is(err, ErrNotExist) {
			slog.Warn("object already gone", "key", key)
			return nil
		}
		return err
	}
	return nil
}

// DeleteByPath removes the object at a caller-verified store path. Strict:
// every failure, including a missing object, propagates.
func (g *Gateway) DeleteByPath(ctx context.Context, p string) error {
	return g.store.Delete(ctx, p)
}

// DeleteAllByURL deletes every URL concurrently, inheriting DeleteByURL's
// missing-object tolerance per call.
func (g *Gateway) DeleteAllByURL(ctx context.Context, urls []string) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		eg.Go(func() error {
			return g.DeleteByURL(ctx, url)
		})
	}
	return eg.Wait()
}

// ListFiles enumerates the objects under folder/subfolder with a resolved
// public URL for each.
func (g *Gateway) ListFiles(ctx context.Context, folder Folder, subfolder string) ([]Object, error) {
	if !folder.Valid() {
		return nil, ErrInvalidFolder
	}
	prefix := string(folder)
	if subfolder != "" {
		prefix = path.Join(prefix, subfolder)
	}
	keys, err := g.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	objects := make([]Object, len(keys))
	for i, key := range keys {
		objects[i] = Object{Name: path.Base(key), URL: g.store.URL(key)}
	}
	return objects, nil
}

// progressReader reports the cumulative fraction transferred after every
// read and aborts when its context is cancelled.
type progressReader struct {
	ctx        context.Context
	r          io.Reader
	total      int64
	read       int64
	onProgress func(float64)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += int64(n)
		if pr.onProgress != nil && pr.total > 0 {
			pr.onProgress(float64(pr.read) / float64(pr.total))
		}
	}
	return n, err
}
