package storage

import (
	"encoding/base64" // Base64 encoding for the inline strategy
	"os"              // File IO for the disk strategy
	"path/filepath"   // Path handling
	"strings"         // Prefix handling on references

	"github.com/google/uuid" // Unique filenames
)

// ImageMeta describes the image being stored
type ImageMeta struct {
	UserID      string // Owning user ID
	ImageType   string // profile or banner
	ContentType string // MIME type of the payload
	Filename    string // Original filename, only its extension is kept
}

// ImageStore persists image bytes and returns a reference the client can use
// directly (a URL or a data URI). Remove is best effort.
type ImageStore interface {
	Store(data []byte, meta ImageMeta) (string, error)
	Remove(reference string) error
}

// DiskStore writes images under a local directory and references them by URL
type DiskStore struct {
	Dir       string // Directory files are written to
	URLPrefix string // Public URL prefix the directory is mounted under
}

// NewDiskStore creates the upload directory if missing and returns the store
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err // Directory could not be created
	}
	return &DiskStore{Dir: dir, URLPrefix: "/uploads"}, nil
}

// Store writes the bytes under a generated unique name and returns its URL
func (s *DiskStore) Store(data []byte, meta ImageMeta) (string, error) {
	ext := filepath.Ext(meta.Filename) // Keep the original extension
	// Unique name so concurrent uploads never collide
	name := meta.UserID + "_" + meta.ImageType + "_" + uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", err // Write failed
	}
	return s.URLPrefix + "/" + name, nil // Reference is the public URL
}

// Remove deletes the file a previously returned URL points at
func (s *DiskStore) Remove(reference string) error {
	if !strings.HasPrefix(reference, s.URLPrefix+"/") {
		return os.ErrNotExist // Reference was not produced by this store
	}
	name := strings.TrimPrefix(reference, s.URLPrefix+"/") // Back from URL to filename
	return os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
}

// InlineStore encodes images as base64 data URIs kept directly on the record
type InlineStore struct{}

// Store returns the bytes as a data URI; nothing touches disk
func (InlineStore) Store(data []byte, meta ImageMeta) (string, error) {
	return "data:" + meta.ContentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Remove is a no-op, inline references have no backing file
func (InlineStore) Remove(reference string) error { return nil }
