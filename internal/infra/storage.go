package infra

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Upload subdirectories under the public uploads root.
const (
	SubdirProducts = ""
	SubdirRepairs  = "repairs"
)

const maxUploadSize = 5 << 20 // 5 MiB

// Upload errors surface to clients as 400, not 500.
var (
	ErrFileTooLarge = errors.New("El archivo es demasiado grande")
	ErrBadFileType  = errors.New("Formato de archivo no soportado")
)

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// Storage writes multipart uploads to local disk and builds the public URL
// they are served back under (/uploads/...).
type Storage struct {
	root    string
	baseURL string
}

// NewStorage creates the uploads directories if missing. Empty directories do
// not survive some deploy targets, so this runs on every boot.
func NewStorage(root, baseURL string) (*Storage, error) {
	for _, dir := range []string{root, filepath.Join(root, SubdirRepairs)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
		}
	}
	return &Storage{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root returns the on-disk uploads directory, for static file serving.
func (s *Storage) Root() string { return s.root }

// Save persists one uploaded file under subdir and returns its public URL.
// Large raster images are downscaled first (see shrinkImage). The stored name
// is <field>-<unix-ms>-<random><ext> to avoid collisions.
func (s *Storage) Save(fh *multipart.FileHeader, subdir, field string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadFileType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)

	if fh.Size > shrinkThreshold && ext != ".webp" {
		// Re-encoded output is always JPEG
		name = strings.TrimSuffix(name, ext) + ".jpg"
		if err := shrinkImage(src, ext, filepath.Join(s.root, subdir, name)); err != nil {
			return "", err
		}
		return s.publicURL(subdir, name), nil
	}

	dst, err := os.Create(filepath.Join(s.root, subdir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.publicURL(subdir, name), nil
}

func (s *Storage) publicURL(subdir, name string) string {
	return s.baseURL + "/" + path.Join("uploads", subdir, name)
}
