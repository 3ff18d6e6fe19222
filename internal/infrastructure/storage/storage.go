// Package storage saves uploaded product images and returns the URL the
// API should hand back to clients.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ImageStore persists an image and returns its public location.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalStore writes images under Dir; they are served from URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir, urlPrefix string) *LocalStore {
	return &LocalStore{Dir: dir, URLPrefix: urlPrefix}
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("storage: invalid filename %q", filename)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	// keep the original name unless it is taken
	target := filepath.Join(s.Dir, name)
	if _, err := os.Stat(target); err == nil {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + "_" + uuid.NewString()[:8] + ext
		target = filepath.Join(s.Dir, name)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return path.Join("/", s.URLPrefix, name), nil
}

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryStore uploads images to Cloudinary and returns the secure URL.
type CloudinaryStore struct {
	upload uploadAPI
	folder string
}

// NewCloudinaryStore configures the client from a cloudinary:// URL.
func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("storage: cloudinary init: %w", err)
	}
	return &CloudinaryStore{upload: &cld.Upload, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	res, err := s.upload.Upload(ctx, r, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", fmt.Errorf("storage: cloudinary upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("storage: cloudinary upload %s: %s", filename, res.Error.Message)
	}
	log.Printf("storage: uploaded %s as %s", filename, res.PublicID)
	return res.SecureURL, nil
}

// New picks Cloudinary when a URL is configured, local disk otherwise.
func New(cloudinaryURL, uploadDir string) (ImageStore, error) {
	if cloudinaryURL != "" {
		return NewCloudinaryStore(cloudinaryURL, "products")
	}
	return NewLocalStore(uploadDir, "/images"), nil
}
