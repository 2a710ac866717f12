package services

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dimitrije/places-api/internal/models"
)

var (
	ErrImageNotFound        = errors.New("image not found")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

// galleryExtensions is what the media library lists; uploadExtensions is the
// stricter set accepted for new files (no SVG uploads).
var (
	galleryExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true,
		".gif": true, ".webp": true, ".svg": true,
	}
	uploadExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true,
		".gif": true, ".webp": true,
	}
)

// MediaService manages the flat directory of uploaded images behind the
// media library.
type MediaService struct {
	dir string
	log zerolog.Logger
}

func NewMediaService(dir string, logger zerolog.Logger) *MediaService {
	return &MediaService{dir: dir, log: logger}
}

// Gallery enumerates the image directory with size and date metadata,
// newest first. The directory is created on first use.
func (s *MediaService) Gallery() ([]models.Image, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	images := make([]models.Image, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !galleryExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable image")
			continue
		}
		images = append(images, models.Image{
			Filename:      entry.Name(),
			URL:           "/images/" + entry.Name(),
			Size:          info.Size(),
			FormattedSize: FormatFileSize(info.Size()),
			Uploaded:      info.ModTime(),
		})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].Uploaded.After(images[j].Uploaded)
	})
	return images, nil
}

// Save stores uploaded bytes under a fresh unique name, keeping only the
// extension from the client-supplied filename.
func (s *MediaService) Save(originalName string, data []byte) (models.Image, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !uploadExtensions[ext] {
		return models.Image{}, ErrUnsupportedImageType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return models.Image{}, err
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return models.Image{}, err
	}
	s.log.Info().Str("file", name).Int("bytes", len(data)).Msg("image stored")

	return models.Image{
		Filename:      name,
		URL:           "/images/" + name,
		Size:          int64(len(data)),
		FormattedSize: FormatFileSize(int64(len(data))),
	}, nil
}

// Remove deletes one image by name. Names with path separators or unknown
// extensions never reach the filesystem.
func (s *MediaService) Remove(filename string) error {
	if filename != filepath.Base(filename) ||
		!galleryExtensions[strings.ToLower(filepath.Ext(filename))] {
		return ErrImageNotFound
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return ErrImageNotFound
		}
		return err
	}
	s.log.Info().Str("file", filename).Msg("image deleted")
	return nil
}

// FormatFileSize renders a byte count the way the media library displays it,
// e.g. "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizes[i]
}
