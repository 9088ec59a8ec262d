package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"
	"filmio-backend/internal/repositories/photos"
	"filmio-backend/internal/storage"
)

// extensionByMIME is the upload allow-list.
var extensionByMIME = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// ExtensionForMIME maps an upload content type to the stored file extension.
func ExtensionForMIME(mime string) (string, bool) {
	ext, ok := extensionByMIME[mime]
	return ext, ok
}

type PhotoService struct {
	photos photos.Repository
	blobs  storage.BlobStore
}

func NewPhotoService(photos photos.Repository, blobs storage.BlobStore) *PhotoService {
	return &PhotoService{photos: photos, blobs: blobs}
}

// Ingest stores an uploaded image under its content hash. Re-uploading
// identical bytes returns the existing record without writing anything, so
// the operation is safe to repeat.
func (s *PhotoService) Ingest(ctx context.Context, r io.Reader, mime string) (*models.Photo, error) {
	ext, ok := ExtensionForMIME(mime)
	if !ok {
		return nil, common.ErrUnsupportedMedia
	}

	h := sha1.New()
	var buf bytes.Buffer
	if _, err := io.Copy(h, io.TeeReader(r, &buf)); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	hash := hex.EncodeToString(h.Sum(nil))

	existing, err := s.photos.GetByHash(ctx, hash)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		// Declared an allowed type but the bytes aren't a decodable image.
		return nil, common.ErrUnsupportedMedia
	}

	if err := s.blobs.Save(ctx, hash, ext, bytes.NewReader(buf.Bytes())); err != nil {
		return nil, fmt.Errorf("saving photo: %w", err)
	}
	photo := &models.Photo{
		Hash:              hash,
		OriginalExtension: ext,
		Width:             cfg.Width,
		Height:            cfg.Height,
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}

	// Read back so the response reflects persisted state; the insert may
	// have lost a race against an identical concurrent upload.
	return s.photos.GetByHash(ctx, hash)
}

// GetFile returns the photo bytes and metadata. A metadata record whose
// backing file is gone surfaces as ErrNotFound, never an internal failure.
func (s *PhotoService) GetFile(ctx context.Context, hash string) (io.ReadCloser, *models.Photo, error) {
	photo, err := s.photos.GetByHash(ctx, hash)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, hash, photo.OriginalExtension)
	if err != nil {
		return nil, nil, err
	}
	return rc, photo, nil
}

func (s *PhotoService) GetInfo(ctx context.Context, hash string) (*models.Photo, error) {
	return s.photos.GetByHash(ctx, hash)
}
