package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"filmio-backend/internal/common"
	"filmio-backend/internal/repositories/photos"
	"filmio-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newPhotoService() (*PhotoService, *photos.MemoryRepository, *storage.MemoryStore) {
	repo := photos.NewMemoryRepository()
	blobs := storage.NewMemoryStore()
	return NewPhotoService(repo, blobs), repo, blobs
}

func TestIngest_PNGDimensionsAndHash(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newPhotoService()

	data := makePNG(t, 10, 20)
	sum := sha1.Sum(data)

	photo, err := svc.Ingest(ctx, bytes.NewReader(data), "image/png")
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), photo.Hash)
	assert.Equal(t, "png", photo.OriginalExtension)
	assert.Equal(t, 10, photo.Width)
	assert.Equal(t, 20, photo.Height)

	info, err := svc.GetInfo(ctx, photo.Hash)
	require.NoError(t, err)
	assert.Equal(t, photo, info)
}

func TestIngest_JPEG(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newPhotoService()

	photo, err := svc.Ingest(ctx, bytes.NewReader(makeJPEG(t, 4, 3)), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "jpg", photo.OriginalExtension)
	assert.Equal(t, 4, photo.Width)
	assert.Equal(t, 3, photo.Height)
}

func TestIngest_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, blobs := newPhotoService()

	data := makePNG(t, 2, 2)

	first, err := svc.Ingest(ctx, bytes.NewReader(data), "image/png")
	require.NoError(t, err)
	second, err := svc.Ingest(ctx, bytes.NewReader(data), "image/png")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 1, blobs.Len())
}

func TestIngest_UnsupportedMIMEWritesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, blobs := newPhotoService()

	_, err := svc.Ingest(ctx, bytes.NewReader(makePNG(t, 2, 2)), "image/gif")
	assert.ErrorIs(t, err, common.ErrUnsupportedMedia)
	assert.Zero(t, repo.Len())
	assert.Zero(t, blobs.Len())
}

func TestIngest_UndecodableBytesWriteNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, blobs := newPhotoService()

	_, err := svc.Ingest(ctx, bytes.NewReader([]byte("definitely not a png")), "image/png")
	assert.ErrorIs(t, err, common.ErrUnsupportedMedia)
	assert.Zero(t, repo.Len())
	assert.Zero(t, blobs.Len())
}

func TestGetFile_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newPhotoService()

	data := makePNG(t, 2, 2)
	photo, err := svc.Ingest(ctx, bytes.NewReader(data), "image/png")
	require.NoError(t, err)

	rc, info, err := svc.GetFile(ctx, photo.Hash)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, photo, info)
}

func TestGetFile_UnknownHash(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPhotoService()
	_, _, err := svc.GetFile(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetFile_MissingBackingFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, blobs := newPhotoService()

	photo, err := svc.Ingest(ctx, bytes.NewReader(makePNG(t, 2, 2)), "image/png")
	require.NoError(t, err)

	// Metadata exists but the file is gone: a detectable inconsistency that
	// must surface as not-found.
	blobs.Delete(photo.Hash, photo.OriginalExtension)

	_, _, err = svc.GetFile(ctx, photo.Hash)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExtensionForMIME(t *testing.T) {
	t.Parallel()

	ext, ok := ExtensionForMIME("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	ext, ok = ExtensionForMIME("image/png")
	assert.True(t, ok)
	assert.Equal(t, "png", ext)

	_, ok = ExtensionForMIME("image/webp")
	assert.False(t, ok)
}
