// internals/helpers/oss/screenshot_store.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// folder logis bukti pembayaran di bucket
	ScreenshotFolder = "swargandhav_payments"

	maxScreenshotSize = int64(10 * 1024 * 1024) // 10MB
	maxScreenshotDim  = 800                     // bounding box 800x800
)

// UploadedScreenshot: hasil upload — URL publik + handle untuk delete
type UploadedScreenshot struct {
	URL          string
	Key          string
	Filename     string
	OriginalName string
	ContentType  string
	Size         int64
}

// ScreenshotStore: adapter asset host. Implementasi produksi = OSSService;
// test pakai fake.
type ScreenshotStore interface {
	UploadScreenshot(ctx context.Context, fh *multipart.FileHeader) (*UploadedScreenshot, error)
	UploadBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (string, error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

func NewScreenshotStoreFromEnv() (ScreenshotStore, error) {
	return NewOSSServiceFromEnv("")
}

/* =======================================================================
   Decode / resize / re-encode (tanpa network — dicek sebelum upload)
======================================================================= */

func decodeImage(all []byte, contentType, filename string) (image.Image, error) {
	switch {
	case strings.Contains(contentType, "jpeg"):
		return imaging.Decode(bytes.NewReader(all))
	case strings.Contains(contentType, "png"):
		return imaging.Decode(bytes.NewReader(all))
	case strings.Contains(contentType, "gif"):
		return gif.Decode(bytes.NewReader(all))
	case strings.Contains(contentType, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format tidak didukung: %s / %s", contentType, filepath.Ext(filename))
	}
}

func encodeImage(img image.Image, contentType string) ([]byte, error) {
	buf := new(bytes.Buffer)
	switch {
	case strings.Contains(contentType, "jpeg"):
		err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(85))
		return buf.Bytes(), err
	case strings.Contains(contentType, "png"):
		err := imaging.Encode(buf, img, imaging.PNG)
		return buf.Bytes(), err
	case strings.Contains(contentType, "gif"):
		err := gif.Encode(buf, img, nil)
		return buf.Bytes(), err
	case strings.Contains(contentType, "webp"):
		err := webp.Encode(buf, img, &webp.Options{Quality: 80})
		return buf.Bytes(), err
	default:
		return nil, fmt.Errorf("format tidak didukung: %s", contentType)
	}
}

// PrepareScreenshot: sniff MIME → tolak non-image sebelum ada network call →
// decode → fit ke bounding box 800x800 (tidak pernah upscale) → re-encode
// di format asalnya. Return: data siap upload, content type, ekstensi.
func PrepareScreenshot(all []byte, filename string) ([]byte, string, string, error) {
	if len(all) == 0 {
		return nil, "", "", fiber.NewError(fiber.StatusBadRequest, "Empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if !strings.HasPrefix(ct, "image/") {
		return nil, "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Only image files are allowed")
	}

	img, err := decodeImage(all, ct, filename)
	if err != nil {
		return nil, "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (pakai jpg/png/gif/webp)")
	}

	b := img.Bounds()
	if b.Dx() > maxScreenshotDim || b.Dy() > maxScreenshotDim {
		img = imaging.Fit(img, maxScreenshotDim, maxScreenshotDim, imaging.Lanczos)
	}

	out, err := encodeImage(img, ct)
	if err != nil {
		return nil, "", "", err
	}

	ext := extForContentType(ct, filename)
	return out, ct, ext, nil
}

func extForContentType(ct, filename string) string {
	switch {
	case strings.Contains(ct, "jpeg"):
		return ".jpg"
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "gif"):
		return ".gif"
	case strings.Contains(ct, "webp"):
		return ".webp"
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	return ".img"
}

/* =======================================================================
   Upload
======================================================================= */

func (s *OSSService) buildScreenshotKey(originalName, ext string) string {
	base := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	ts := time.Now().Format("20060102_150405")
	rand8 := uuid.NewString()[:8]

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s/%s_%s_%s%s", prefix, ScreenshotFolder, slugify(base), ts, rand8, ext)
}

func (s *OSSService) UploadScreenshot(ctx context.Context, fh *multipart.FileHeader) (*UploadedScreenshot, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payment screenshot is required")
	}
	if fh.Size > maxScreenshotSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran gambar maksimal 10MB")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	data, ct, ext, err := PrepareScreenshot(all, fh.Filename)
	if err != nil {
		return nil, err
	}

	key := s.buildScreenshotKey(fh.Filename, ext)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}

	return &UploadedScreenshot{
		URL:          s.PublicURL(key),
		Key:          key,
		Filename:     path.Base(key),
		OriginalName: fh.Filename,
		ContentType:  ct,
		Size:         int64(len(data)),
	}, nil
}

// UploadBytes: upload mentah ke subdir (dipakai probe /api/test-oss)
func (s *OSSService) UploadBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("empty filename")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	key := prefix + filename
	if d := strings.Trim(dir, "/"); d != "" {
		key = prefix + d + "/" + filename
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
