package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"regexp"
	"storefront/config"
	"storefront/pkg/log"
	"storefront/pkg/oss"
	"storefront/types"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const (
	minImageSize int64 = 100
	maxImageSize int64 = 5 << 20 // 5MB
)

// 内容类型 -> 允许的扩展名
var allowedImages = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},
}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

// ObjectStore 图片存储，由 pkg/oss.Client 实现
type ObjectStore interface {
	BucketExists(ctx context.Context) (bool, error)
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	// Upload 校验并上传，bucket 检查与上传共用同一个超时
	Upload(ctx context.Context, header *multipart.FileHeader, folder string) (*types.UploadImageResponse, error)
	Delete(ctx context.Context, url string) error
}

type ImageService struct {
	Store ObjectStore
	Oss   *config.OssConfig
}

func (s *ImageService) Upload(ctx context.Context, header *multipart.FileHeader, folder string) (*types.UploadImageResponse, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: missing image", ErrInvalidImage)
	}
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" {
		folder = "products"
	}
	if !folderPattern.MatchString(folder) {
		return nil, fmt.Errorf("%w: invalid folder %q", ErrInvalidImage, folder)
	}
	// header.Size 不可信，读取后再校验一次
	if header.Size < minImageSize || header.Size > maxImageSize {
		return nil, fmt.Errorf("%w: size must be between 100 B and 5 MB", ErrInvalidImage)
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	contentType, ext, cfg, err := inspectImage(data, header.Filename)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s%s", folder, time.Now().Format("2006/01/02"), uuid.NewString(), ext)

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	exists, err := s.Store.BucketExists(ctx)
	if err != nil {
		return nil, s.storageError(ctx, "check bucket", err)
	}
	if !exists {
		return nil, s.bucketMissing()
	}
	if err := s.Store.Put(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return nil, s.storageError(ctx, "upload", err)
	}

	log.L.Info("image uploaded", zap.String("key", key), zap.Int("size", len(data)))
	return &types.UploadImageResponse{
		URL:         s.Store.PublicURL(key),
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

func (s *ImageService) Delete(ctx context.Context, url string) error {
	key, ok := s.Store.KeyFromURL(strings.TrimSpace(url))
	if !ok {
		return ErrImageNotManaged
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	if err := s.Store.Delete(ctx, key); err != nil {
		return s.storageError(ctx, "delete", err)
	}
	log.L.Info("image deleted", zap.String("key", key))
	return nil
}

func (s *ImageService) timeout() time.Duration {
	if s.Oss != nil && s.Oss.Timeout() > 0 {
		return s.Oss.Timeout()
	}
	return 30 * time.Second
}

func (s *ImageService) bucketMissing() error {
	bucket := "menu-images"
	if s.Oss != nil && s.Oss.Bucket != "" {
		bucket = s.Oss.Bucket
	}
	return &HintError{
		Err:  ErrBucketMissing,
		Hint: fmt.Sprintf("Create the bucket %q in the OSS console or set oss.bucket in the config.", bucket),
	}
}

// storageError 超时与权限问题单独识别
func (s *ImageService) storageError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.L.Warn("image storage timeout", zap.String("op", op))
		return ErrUploadTimeout
	}
	log.L.Error("image storage failed", zap.String("op", op), zap.Error(err))
	switch {
	case oss.IsNoSuchBucket(err):
		return s.bucketMissing()
	case oss.IsAccessDenied(err):
		return &HintError{
			Err:  ErrStoragePermission,
			Hint: "Grant the configured AccessKey oss:PutObject and oss:DeleteObject on the bucket.",
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// inspectImage 按内容嗅探类型，扩展名必须与之匹配
func inspectImage(data []byte, filename string) (string, string, image.Config, error) {
	size := int64(len(data))
	if size < minImageSize || size > maxImageSize {
		return "", "", image.Config{}, fmt.Errorf("%w: size must be between 100 B and 5 MB", ErrInvalidImage)
	}
	contentType := http.DetectContentType(data)
	exts, ok := allowedImages[contentType]
	if !ok {
		return "", "", image.Config{}, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, contentType)
	}
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = exts[0]
	}
	matched := false
	for _, e := range exts {
		if e == ext {
			matched = true
			break
		}
	}
	if !matched {
		return "", "", image.Config{}, fmt.Errorf("%w: extension %s does not match %s", ErrInvalidImage, ext, contentType)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", "", image.Config{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return contentType, ext, cfg, nil
}
