package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"mime/multipart"
	"storefront/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	exists  bool
	putErr  error
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{exists: true, objects: make(map[string][]byte)}
}

func (f *fakeStore) BucketExists(context.Context) (bool, error) {
	return f.exists, nil
}

func (f *fakeStore) Put(_ context.Context, key string, body io.Reader, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeStore) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, "https://cdn.example.com/")
	return key, ok && key != ""
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	r := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// fileHeader 构造与 gin 解析结果一致的 multipart.FileHeader
func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestImageService_Upload(t *testing.T) {
	store := newFakeStore()
	svc := &ImageService{Store: store, Oss: &config.OssConfig{Bucket: "menu-images", UploadTimeout: 30}}

	resp, err := svc.Upload(context.Background(), fileHeader(t, "vial.png", pngBytes(t, 16, 12)), "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, 16, resp.Width)
	assert.Equal(t, 12, resp.Height)
	assert.True(t, strings.HasPrefix(resp.Key, "products/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+resp.Key, resp.URL)
	assert.Contains(t, store.objects, resp.Key)

	require.NoError(t, svc.Delete(context.Background(), resp.URL))
	assert.NotContains(t, store.objects, resp.Key)
	assert.ErrorIs(t, svc.Delete(context.Background(), "https://elsewhere.com/x.png"), ErrImageNotManaged)
}

func TestImageService_Timeout(t *testing.T) {
	store := newFakeStore()
	store.putErr = context.DeadlineExceeded
	svc := &ImageService{Store: store}

	_, err := svc.Upload(context.Background(), fileHeader(t, "vial.png", pngBytes(t, 16, 16)), "coa")
	assert.ErrorIs(t, err, ErrUploadTimeout)
	assert.Contains(t, err.Error(), "30 seconds")
}

func TestImageService_BucketMissing(t *testing.T) {
	store := newFakeStore()
	store.exists = false
	svc := &ImageService{Store: store, Oss: &config.OssConfig{Bucket: "menu-images"}}

	_, err := svc.Upload(context.Background(), fileHeader(t, "vial.png", pngBytes(t, 16, 16)), "")
	var hint *HintError
	require.ErrorAs(t, err, &hint)
	assert.ErrorIs(t, err, ErrBucketMissing)
	assert.Contains(t, hint.Hint, "menu-images")
}

func TestImageService_Rejects(t *testing.T) {
	svc := &ImageService{Store: newFakeStore()}
	ctx := context.Background()
	data := pngBytes(t, 16, 16)

	_, err := svc.Upload(ctx, fileHeader(t, "vial.jpg", data), "")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Upload(ctx, fileHeader(t, "notes.txt", bytes.Repeat([]byte("plain text "), 20)), "")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Upload(ctx, fileHeader(t, "tiny.png", data[:50]), "")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Upload(ctx, fileHeader(t, "vial.png", data), "../etc")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Upload(ctx, nil, "")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestImageService_StorageFailure(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("connection reset")
	svc := &ImageService{Store: store}

	_, err := svc.Upload(context.Background(), fileHeader(t, "vial.png", pngBytes(t, 16, 16)), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUploadTimeout)
	assert.Contains(t, err.Error(), "connection reset")
}
