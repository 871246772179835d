package oss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"storefront/config"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// Client 单 bucket 的对象存储封装
type Client struct {
	cli        *oss.Client
	bucket     string
	publicBase string
}

func NewClient(conf *config.OssConfig) *Client {
	var provider credentials.CredentialsProvider
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region)

	base := strings.TrimRight(conf.PublicDomain, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", conf.Bucket, conf.Endpoint)
	}
	return &Client{
		cli:        oss.NewClient(cfg),
		bucket:     conf.Bucket,
		publicBase: base,
	}
}

func (c *Client) Bucket() string {
	return c.bucket
}

func (c *Client) BucketExists(ctx context.Context) (bool, error) {
	return c.cli.IsBucketExist(ctx, c.bucket)
}

func (c *Client) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := c.cli.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:       oss.Ptr(c.bucket),
		Key:          oss.Ptr(key),
		ContentType:  oss.Ptr(contentType),
		CacheControl: oss.Ptr("max-age=3600"),
		Body:         body,
	})
	return err
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.cli.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(c.bucket),
		Key:    oss.Ptr(key),
	})
	return err
}

func (c *Client) PublicURL(key string) string {
	return c.publicBase + "/" + key
}

// KeyFromURL 从公开地址还原 object key
func (c *Client) KeyFromURL(url string) (string, bool) {
	prefix := c.publicBase + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

// IsAccessDenied AccessKey 无权限
func IsAccessDenied(err error) bool {
	var se *oss.ServiceError
	if errors.As(err, &se) {
		return se.StatusCode == 403 || se.Code == "AccessDenied"
	}
	return false
}

// IsNoSuchBucket bucket 不存在
func IsNoSuchBucket(err error) bool {
	var se *oss.ServiceError
	if errors.As(err, &se) {
		return se.Code == "NoSuchBucket"
	}
	return false
}
