package config

import "time"

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// PublicDomain 对外访问域名，为空时使用 https://<bucket>.<endpoint>
	PublicDomain string `json:"public_domain" yaml:"public_domain"`
	// UploadTimeout 单次上传超时（秒）
	UploadTimeout int `json:"upload_timeout" yaml:"upload_timeout"`
}

func (o *OssConfig) withDefaults() {
	if o.UploadTimeout <= 0 {
		o.UploadTimeout = 30
	}
	if o.Bucket == "" {
		o.Bucket = "menu-images"
	}
}

func (o *OssConfig) Timeout() time.Duration {
	return time.Duration(o.UploadTimeout) * time.Second
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
