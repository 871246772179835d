package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Admin    *Admin          `json:"admin" yaml:"admin"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	Server   *Server         `json:"server" yaml:"server"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Shop     *Shop           `json:"shop" yaml:"shop"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	conf.applyEnv()
	conf.withDefaults()

	return &conf
}

// applyEnv 敏感配置允许用环境变量覆盖（.env 由 main 先加载）
func (c *Config) applyEnv() {
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Admin == nil {
		c.Admin = &Admin{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		c.MySQL.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		c.Admin.PasswordHash = v
	}
	if v := os.Getenv("OSS_AK"); v != "" {
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("OSS_SK"); v != "" {
		c.Oss.AccessKeySecret = v
	}
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{Http: 8080}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.Shop == nil {
		c.Shop = &Shop{}
	}
	c.Redis.withDefaults()
	c.Jwt.withDefaults()
	c.Admin.withDefaults()
	c.Oss.withDefaults()
	c.RocketMQ.withDefaults()
	c.Shop.withDefaults()
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
