package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/config"
	"storefront/dao/cache"
	"storefront/pkg/jwt"
	"storefront/pkg/log"
	"storefront/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ IAdminAuthService = (*AdminAuthService)(nil)

type IAdminAuthService interface {
	// Login 校验密码，签发 token 并写入会话
	Login(ctx context.Context, password string) (*types.AdminLoginResponse, error)
	// Verify 校验 token 签名、类型、过期时间以及服务端会话，返回会话 ID
	Verify(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AdminAuthService struct {
	Sessions *cache.SessionStorage
	Admin    *config.Admin
	Jwt      *config.Jwt
}

func (s *AdminAuthService) Login(ctx context.Context, password string) (*types.AdminLoginResponse, error) {
	if s.Admin.PasswordHash == "" {
		return nil, ErrAdminNotConfigured
	}
	err := bcrypt.CompareHashAndPassword([]byte(s.Admin.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		log.L.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}

	sid := uuid.NewString()
	ttl := s.Jwt.TTL()
	token, err := jwt.GenerateToken([]byte(s.Jwt.Secret), sid, jwt.TypeAdmin, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err := s.Sessions.Create(ctx, sid, ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	log.L.Info("admin logged in", zap.String("session_id", sid))
	return &types.AdminLoginResponse{
		Type:        "Bearer",
		AccessToken: token,
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

func (s *AdminAuthService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeAdmin, token)
	if err != nil {
		return "", ErrSessionExpired
	}
	sid := claims.SessionID()
	if sid == "" {
		return "", ErrSessionExpired
	}
	ok, err := s.Sessions.Exists(ctx, sid)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return "", ErrSessionExpired
	}
	return sid, nil
}

func (s *AdminAuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	log.L.Info("admin logged out", zap.String("session_id", sessionID))
	return nil
}
