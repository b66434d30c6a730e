package service

import (
    "context"
    "errors"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService 注册 / 登录，签发 JWT
type AuthService interface {
    Register(ctx context.Context, username, email, password string) (*model.Profile, string, error)
    Login(ctx context.Context, email, password string) (*model.Profile, string, error)
    // ParseToken 校验并返回 token 携带的用户 ID
    ParseToken(token string) (string, error)
}

type authService struct {
    db          *gorm.DB
    profileRepo repository.ProfileRepository
    secret      []byte
    tokenTTL    time.Duration
}

func NewAuthService(db *gorm.DB, profileRepo repository.ProfileRepository, secret string, tokenTTL time.Duration) AuthService {
    if tokenTTL <= 0 {
        tokenTTL = 24 * time.Hour
    }
    return &authService{db: db, profileRepo: profileRepo, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.Profile, string, error) {
    username = strings.TrimSpace(username)
    email = strings.ToLower(strings.TrimSpace(email))
    if username == "" || email == "" || len(password) < 8 {
        return nil, "", errors.New("username, email and a password of at least 8 characters are required")
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, "", err
    }
    now := time.Now()
    p := &model.Profile{
        ID:        uuid.New().String(),
        Username:  username,
        Email:     email,
        Password:  string(hash),
        CreatedAt: now,
        UpdatedAt: now,
    }
    err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.Profile{}).
            Where("username = ? OR email = ?", username, email).
            Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrConflict
        }
        return tx.Create(p).Error
    })
    if err != nil {
        return nil, "", err
    }
    token, err := s.issueToken(p.ID)
    if err != nil {
        return nil, "", err
    }
    return p, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Profile, string, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    p, err := s.profileRepo.GetByEmail(ctx, email)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, "", ErrInvalidCredentials
        }
        return nil, "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) != nil {
        return nil, "", ErrInvalidCredentials
    }
    token, err := s.issueToken(p.ID)
    if err != nil {
        return nil, "", err
    }
    return p, token, nil
}

func (s *authService) issueToken(userID string) (string, error) {
    now := time.Now()
    claims := jwt.RegisteredClaims{
        Subject:   userID,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ParseToken(tokenStr string) (string, error) {
    token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return s.secret, nil
    })
    if err != nil || !token.Valid {
        return "", ErrAuthRequired
    }
    claims, ok := token.Claims.(*jwt.RegisteredClaims)
    if !ok || claims.Subject == "" {
        return "", ErrAuthRequired
    }
    return claims.Subject, nil
}
