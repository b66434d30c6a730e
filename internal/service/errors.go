package service

import "errors"

// 业务错误分类，handler 层统一映射到 HTTP 状态码
var (
    ErrAuthRequired = errors.New("authentication required")
    ErrNotFound     = errors.New("not found")
    ErrConflict     = errors.New("already exists")
    ErrForbidden    = errors.New("forbidden")
    ErrExpired      = errors.New("expired")
)
