package logger

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// 全局 logger，Init 之前为 Nop，避免空指针
var log = zap.NewNop()

// Init 按配置初始化全局 zap logger
func Init(level string, devMode bool) error {
    var cfg zap.Config
    if devMode {
        cfg = zap.NewDevelopmentConfig()
    } else {
        cfg = zap.NewProductionConfig()
    }
    lv, err := zapcore.ParseLevel(level)
    if err != nil {
        lv = zapcore.InfoLevel
    }
    cfg.Level = zap.NewAtomicLevelAt(lv)
    l, err := cfg.Build(zap.AddCallerSkip(1))
    if err != nil {
        return err
    }
    log = l
    return nil
}

// L 返回底层 *zap.Logger（需要自定义 caller skip 时使用）
func L() *zap.Logger { return log }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

// Sync 刷新缓冲日志，进程退出前调用
func Sync() { _ = log.Sync() }
