package logger

import (
	"time"

	"go.uber.org/zap"
)

// InitLogger 初始化全局日志，失败直接panic，启动阶段调用
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, dsn string) {
	if _, err := initZap(level, projectName, logPath, maxAge, rotationTime, rotationSize, dsn); err != nil {
		panic(err)
	}
}

// Sync 退出前刷盘
func Sync() {
	_ = zap.L().Sync()
}

func Debug(args ...interface{}) {
	zap.S().Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	zap.S().Debugf(template, args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

func Infof(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	zap.S().Infow(msg, keysAndValues...)
}

func Warn(args ...interface{}) {
	zap.S().Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	zap.S().Errorf(template, args...)
}

// Fatalf 打印后退出进程
func Fatalf(template string, args ...interface{}) {
	zap.S().Fatalf(template, args...)
}
