package logger

import (
	"go.uber.org/zap"
)

// Log 全局日志实例
var Log *zap.Logger

// Init 初始化日志，debug 模式输出彩色开发日志
func Init(debug bool) {
	var err error
	if debug {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
}

// Sync 刷新缓冲日志，进程退出前调用
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
