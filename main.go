package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"iris-eda/dataset"
	"iris-eda/dispatch"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/base/logger"
	"iris-eda/web"
)

func main() {
	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "iris-eda", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)
	defer logger.Sync()
	config.TablePrint(all, os.Stdout)

	// 数据集加载失败时整个服务不启动
	frame, err := dataset.Load(all.Dataset.Name)
	if err != nil {
		logger.Fatalf("load dataset %s failed: %v", all.Dataset.Name, err)
	}
	logger.Infof("dataset %s loaded, rows=%d, columns=%d", frame.Name(), frame.Len(), frame.Ncol())

	gin.SetMode(ss.GinMode)
	r := web.NewEngine(dispatch.NewDispatcher(frame, all), all.Page)
	srv := &http.Server{
		Addr:         ":" + ss.HttpPort,
		Handler:      r,
		ReadTimeout:  time.Duration(ss.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(ss.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("listen on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	logger.Infof("shutdown on signal '%v'", <-c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
