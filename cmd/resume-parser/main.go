package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-parser/internal/api/handler"
	"resume-parser/internal/api/router"
	"resume-parser/internal/config"
	"resume-parser/internal/constants"
	"resume-parser/internal/logger"
	"resume-parser/internal/processor"
	"resume-parser/internal/ratelimit"
	"resume-parser/internal/tracing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置失败")
	}

	logCloser, err := logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
		File:         cfg.Logger.File,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化日志失败")
	}
	defer logCloser.Close()

	// 设置一些全局的字段
	logger.Logger = logger.Logger.With().
		Str("app", constants.ServiceName).
		Str("version", constants.ServiceVersion).
		Logger()
	logger.InitHertz()
	hlog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.InitProvider(ctx, cfg.Tracing, constants.ServiceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化链路追踪失败")
	}

	resumeProcessor, err := processor.CreateProcessorFromConfig(ctx, cfg, logger.Named("processor"))
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化简历处理器失败")
	}
	hlog.Info("ResumeProcessor初始化成功")

	opts := []hertzconfig.Option{
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodyMB << 20),
		server.WithReadTimeout(config.GetDuration(cfg.Server.ReadTimeout, 30*time.Second)),
		server.WithWriteTimeout(config.GetDuration(cfg.Server.WriteTimeout, 30*time.Second)),
		server.WithExitWaitTime(config.GetDuration(cfg.Server.ExitWaitTime, 5*time.Second)),
	}
	var tracerCfg *hertztracing.Config
	if cfg.Tracing.Enabled {
		tracer, tc := hertztracing.NewServerTracer()
		opts = append(opts, tracer)
		tracerCfg = tc
	}

	h := server.New(opts...)
	if tracerCfg != nil {
		h.Use(hertztracing.ServerMiddleware(tracerCfg))
	}
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		logger.Info().
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})

	var limiter *ratelimit.TokenBucket
	if cfg.Server.RateLimitQPM > 0 {
		limiter = ratelimit.NewTokenBucket(cfg.Server.RateLimitQPM, cfg.Server.RateLimitBurst)
	}
	router.RegisterRoutes(h, handler.NewParseHandler(resumeProcessor), cfg.Auth, limiter)
	hlog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			hlog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	hlog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		hlog.Errorf("服务器关闭失败: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		hlog.Errorf("关闭追踪导出器失败: %v", err)
	}
	hlog.Info("优雅退出完成")
}
