package router

import (
	"context"
	"crypto/subtle"
	"errors"

	"resume-parser/internal/api/handler"
	"resume-parser/internal/config"
	"resume-parser/internal/constants"
	"resume-parser/internal/ratelimit"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"
)

// RegisterRoutes 注册 API 路由
// auth.APIKeys 非空时，解析接口要求 Authorization: Bearer <key>；limiter 为 nil 时不限流
func RegisterRoutes(h *server.Hertz, parseHandler *handler.ParseHandler, auth config.AuthConfig, limiter *ratelimit.TokenBucket) {
	h.GET("/", handler.Index)

	var guard []app.HandlerFunc
	if len(auth.APIKeys) > 0 {
		guard = append(guard, newKeyAuth(auth.APIKeys))
	}
	if limiter != nil {
		guard = append(guard, rateLimit(limiter))
	}

	h.POST("/parse", append(guard, parseHandler.HandleParse)...)

	api := h.Group("/api/v1")
	api.POST("/parse", append(guard, parseHandler.HandleParse)...)

	// 添加健康检查
	api.GET("/health", handler.Health)
}

var errInvalidAPIKey = errors.New("invalid API key")

func newKeyAuth(keys []string) app.HandlerFunc {
	return keyauth.New(
		keyauth.WithKeyLookUp("header:Authorization", "Bearer"),
		keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
			for _, k := range keys {
				if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
					return true, nil
				}
			}
			return false, errInvalidAPIKey
		}),
		keyauth.WithErrorHandler(func(ctx context.Context, c *app.RequestContext, err error) {
			c.AbortWithStatusJSON(consts.StatusUnauthorized, utils.H{"error": constants.MsgUnauthorized})
		}),
	)
}

// rateLimit 令牌耗尽时直接返回429，不排队
func rateLimit(limiter *ratelimit.TokenBucket) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(consts.StatusTooManyRequests, utils.H{"error": constants.MsgRateLimited})
			return
		}
		c.Next(ctx)
	}
}
