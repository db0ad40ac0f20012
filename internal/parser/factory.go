package parser

import (
	"context"
	"fmt"
	"time"

	"resume-parser/internal/config"

	"github.com/rs/zerolog"
)

// BuildRenderer 统一构建文档文本提取器的逻辑
// 根据 document.backend 返回对应实现，未知后端报错
func BuildRenderer(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (DocumentRenderer, error) {
	timeout := config.GetDuration(cfg.Document.Timeout, 0)

	switch cfg.Document.Backend {
	case "", "eino":
		logger.Info().Msg("使用Eino作为PDF解析器")
		opts := []EinoPDFOption{WithEinoLogger(logger)}
		if timeout > 0 {
			opts = append(opts, WithEinoTimeout(timeout))
		}
		return NewEinoPDFRenderer(ctx, opts...)
	case "ledongthuc":
		logger.Info().Msg("使用ledongthuc/pdf作为PDF解析器")
		return NewLedongthucPDFRenderer(logger), nil
	case "tika":
		if cfg.Tika.ServerURL == "" {
			return nil, fmt.Errorf("tika backend requires tika.server_url")
		}
		logger.Info().Str("server", cfg.Tika.ServerURL).Msg("使用Tika服务器作为PDF解析器")
		opts := []TikaOption{WithTikaLogger(logger)}
		if cfg.Tika.Timeout > 0 {
			opts = append(opts, WithTimeout(time.Duration(cfg.Tika.Timeout)*time.Second))
		}
		return NewTikaRenderer(cfg.Tika.ServerURL, opts...), nil
	default:
		return nil, fmt.Errorf("unknown document backend %q", cfg.Document.Backend)
	}
}
