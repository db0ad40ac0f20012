package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"
)

// EinoPDFRenderer 使用 Eino PDF Parser 提取文本
type EinoPDFRenderer struct {
	parser  *pdf.PDFParser
	logger  *zerolog.Logger
	timeout time.Duration
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFRenderer)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(logger *zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFRenderer) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEinoTimeout 配置单次解析的超时时间
func WithEinoTimeout(timeout time.Duration) EinoPDFOption {
	return func(e *EinoPDFRenderer) {
		e.timeout = timeout
	}
}

// NewEinoPDFRenderer 初始化 Eino PDF 文本提取器
// 按页面拆分文档，由我们自己按页序拼接，保证页序且不插入分页标记
func NewEinoPDFRenderer(ctx context.Context, options ...EinoPDFOption) (*EinoPDFRenderer, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Eino PDF parser: %w", err)
	}

	nop := zerolog.Nop()
	renderer := &EinoPDFRenderer{
		parser:  p,
		logger:  &nop,
		timeout: 30 * time.Second,
	}

	for _, option := range options {
		option(renderer)
	}

	return renderer, nil
}

// RenderToText 实现 DocumentRenderer 接口
func (e *EinoPDFRenderer) RenderToText(ctx context.Context, data []byte) (text string, err error) {
	defer recoverParse("eino", &err)

	startTime := time.Now()
	if !LooksLikePDF(data) {
		return "", parseError("eino", fmt.Errorf("missing %s header", pdfMagic))
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data),
		einoParser.WithExtraMeta(map[string]any{
			"extraction_time": startTime.Format(time.RFC3339),
		}),
	)
	if err != nil {
		e.logger.Warn().Err(err).Dur("elapsed", time.Since(startTime)).Msg("Eino PDF解析失败")
		return "", parseError("eino", err)
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.Content)
	}

	e.logger.Debug().
		Int("pages", len(docs)).
		Int("text_length", sb.Len()).
		Dur("elapsed", time.Since(startTime)).
		Msg("PDF文本提取完成")
	return sb.String(), nil
}
