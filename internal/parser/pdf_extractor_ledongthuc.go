package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// LedongthucPDFRenderer 基于 ledongthuc/pdf 的纯Go文本提取器
type LedongthucPDFRenderer struct {
	logger *zerolog.Logger
}

// NewLedongthucPDFRenderer 创建提取器，logger 可以为 nil
func NewLedongthucPDFRenderer(logger *zerolog.Logger) *LedongthucPDFRenderer {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &LedongthucPDFRenderer{logger: logger}
}

// RenderToText 实现 DocumentRenderer 接口
func (l *LedongthucPDFRenderer) RenderToText(ctx context.Context, data []byte) (text string, err error) {
	defer recoverParse("ledongthuc", &err)

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", parseError("ledongthuc", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", parseError("ledongthuc", fmt.Errorf("page %d: %w", i, err))
		}
		sb.WriteString(pageText)
	}

	l.logger.Debug().Int("pages", numPages).Int("text_length", sb.Len()).Msg("PDF文本提取完成")
	return sb.String(), nil
}
