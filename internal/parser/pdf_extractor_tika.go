package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TikaRenderer 是基于 Apache Tika 服务器的文本提取器
type TikaRenderer struct {
	// Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	logger *zerolog.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaRenderer)

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(logger *zerolog.Logger) TikaOption {
	return func(t *TikaRenderer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTimeout 配置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) TikaOption {
	return func(t *TikaRenderer) {
		t.Client.Timeout = timeout
	}
}

// WithHTTPClient 替换HTTP客户端
func WithHTTPClient(client *http.Client) TikaOption {
	return func(t *TikaRenderer) {
		if client != nil {
			t.Client = client
		}
	}
}

// 确保TikaRenderer实现了DocumentRenderer接口
var _ DocumentRenderer = (*TikaRenderer)(nil)

// NewTikaRenderer 创建一个新的Tika文本提取器
func NewTikaRenderer(serverURL string, options ...TikaOption) *TikaRenderer {
	nop := zerolog.Nop()
	t := &TikaRenderer{
		ServerURL: strings.TrimRight(serverURL, "/"),
		Client:    &http.Client{Timeout: 60 * time.Second},
		logger:    &nop,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// RenderToText 实现 DocumentRenderer 接口，调用 PUT /tika 获取纯文本
func (t *TikaRenderer) RenderToText(ctx context.Context, data []byte) (string, error) {
	if !LooksLikePDF(data) {
		return "", parseError("tika", fmt.Errorf("missing %s header", pdfMagic))
	}

	startTime := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.ServerURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("创建Tika请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "text/plain; charset=UTF-8")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取Tika响应失败: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusUnsupportedMediaType:
		// Tika用422/415表示文档本身无法解析
		return "", parseError("tika", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("Tika服务器返回错误状态 %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	t.logger.Debug().
		Int("text_length", len(body)).
		Dur("elapsed", time.Since(startTime)).
		Msg("Tika文本提取完成")
	return string(body), nil
}
