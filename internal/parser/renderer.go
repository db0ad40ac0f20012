package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
)

// ErrDocumentParse 字节流无法作为PDF打开或渲染（损坏、类型错误、不可读）
var ErrDocumentParse = errors.New("document parse failed")

// pdfMagic PDF文件头
var pdfMagic = []byte("%PDF-")

// DocumentRenderer 文档文本提取器接口
// 按页序提取每页文本并直接拼接，不额外插入分隔符；零页文档返回空串
type DocumentRenderer interface {
	RenderToText(ctx context.Context, data []byte) (string, error)
}

// LooksLikePDF 检查缓冲区开头附近是否有PDF文件头
// PDF规范允许文件头前有少量垃圾字节，这里在前1024字节内查找
func LooksLikePDF(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, pdfMagic)
}

// parseError 把底层错误包装成 ErrDocumentParse
func parseError(backend string, err error) error {
	return fmt.Errorf("%w (%s): %v", ErrDocumentParse, backend, err)
}

// recoverParse 第三方PDF库遇到畸形输入可能panic，统一转成解析错误
func recoverParse(backend string, err *error) {
	if r := recover(); r != nil {
		*err = parseError(backend, fmt.Errorf("panic: %v", r))
	}
}
