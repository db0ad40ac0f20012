package processor

import (
	"errors"
	"fmt"

	"resume-parser/internal/parser"
)

// 定义基础错误类型
var (
	// ErrInputMissing 请求中没有文件数据
	ErrInputMissing = errors.New("missing file data in request")
	// ErrDocumentDecode 传输编码（base64）无法解码
	ErrDocumentDecode = errors.New("document decode failed")
	// ErrDocumentParse 字节流不是可读的PDF
	ErrDocumentParse = parser.ErrDocumentParse
)

// ResumeProcessError 包含详细错误信息的自定义错误
type ResumeProcessError struct {
	RequestID string
	Op        string
	BaseErr   error
	Detail    string
}

func (e *ResumeProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 请求:%s): %s", e.BaseErr, e.Op, e.RequestID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 请求:%s)", e.BaseErr, e.Op, e.RequestID)
}

func (e *ResumeProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewInputMissingError(requestID string) error {
	return &ResumeProcessError{
		RequestID: requestID,
		Op:        "input",
		BaseErr:   ErrInputMissing,
	}
}

func NewDecodeError(requestID, detail string) error {
	return &ResumeProcessError{
		RequestID: requestID,
		Op:        "decode",
		BaseErr:   ErrDocumentDecode,
		Detail:    detail,
	}
}

// NewRenderError 保留底层错误链，调用方可用 errors.Is 判断是否为 ErrDocumentParse
func NewRenderError(requestID string, err error) error {
	return &ResumeProcessError{
		RequestID: requestID,
		Op:        "render",
		BaseErr:   err,
	}
}
