package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"unicode"

	"resume-parser/internal/constants"
	"resume-parser/internal/logger"
	"resume-parser/internal/processor"
	"resume-parser/internal/tracing"
	"resume-parser/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ResumeParser 简历解析流程
type ResumeParser interface {
	Process(ctx context.Context, requestID string, data []byte) (*types.ExtractionResult, error)
}

// ParseRequest 解析请求体，file 为 base64 编码的PDF
type ParseRequest struct {
	File string `json:"file"`
}

// ParseHandler 简历解析接口处理器
type ParseHandler struct {
	parser ResumeParser
}

// NewParseHandler 创建解析处理器
func NewParseHandler(parser ResumeParser) *ParseHandler {
	return &ParseHandler{parser: parser}
}

// HandleParse POST /parse
func (h *ParseHandler) HandleParse(ctx context.Context, c *app.RequestContext) {
	requestID := newRequestID()
	c.Header(constants.HeaderRequestID, requestID)
	span := trace.SpanFromContext(ctx)

	var req ParseRequest
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil || strings.TrimSpace(req.File) == "" {
		h.fail(c, span, processor.NewInputMissingError(requestID), consts.StatusBadRequest, constants.MsgMissingFile)
		return
	}

	data, err := DecodeFilePayload(req.File)
	if err != nil {
		decodeErr := processor.NewDecodeError(requestID, err.Error())
		tracing.RecordErrorWithInfo(span, decodeErr, tracing.ErrorTypeDecode,
			attribute.Int("http.status_code", consts.StatusInternalServerError))
		logger.Warn().Err(decodeErr).Msg("文件内容base64解码失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": decodeErr.Error()})
		return
	}

	result, err := h.parser.Process(ctx, requestID, data)
	if err != nil {
		if errors.Is(err, processor.ErrInputMissing) {
			h.fail(c, span, err, consts.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		h.fail(c, span, err, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, result)
}

func (h *ParseHandler) fail(c *app.RequestContext, span trace.Span, err error, status int, msg string) {
	tracing.RecordHTTPError(span, err, status)
	logger.Warn().Err(err).Int("status", status).Msg("简历解析请求失败")
	c.JSON(status, utils.H{"error": msg})
}

// Index GET / 存活检查
func Index(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": constants.MsgServiceRunning})
}

// Health GET /api/v1/health
func Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "ok"})
}

// DecodeFilePayload 解码请求中的base64文件内容
// 兼容URL安全字母表、缺失的填充、首尾及换行空白和 data:...;base64, 前缀
func DecodeFilePayload(payload string) ([]byte, error) {
	s := strings.TrimSpace(payload)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	return base64.StdEncoding.DecodeString(s)
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// 时钟或随机源异常时退回v4
		return uuid.Must(uuid.NewV4()).String()
	}
	return id.String()
}
