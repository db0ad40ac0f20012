package processor // 简历字段抽取的核心流程

import (
	"context"
	"errors"
	"time"

	"resume-parser/internal/nlp"
	"resume-parser/internal/tracing"
	"resume-parser/internal/types"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultNameThreshold 姓名实体必须出现在前多少个字符内
const DefaultNameThreshold = 200

const tracerName = "resume-parser/processor"

// Components 聚合所有功能组件依赖，便于集中管理和测试替换
type Components struct {
	Renderer DocumentRenderer // PDF文本提取
	Analyzer Analyzer         // 分词、实体与技能匹配
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	NameThreshold int
	Logger        *zerolog.Logger
}

// ResumeProcessor 简历处理器
// 创建后只读，多个请求可并发共享
type ResumeProcessor struct {
	Renderer DocumentRenderer
	Analyzer Analyzer

	nameThreshold int
	logger        *zerolog.Logger
	tracer        trace.Tracer
}

// NewResumeProcessor 创建新的简历处理器，使用明确分离的组件和设置
func NewResumeProcessor(comp *Components, set *Settings, opts ...SettingOpt) (*ResumeProcessor, error) {
	if comp == nil || comp.Analyzer == nil {
		return nil, errors.New("resume processor requires an analyzer")
	}
	if set == nil {
		set = &Settings{}
	}
	for _, opt := range opts {
		opt(set)
	}

	// 确保必要的默认值
	if set.NameThreshold <= 0 {
		set.NameThreshold = DefaultNameThreshold
	}
	if set.Logger == nil {
		nop := zerolog.Nop()
		set.Logger = &nop
	}

	return &ResumeProcessor{
		Renderer:      comp.Renderer,
		Analyzer:      comp.Analyzer,
		nameThreshold: set.NameThreshold,
		logger:        set.Logger,
		tracer:        otel.Tracer(tracerName),
	}, nil
}

// NameThreshold 返回生效的姓名阈值
func (rp *ResumeProcessor) NameThreshold() int {
	return rp.nameThreshold
}

// RenderToText 提取PDF全文
func (rp *ResumeProcessor) RenderToText(ctx context.Context, data []byte) (string, error) {
	if rp.Renderer == nil {
		return "", errors.New("resume processor has no document renderer")
	}
	return rp.Renderer.RenderToText(ctx, data)
}

// Extract 从纯文本中抽取姓名、邮箱、电话和技能
// 分析器失败时仍返回正则字段和首行姓名，并记录日志
func (rp *ResumeProcessor) Extract(text string) *types.ExtractionResult {
	var persons []nlp.Entity
	skills := map[string]struct{}{}

	analysis, err := rp.Analyzer.Analyze(text)
	if err != nil {
		rp.logger.Warn().Err(err).Msg("实体与技能分析失败，仅使用规则抽取")
	} else {
		persons = analysis.Persons()
		skills = extractSkills(analysis.Skills)
	}

	return types.NewExtractionResult(
		extractName(text, persons, rp.nameThreshold),
		extractEmail(text),
		extractPhone(text),
		skills,
	)
}

// Process 完整流程：PDF字节 -> 文本 -> 抽取结果
// 文本提取失败时返回错误且不返回部分结果
func (rp *ResumeProcessor) Process(ctx context.Context, requestID string, data []byte) (*types.ExtractionResult, error) {
	ctx, span := rp.tracer.Start(ctx, "ResumeProcessor.Process",
		trace.WithAttributes(
			tracing.SafeAttribute("request.id", requestID),
			attribute.Int("document.size", len(data)),
		))
	defer span.End()

	if len(data) == 0 {
		err := NewInputMissingError(requestID)
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	start := time.Now()
	text, err := rp.RenderToText(ctx, data)
	if err != nil {
		errType := tracing.ErrorTypeExternal
		if errors.Is(err, ErrDocumentParse) {
			errType = tracing.ErrorTypeDocument
		}
		tracing.RecordError(span, err, errType)
		rp.logger.Error().Err(err).Str("request_id", requestID).Msg("PDF文本提取失败")
		return nil, NewRenderError(requestID, err)
	}
	span.SetAttributes(attribute.Int("document.text_length", len(text)))

	result := rp.Extract(text)
	span.SetAttributes(
		attribute.Int("result.skills", len(result.Skills)),
		tracing.SafeAttribute("result.name", types.StringValue(result.Name)),
		tracing.SafeAttribute("result.email", types.StringValue(result.Email)),
		tracing.SafeAttribute("result.phone", types.StringValue(result.Phone)),
	)

	rp.logger.Info().
		Str("request_id", requestID).
		Str("name", tracing.MaskOptional(result.Name)).
		Str("email", tracing.MaskOptional(result.Email)).
		Str("phone", tracing.MaskOptional(result.Phone)).
		Strs("skills", result.Skills).
		Dur("elapsed", time.Since(start)).
		Msg("简历解析完成")

	return result, nil
}
