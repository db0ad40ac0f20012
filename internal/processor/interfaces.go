package processor

import (
	"context"

	"resume-parser/internal/matcher"
)

// DocumentRenderer 文档文本提取接口
// 由 internal/parser 中的各后端实现
type DocumentRenderer interface {
	// RenderToText 按页序提取文本并直接拼接；无法作为PDF打开时返回包装了 ErrDocumentParse 的错误
	RenderToText(ctx context.Context, data []byte) (string, error)
}

// Analyzer 实体与技能分析接口
// 一次分词同时产出PERSON实体和技能匹配，实现必须可并发调用
type Analyzer interface {
	Analyze(text string) (*matcher.Analysis, error)
}
