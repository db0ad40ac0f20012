package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ProseTokenizer 基于 prose 的分词与命名实体识别
// 一次分词同时产出词元文本和IOB实体标签，供实体抽取和词表匹配共用
type ProseTokenizer struct {
	model    *prose.Model
	entities bool
}

// ProseOption ProseTokenizer 的配置选项
type ProseOption func(*ProseTokenizer)

// WithEntities 配置是否运行命名实体识别（默认开启）
func WithEntities(enabled bool) ProseOption {
	return func(p *ProseTokenizer) {
		p.entities = enabled
	}
}

// NewProseTokenizer 创建分词器
// 模型只在这里解码一次，之后所有调用共享同一个只读模型
func NewProseTokenizer(options ...ProseOption) *ProseTokenizer {
	p := &ProseTokenizer{entities: true}
	for _, option := range options {
		option(p)
	}

	seed, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithTagging(p.entities),
		prose.WithExtraction(p.entities),
	)
	if err == nil {
		p.model = seed.Model
	}
	return p
}

// EntitiesEnabled 是否启用了实体识别
func (p *ProseTokenizer) EntitiesEnabled() bool {
	return p.entities
}

// Plain 返回共享同一模型、但不做实体识别的分词器
// 分词结果与原分词器完全相同，用于编译词表模式
func (p *ProseTokenizer) Plain() *ProseTokenizer {
	return &ProseTokenizer{model: p.model, entities: false}
}

// Tokenize 实现 Tokenizer 接口
func (p *ProseTokenizer) Tokenize(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithTagging(p.entities),
		prose.WithExtraction(p.entities),
	}
	if p.model != nil {
		opts = append(opts, prose.UsingModel(p.model))
	}
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("prose tokenize failed: %w", err)
	}

	raw := doc.Tokens()
	pieces := make([]string, len(raw))
	for i, tok := range raw {
		pieces[i] = tok.Text
	}

	var labels []string
	if p.entities {
		// prose 逐词打的 B- 标签会把多词人名拆开，以它合并后的实体为准
		found := doc.Entities()
		spans := make([]Entity, len(found))
		for i, ent := range found {
			spans[i] = Entity{Label: ent.Label, Text: ent.Text}
		}
		labels = LabelSpans(pieces, spans)
	}
	return AlignTokens(text, pieces, labels), nil
}
