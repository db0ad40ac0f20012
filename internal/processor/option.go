package processor

import (
	"github.com/rs/zerolog"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithRenderer 设置文档文本提取器
func WithRenderer(renderer DocumentRenderer) ComponentOpt {
	return func(c *Components) {
		c.Renderer = renderer
	}
}

// WithAnalyzer 设置实体与技能分析器
func WithAnalyzer(analyzer Analyzer) ComponentOpt {
	return func(c *Components) {
		c.Analyzer = analyzer
	}
}

// ----- 设置选项 -----

// WithNameThreshold 设置姓名实体距开头的字符数上限
func WithNameThreshold(threshold int) SettingOpt {
	return func(s *Settings) {
		if threshold > 0 {
			s.NameThreshold = threshold
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		s.Logger = logger
	}
}

// NewComponents 由选项组装组件
func NewComponents(opts ...ComponentOpt) *Components {
	c := &Components{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
