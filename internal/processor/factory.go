package processor

import (
	"context"
	"fmt"

	"resume-parser/internal/config"
	"resume-parser/internal/matcher"
	"resume-parser/internal/nlp"
	"resume-parser/internal/parser"
	"resume-parser/internal/vocabulary"

	"github.com/rs/zerolog"
)

// CreateProcessorFromConfig 按配置组装完整的处理器
// 分词器和词表在这里构建一次，之后只读共享
func CreateProcessorFromConfig(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*ResumeProcessor, error) {
	tokenizer := nlp.NewProseTokenizer(nlp.WithEntities(!cfg.Extraction.DisableNER))

	entries := vocabulary.DefaultEntries()
	if cfg.Vocabulary.SkillsFile != "" {
		loaded, err := vocabulary.LoadEntries(cfg.Vocabulary.SkillsFile)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}
	// 词表模式只需要分词，Plain 与运行时分词器共享模型且切分完全一致
	vocab, err := vocabulary.New(entries, tokenizer.Plain())
	if err != nil {
		return nil, fmt.Errorf("构建技能词表失败: %w", err)
	}
	logger.Info().Int("skills", vocab.Len()).Str("file", cfg.Vocabulary.SkillsFile).Msg("技能词表已加载")

	m, err := matcher.New(tokenizer, vocab)
	if err != nil {
		return nil, err
	}

	renderer, err := parser.BuildRenderer(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("初始化PDF解析器失败: %w", err)
	}

	return NewResumeProcessor(
		NewComponents(WithRenderer(renderer), WithAnalyzer(m)),
		&Settings{},
		WithNameThreshold(cfg.Extraction.NameThreshold),
		WithLogger(logger),
	)
}
