package matcher

import (
	"errors"

	"resume-parser/internal/nlp"
	"resume-parser/internal/vocabulary"
)

// Analysis 一次分析的完整结果，所有偏移都基于同一次分词
type Analysis struct {
	Tokens   []nlp.Token
	Entities []nlp.Entity
	Skills   []vocabulary.Match
}

// Persons 按文档顺序返回PERSON实体
func (a *Analysis) Persons() []nlp.Entity {
	if a == nil {
		return nil
	}
	return nlp.FilterEntities(a.Entities, nlp.LabelPerson)
}

// Matcher 实体与词表模式匹配器
// 只持有不可变的分词器和词表引用，可并发使用
type Matcher struct {
	tokenizer nlp.Tokenizer
	vocab     *vocabulary.Vocabulary
}

// New 创建匹配器
func New(tokenizer nlp.Tokenizer, vocab *vocabulary.Vocabulary) (*Matcher, error) {
	if tokenizer == nil {
		return nil, errors.New("matcher requires a tokenizer")
	}
	if vocab == nil {
		return nil, errors.New("matcher requires a vocabulary")
	}
	return &Matcher{tokenizer: tokenizer, vocab: vocab}, nil
}

// Analyze 对文本分词一次，同一份词元同时用于实体识别和技能匹配
func (m *Matcher) Analyze(text string) (*Analysis, error) {
	tokens, err := m.tokenizer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Tokens:   tokens,
		Entities: nlp.GroupEntities(text, tokens),
		Skills:   m.vocab.Match(tokens),
	}, nil
}

// Vocabulary 返回匹配器使用的词表
func (m *Matcher) Vocabulary() *vocabulary.Vocabulary {
	return m.vocab
}
