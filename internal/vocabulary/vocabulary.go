package vocabulary

import (
	"errors"
	"fmt"
	"strings"

	"resume-parser/internal/nlp"
)

var (
	// ErrEmptyPattern 技能字符串分词后为空，无法构成匹配模式
	ErrEmptyPattern = errors.New("skill produces an empty token pattern")
	// ErrDuplicateSkill 技能标识在词表中重复
	ErrDuplicateSkill = errors.New("duplicate skill identifier")
)

// SkillEntry 词表中的一个技能：规范标识及其同义写法
type SkillEntry struct {
	ID      string   `yaml:"id" json:"id"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Pattern 编译后的词元序列模式，命中后解析为 SkillID
type Pattern struct {
	SkillID string
	Tokens  []string
}

// Match 一次模式命中，偏移为原文字节偏移
type Match struct {
	SkillID string
	Start   int
	End     int
}

// Vocabulary 技能词表
// 启动时构建一次，之后只读，可在并发请求间无锁共享
type Vocabulary struct {
	entries  []SkillEntry
	patterns []Pattern
	byFirst  map[string][]int // 首个词元 -> 模式下标
}

// NormalizeSkill 规范化技能字符串
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New 构建词表
// 每个标识和别名都用运行时同一个分词器切分，得到的词元序列就是它的模式
func New(entries []SkillEntry, tokenizer nlp.Tokenizer) (*Vocabulary, error) {
	if tokenizer == nil {
		return nil, errors.New("vocabulary requires a tokenizer")
	}

	v := &Vocabulary{
		byFirst: make(map[string][]int),
	}
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		id := NormalizeSkill(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: blank identifier", ErrEmptyPattern)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, id)
		}
		seen[id] = struct{}{}

		normalized := SkillEntry{ID: id}
		compiled := make(map[string]struct{})
		for _, surface := range append([]string{entry.ID}, entry.Aliases...) {
			surface = NormalizeSkill(surface)
			if surface == "" {
				continue
			}
			tokens, err := compile(surface, tokenizer)
			if err != nil {
				return nil, fmt.Errorf("compile skill %q: %w", surface, err)
			}
			key := strings.Join(tokens, "\x00")
			if _, ok := compiled[key]; ok {
				continue
			}
			compiled[key] = struct{}{}
			if surface != id {
				normalized.Aliases = append(normalized.Aliases, surface)
			}

			v.byFirst[tokens[0]] = append(v.byFirst[tokens[0]], len(v.patterns))
			v.patterns = append(v.patterns, Pattern{SkillID: id, Tokens: tokens})
		}
		v.entries = append(v.entries, normalized)
	}

	return v, nil
}

// compile 把技能字符串切分成小写词元序列
func compile(surface string, tokenizer nlp.Tokenizer) ([]string, error) {
	toks, err := tokenizer.Tokenize(surface)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok.Lower != "" {
			out = append(out, tok.Lower)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyPattern
	}
	return out, nil
}

// Match 在词元流上运行所有模式，返回全部命中（包括重叠的命中）
func (v *Vocabulary) Match(tokens []nlp.Token) []Match {
	var matches []Match
	for i, tok := range tokens {
		for _, idx := range v.byFirst[tok.Lower] {
			p := v.patterns[idx]
			if i+len(p.Tokens) > len(tokens) {
				continue
			}
			hit := true
			for j := 1; j < len(p.Tokens); j++ {
				if tokens[i+j].Lower != p.Tokens[j] {
					hit = false
					break
				}
			}
			if hit {
				matches = append(matches, Match{
					SkillID: p.SkillID,
					Start:   tok.Start,
					End:     tokens[i+len(p.Tokens)-1].End,
				})
			}
		}
	}
	return matches
}

// Entries 返回规范化后的词表条目副本
func (v *Vocabulary) Entries() []SkillEntry {
	out := make([]SkillEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Patterns 返回编译后的模式副本
func (v *Vocabulary) Patterns() []Pattern {
	out := make([]Pattern, len(v.patterns))
	for i, p := range v.patterns {
		out[i] = Pattern{SkillID: p.SkillID, Tokens: append([]string(nil), p.Tokens...)}
	}
	return out
}

// Len 词表中的技能数量
func (v *Vocabulary) Len() int {
	return len(v.entries)
}
