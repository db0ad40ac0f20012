package nlp

import (
	"strings"
)

// LabelPerson 人名实体标签，目前唯一被消费的实体类型
const LabelPerson = "PERSON"

// Token 分词产生的最小文本单元
type Token struct {
	Text  string // 原文中的词元文本
	Lower string // 小写形式，用于词表匹配
	Start int    // 原文中的起始字节偏移
	End   int    // 原文中的结束字节偏移（不含）
	Label string // 实体识别的IOB标签，例如 B-PERSON、I-PERSON、O
}

// Entity 识别器标注出的实体片段
type Entity struct {
	Label string
	Text  string
	Start int
	End   int
}

// Tokenizer 分词器接口
// 词表模式构建和运行时匹配必须使用同一个实现，否则带标点的技能永远无法命中
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// AlignTokens 将分词器输出的词元回填到原文中的偏移位置
// labels 可以为 nil；找不到的词元记为零宽度，游标不前进
func AlignTokens(text string, pieces []string, labels []string) []Token {
	tokens := make([]Token, 0, len(pieces))
	cursor := 0
	for i, piece := range pieces {
		tok := Token{Text: piece, Lower: strings.ToLower(piece), Start: cursor, End: cursor}
		if i < len(labels) {
			tok.Label = labels[i]
		}
		if piece != "" {
			if idx := strings.Index(text[cursor:], piece); idx >= 0 {
				tok.Start = cursor + idx
				tok.End = tok.Start + len(piece)
				cursor = tok.End
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// splitIOB 拆分IOB标签，返回实体类型以及是否为实体开头
func splitIOB(label string) (string, bool) {
	switch {
	case label == "" || label == "O":
		return "", false
	case strings.HasPrefix(label, "B-"):
		return label[2:], true
	case strings.HasPrefix(label, "I-"):
		return label[2:], false
	default:
		return label, false
	}
}

// GroupEntities 把连续的同类IOB词元合并成实体，按文档顺序返回
func GroupEntities(text string, tokens []Token) []Entity {
	var (
		entities []Entity
		current  *Entity
	)
	flush := func() {
		if current != nil {
			current.Text = text[current.Start:current.End]
			entities = append(entities, *current)
			current = nil
		}
	}

	for _, tok := range tokens {
		kind, begin := splitIOB(tok.Label)
		if kind == "" {
			flush()
			continue
		}
		if current == nil || begin || current.Label != kind {
			flush()
			current = &Entity{Label: kind, Start: tok.Start, End: tok.End}
			continue
		}
		if tok.End > current.End {
			current.End = tok.End
		}
	}
	flush()
	return entities
}

// FilterEntities 只保留指定标签的实体
func FilterEntities(entities []Entity, label string) []Entity {
	var out []Entity
	for _, ent := range entities {
		if ent.Label == label {
			out = append(out, ent)
		}
	}
	return out
}

// LabelSpans 按识别器给出的实体（只用 Label 和 Text）重新生成IOB标签
// 实体文本按空白拆成词元序列，在 pieces 中从游标处顺序查找；找不到的实体跳过
func LabelSpans(pieces []string, entities []Entity) []string {
	labels := make([]string, len(pieces))
	for i := range labels {
		labels[i] = "O"
	}

	cursor := 0
	for _, ent := range entities {
		parts := strings.Fields(ent.Text)
		if len(parts) == 0 || ent.Label == "" {
			continue
		}
		at := indexSequence(pieces, parts, cursor)
		if at < 0 {
			continue
		}
		labels[at] = "B-" + ent.Label
		for j := 1; j < len(parts); j++ {
			labels[at+j] = "I-" + ent.Label
		}
		cursor = at + len(parts)
	}
	return labels
}

func indexSequence(pieces, parts []string, from int) int {
	for i := from; i+len(parts) <= len(pieces); i++ {
		match := true
		for j, part := range parts {
			if pieces[i+j] != part {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
