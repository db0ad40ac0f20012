package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignTokens(t *testing.T) {
	text := "Skills: Python, React.js"
	tokens := AlignTokens(text, []string{"Skills", ":", "Python", ",", "React.js"}, nil)
	require.Len(t, tokens, 5)

	for _, tok := range tokens {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End], "偏移应该能还原原文")
	}
	assert.Equal(t, "react.js", tokens[4].Lower)
	assert.Equal(t, 16, tokens[4].Start)
}

func TestAlignTokensMissingPiece(t *testing.T) {
	// 分词器改写过的词元在原文中找不到，记为零宽度且不影响后续对齐
	text := "a “quoted” b"
	tokens := AlignTokens(text, []string{"a", "\"", "quoted", "\"", "b"}, nil)
	require.Len(t, tokens, 5)

	assert.Equal(t, tokens[1].Start, tokens[1].End)
	assert.Equal(t, "quoted", text[tokens[2].Start:tokens[2].End])
	assert.Equal(t, "b", text[tokens[4].Start:tokens[4].End])
}

func TestGroupEntities(t *testing.T) {
	text := "Jane Doe met John Smith in Paris"
	pieces := []string{"Jane", "Doe", "met", "John", "Smith", "in", "Paris"}
	labels := []string{"B-PERSON", "I-PERSON", "O", "B-PERSON", "I-PERSON", "O", "B-GPE"}
	tokens := AlignTokens(text, pieces, labels)

	entities := GroupEntities(text, tokens)
	require.Len(t, entities, 3)
	assert.Equal(t, Entity{Label: LabelPerson, Text: "Jane Doe", Start: 0, End: 8}, entities[0])
	assert.Equal(t, "John Smith", entities[1].Text)
	assert.Equal(t, "GPE", entities[2].Label)

	persons := FilterEntities(entities, LabelPerson)
	assert.Len(t, persons, 2)
}

func TestGroupEntitiesAdjacentBegin(t *testing.T) {
	// 两个相邻的 B- 标签是两个独立实体
	text := "Ann Bob"
	tokens := AlignTokens(text, []string{"Ann", "Bob"}, []string{"B-PERSON", "B-PERSON"})

	entities := GroupEntities(text, tokens)
	require.Len(t, entities, 2)
	assert.Equal(t, "Ann", entities[0].Text)
	assert.Equal(t, "Bob", entities[1].Text)
}

func TestGroupEntitiesBareLabels(t *testing.T) {
	text := "Mary Jones"
	tokens := AlignTokens(text, []string{"Mary", "Jones"}, []string{"PERSON", "PERSON"})

	entities := GroupEntities(text, tokens)
	require.Len(t, entities, 1)
	assert.Equal(t, "Mary Jones", entities[0].Text)
}

func TestProseTokenizerKeepsInternalPunctuation(t *testing.T) {
	tokenizer := NewProseTokenizer(WithEntities(false))
	assert.False(t, tokenizer.EntitiesEnabled())

	text := "Skills: Python, React.js and c++"
	tokens, err := tokenizer.Tokenize(text)
	require.NoError(t, err)

	var lowers []string
	for _, tok := range tokens {
		lowers = append(lowers, tok.Lower)
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
	}
	assert.Contains(t, lowers, "python")
	assert.Contains(t, lowers, "react.js")
	assert.Contains(t, lowers, "c++")
	assert.NotContains(t, lowers, "python,", "尾随逗号应该被切分出去")
}

func TestProseTokenizerEmptyText(t *testing.T) {
	tokens, err := NewProseTokenizer().Tokenize("   \n\t")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestProseTokenizerEntityOffsets(t *testing.T) {
		tokenizer := NewProseTokenizer()
	text := "Jane Doe is a software engineer living in Seattle."
	tokens, err := tokenizer.Tokenize(text)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	entities := GroupEntities(text, tokens)
	persons := FilterEntities(entities, LabelPerson)
	require.NotEmpty(t, persons)
	assert.Equal(t, "Jane Doe", persons[0].Text)

	for _, ent := range entities {
		assert.True(t, ent.Start >= 0 && ent.End <= len(text) && ent.Start <= ent.End)
		assert.Equal(t, text[ent.Start:ent.End], ent.Text)
	}
}

func TestLabelSpans(t *testing.T) {
	pieces := []string{"Jane", "Doe", "met", "Jane", "at", "Google", "."}
	labels := LabelSpans(pieces, []Entity{
		{Label: LabelPerson, Text: "Jane Doe"},
		{Label: LabelPerson, Text: "Jane"},
		{Label: "ORG", Text: "Nowhere Inc"}, // 找不到的实体被跳过
		{Label: "GPE", Text: "Google"},
	})

	assert.Equal(t, []string{"B-PERSON", "I-PERSON", "O", "B-PERSON", "O", "B-GPE", "O"}, labels)

	text := "Jane Doe met Jane at Google."
	entities := GroupEntities(text, AlignTokens(text, pieces, labels))
	require.Len(t, entities, 3)
	assert.Equal(t, "Jane Doe", entities[0].Text)
	assert.Equal(t, "Jane", entities[1].Text)
	assert.Equal(t, 13, entities[1].Start)
}

func TestLabelSpansEmpty(t *testing.T) {
	assert.Equal(t, []string{"O", "O"}, LabelSpans([]string{"a", "b"}, nil))
	assert.Empty(t, LabelSpans(nil, []Entity{{Label: LabelPerson, Text: "Jane"}}))
}

func TestProseTokenizerMultiWordPerson(t *testing.T) {
	tokenizer := NewProseTokenizer()
	text := "Jane Doe\njane.doe@example.com\n555-123-4567\nSkills: Python, React.js"

	tokens, err := tokenizer.Tokenize(text)
	require.NoError(t, err)

	persons := FilterEntities(GroupEntities(text, tokens), LabelPerson)
	require.NotEmpty(t, persons)
	assert.Equal(t, "Jane Doe", persons[0].Text)
	assert.Equal(t, 0, persons[0].Start)
}

func TestProseTokenizerPlainSharesTokenization(t *testing.T) {
	tokenizer := NewProseTokenizer()
	plain := tokenizer.Plain()
	assert.False(t, plain.EntitiesEnabled())
	assert.Same(t, tokenizer.model, plain.model)

	text := "John Smith is a software engineer at Google. Skills: Go, c++ and node.js"
	withNER, err := tokenizer.Tokenize(text)
	require.NoError(t, err)
	without, err := plain.Tokenize(text)
	require.NoError(t, err)

	require.Equal(t, len(withNER), len(without))
	for i := range withNER {
		assert.Equal(t, withNER[i].Text, without[i].Text)
		assert.Equal(t, withNER[i].Start, without[i].Start)
		assert.Empty(t, without[i].Label)
	}
}
