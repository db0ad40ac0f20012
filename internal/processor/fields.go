package processor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-parser/internal/nlp"
	"resume-parser/internal/vocabulary"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}\s?)?(\(?\d{3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)
)

// extractName 先取文档开头附近的第一个PERSON实体，否则退回到首个非空行
func extractName(text string, persons []nlp.Entity, threshold int) *string {
	for _, ent := range persons {
		if ent.Start < 0 || ent.Start > len(text) {
			continue
		}
		// 阈值按字符计，实体偏移是字节
		if utf8.RuneCountInString(text[:ent.Start]) < threshold {
			name := ent.Text
			return &name
		}
	}
	return firstLineName(text)
}

// firstLineName 首个非空行不含数字且长于2个字符时视为姓名
func firstLineName(text string) *string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.IndexFunc(line, unicode.IsDigit) >= 0 || utf8.RuneCountInString(line) <= 2 {
			return nil
		}
		return &line
	}
	return nil
}

func extractEmail(text string) *string {
	return firstMatch(emailPattern, text)
}

func extractPhone(text string) *string {
	return firstMatch(phonePattern, text)
}

func firstMatch(re *regexp.Regexp, text string) *string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	m := text[loc[0]:loc[1]]
	return &m
}

// extractSkills 把所有匹配折叠成规范技能ID集合
func extractSkills(matches []vocabulary.Match) map[string]struct{} {
	skills := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		skills[m.SkillID] = struct{}{}
	}
	return skills
}
