package types

import "sort"

// ExtractionResult 简历字段抽取结果
// 未找到的字段为 nil，序列化为 null，与"存在但为空"区分开
type ExtractionResult struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Phone  *string  `json:"phone"`
	Skills []string `json:"skills"` // 无序、去重；调用方应按集合比较
}

// NewExtractionResult 由技能集合构建结果，技能排序仅为了输出稳定
func NewExtractionResult(name, email, phone *string, skills map[string]struct{}) *ExtractionResult {
	list := make([]string, 0, len(skills))
	for s := range skills {
		list = append(list, s)
	}
	sort.Strings(list)

	return &ExtractionResult{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Skills: list,
	}
}

// SkillSet 以集合形式返回技能
func (r *ExtractionResult) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Skills))
	for _, s := range r.Skills {
		set[s] = struct{}{}
	}
	return set
}

// StringValue 解引用可选字符串，nil 返回空串
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
