package vocabulary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// skillsFile 技能词表文件结构
//
//	skills:
//	  - python
//	  - id: node.js
//	    aliases: [nodejs]
type skillsFile struct {
	Skills []SkillEntry `yaml:"skills"`
}

// UnmarshalYAML 同时支持纯字符串和 {id, aliases} 两种写法
func (e *SkillEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.ID = node.Value
		e.Aliases = nil
		return nil
	}
	type plain SkillEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = SkillEntry(p)
	return nil
}

// LoadEntries 从YAML文件加载词表条目
func LoadEntries(path string) ([]SkillEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取技能词表文件失败: %w", err)
	}

	var f skillsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析技能词表文件失败: %w", err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("技能词表文件 %s 中没有任何技能", path)
	}
	return f.Skills, nil
}
