package vocabulary

// DefaultSkills 内置的技能清单
var DefaultSkills = []string{
	"python", "javascript", "react", "react.js", "node.js", "nodejs",
	"mongodb", "sql", "mysql", "postgresql", "aws", "docker", "git",
	"html", "css", "fastapi", "flask", "django", "java", "c++",
	"typescript", "express", "tailwind", "bootstrap",
}

// DefaultEntries 把内置清单转换成词表条目
func DefaultEntries() []SkillEntry {
	entries := make([]SkillEntry, 0, len(DefaultSkills))
	for _, s := range DefaultSkills {
		entries = append(entries, SkillEntry{ID: s})
	}
	return entries
}
