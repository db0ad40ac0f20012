package tracing

import (
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultMaxLength 默认最大属性长度
	DefaultMaxLength = 200
)

// maskPIILookup 需要掩码处理的关键字映射
var maskPIILookup = map[string]bool{
	"email":    true,
	"phone":    true,
	"password": true,
	"address":  true,
	"name":     true,
	"secret":   true,
	"token":    true,
	"api_key":  true,
}

// SafeAttribute 构建经过掩码和截断处理的字符串属性
func SafeAttribute(name string, value string) attribute.KeyValue {
	return attribute.String(name, SafeAttributeValue(name, value, DefaultMaxLength))
}

// SafeAttributeValue 确保属性值安全，不包含敏感信息
// 名称含敏感关键字时返回掩码后的值，否则超过 maxLength 时截断
func SafeAttributeValue(name string, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for keyword := range maskPIILookup {
		if strings.Contains(lowerName, keyword) {
			return MaskPII(value)
		}
	}
	return TruncateString(value, maxLength)
}

// MaskPII 对个人敏感信息进行掩码处理
func MaskPII(value string) string {
	if value == "" {
		return ""
	}

	runes := []rune(value)
	length := len(runes)

	if length <= 1 {
		return "*"
	}
	if length <= 4 {
		if length == 2 {
			return string(runes[0:1]) + "*"
		}
		return string(runes[0:1]) + strings.Repeat("*", length-2) + string(runes[length-1:])
	}

	// "jane.doe@example.com" -> "ja****************om"
	return string(runes[0:2]) + strings.Repeat("*", length-4) + string(runes[length-2:])
}

// MaskOptional 对可选字段掩码，nil 返回空串
func MaskOptional(value *string) string {
	if value == nil {
		return ""
	}
	return MaskPII(*value)
}

// TruncateString 截断字符串，并在截断时添加省略号
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	half := (maxLength - 3) / 2
	if half < 1 {
		half = 1
	}

	// 保留前后部分，中间用...连接
	return string(runes[:half]) + "..." + string(runes[len(runes)-half:])
}
