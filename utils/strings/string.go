package strings

import (
	"strings"
)

// ===== 基础操作 =====

// IsEmpty 检查字符串是否为空
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank 检查字符串是否为空或只包含空白字符
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank 检查字符串是否非空且包含非空白字符
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Default 如果字符串为空，返回默认值
func Default(s string, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// ===== 路径处理 =====

// EnsureLeadingSlash 确保路径以 / 开头
func EnsureLeadingSlash(p string) string {
	if p == "" || p[0] != '/' {
		return "/" + p
	}
	return p
}

// TrimTrailingSlash 去掉路径末尾的 /，根路径除外
func TrimTrailingSlash(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return strings.TrimRight(p, "/")
	}
	return p
}
