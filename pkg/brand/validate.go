package brand

import (
	"regexp"
	"strings"

	"github.com/tokmz/docskit/pkg/errors"
)

// 合法的十六进制颜色：#rgb、#rrggbb、#rrggbbaa
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// validColor 判断颜色值是否可被渲染器接受。
// 除十六进制外，CSS 函数形式与变量引用也放行。
func validColor(v string) bool {
	if hexColorRegex.MatchString(v) {
		return true
	}
	for _, prefix := range []string{"rgb(", "rgba(", "hsl(", "hsla(", "var("} {
		if strings.HasPrefix(v, prefix) && strings.HasSuffix(v, ")") {
			return true
		}
	}
	return false
}

// ValidateColors 校验品牌配置中所有颜色字段。
// 构造时不做任何校验，畸形颜色值原样保留；
// 需要快速失败的调用方在装配阶段显式调用本函数。
// 返回 nil 或携带全部非法字段名的 ErrConfiguration。
func ValidateColors(c *Config) error {
	fields := []struct {
		name  string
		value string
	}{
		{"primary_color", c.PrimaryColor},
		{"background_color", c.BackgroundColor},
		{"text_color", c.TextColor},
		{"nav_bg_color", c.NavBgColor},
		{"nav_text_color", c.NavTextColor},
		{"nav_hover_bg_color", c.NavHoverBgColor},
		{"nav_hover_text_color", c.NavHoverTextColor},
		{"nav_accent_color", c.NavAccentColor},
		{"nav_accent_text_color", c.NavAccentTextColor},
		{"header_color", c.HeaderColor},
	}

	var bad []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !validColor(f.value) {
			bad = append(bad, f.name)
		}
	}

	if len(bad) > 0 {
		return errors.ErrConfiguration.WithMessage("非法颜色值: " + strings.Join(bad, ", "))
	}
	return nil
}
