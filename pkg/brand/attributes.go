package brand

import "strconv"

// Kind 文档渲染器种类
type Kind string

const (
	KindRapiDoc   Kind = "rapidoc"
	KindSwaggerUI Kind = "swagger"
	KindReDoc     Kind = "redoc"
	KindElements  Kind = "elements"
	KindScalar    Kind = "scalar"
)

// Attributes 将品牌配置派生为指定渲染器的属性映射。
// 只包含对该渲染器有意义的字段；SwaggerUI 与 ReDoc 不支持
// 元素属性定制，品牌通过 CSSVariables 注入，返回空映射。
// 相同输入始终产出相同映射。
func (c *Config) Attributes(kind Kind) map[string]string {
	switch kind {
	case KindRapiDoc:
		return map[string]string{
			"theme":                 string(c.Theme),
			"bg-color":              c.BackgroundColor,
			"text-color":            c.TextColor,
			"header-color":          c.HeaderColor,
			"primary-color":         c.PrimaryColor,
			"nav-bg-color":          c.NavBgColor,
			"nav-text-color":        c.NavTextColor,
			"nav-hover-bg-color":    c.NavHoverBgColor,
			"nav-hover-text-color":  c.NavHoverTextColor,
			"nav-accent-color":      c.NavAccentColor,
			"nav-accent-text-color": c.NavAccentTextColor,
			"regular-font":          c.RegularFont,
			"mono-font":             c.MonoFont,
			"logo":                  c.Logo(),
		}
	case KindElements:
		return map[string]string{
			"logo": c.Logo(),
		}
	case KindScalar:
		return map[string]string{
			"theme":    string(c.Theme),
			"darkMode": strconv.FormatBool(c.Theme == ThemeDark),
		}
	default:
		return map[string]string{}
	}
}
