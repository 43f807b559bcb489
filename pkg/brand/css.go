package brand

import (
	"fmt"
	"strings"
)

// CSSVariables 将品牌配置派生为 CSS 变量声明块。
// 每个已配置字段恰好产出一条 `--brand-<field>` 声明，
// 按变量名固定排序，相同配置重复调用字节级一致。
func (c *Config) CSSVariables() string {
	// 变量名已按字典序排列，保持输出顺序稳定
	decls := []struct {
		name  string
		value string
	}{
		{"--brand-bg-color", c.BackgroundColor},
		{"--brand-header-color", c.HeaderColor},
		{"--brand-mono-font", c.MonoFont},
		{"--brand-nav-accent-color", c.NavAccentColor},
		{"--brand-nav-accent-text-color", c.NavAccentTextColor},
		{"--brand-nav-bg-color", c.NavBgColor},
		{"--brand-nav-hover-bg-color", c.NavHoverBgColor},
		{"--brand-nav-hover-text-color", c.NavHoverTextColor},
		{"--brand-nav-text-color", c.NavTextColor},
		{"--brand-primary-color", c.PrimaryColor},
		{"--brand-regular-font", c.RegularFont},
		{"--brand-text-color", c.TextColor},
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, d := range decls {
		if d.value == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s: %s;\n", d.name, d.value)
	}
	b.WriteString("}\n")
	return b.String()
}

// LoadingCSS 返回加载态与错误态的静态样式片段，
// 仅由背景色与主色参数化。
func (c *Config) LoadingCSS() string {
	return fmt.Sprintf(`.docs-loading {
    display: flex;
    align-items: center;
    justify-content: center;
    min-height: 100vh;
    background: %[1]s;
    color: %[2]s;
    font-size: 1.1rem;
}
.docs-loading::before {
    content: '';
    width: 28px;
    height: 28px;
    margin-right: 12px;
    border: 3px solid %[1]s;
    border-top-color: %[2]s;
    border-radius: 50%%;
    animation: docs-spin 0.8s linear infinite;
}
@keyframes docs-spin {
    to { transform: rotate(360deg); }
}
.docs-error {
    padding: 2rem;
    text-align: center;
    background: %[1]s;
    color: %[2]s;
}
`, c.BackgroundColor, c.PrimaryColor)
}

// HeadCSSTags 将附加样式表地址展开为 link 标签，保持声明顺序
func (c *Config) HeadCSSTags() string {
	var b strings.Builder
	for _, u := range c.CustomCSSURLs {
		fmt.Fprintf(&b, "    <link rel=\"stylesheet\" href=%q>\n", u)
	}
	return b.String()
}

// TailJSTags 将附加脚本地址展开为 script 标签，保持声明顺序
func (c *Config) TailJSTags() string {
	var b strings.Builder
	for _, u := range c.CustomJSURLs {
		fmt.Fprintf(&b, "    <script src=%q></script>\n", u)
	}
	return b.String()
}
