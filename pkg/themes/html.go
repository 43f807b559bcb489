package themes

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// 渲染器静态资源默认地址
const (
	rapidocJSURL   = "https://unpkg.com/rapidoc/dist/rapidoc-min.js"
	swaggerJSURL   = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"
	swaggerCSSURL  = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css"
	redocJSURL     = "https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"
	elementsJSURL  = "https://unpkg.com/@stoplight/elements/web-components.min.js"
	elementsCSSURL = "https://unpkg.com/@stoplight/elements/styles.min.css"
	scalarJSURL    = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"
)

// page 单个文档页面的组装输入
type page struct {
	title     string
	headLinks []string // link/script 等 head 内附加标签行
	styles    []string // style 块内容，按序拼接
	body      string
	scripts   []string // body 尾部脚本块（完整 <script> 标签）
}

// renderPage 组装完整 HTML 文档。
// 布局固定、输入确定，输出即字节级稳定。
func (b *base) renderPage(p page) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("    <meta charset=\"utf-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", html.EscapeString(p.title))

	if b.brand.FaviconURL != "" {
		fmt.Fprintf(&sb, "    <link rel=\"icon\" type=\"image/x-icon\" href=%q>\n", b.brand.FaviconURL)
	}
	for _, line := range p.headLinks {
		sb.WriteString("    " + line + "\n")
	}
	// 品牌附加样式表在渲染器样式之后加载，保证后者覆盖前者
	sb.WriteString(b.brand.HeadCSSTags())

	sb.WriteString("    <style>\n")
	sb.WriteString(b.brand.CSSVariables())
	sb.WriteString(b.brand.LoadingCSS())
	for _, s := range p.styles {
		sb.WriteString(s)
	}
	sb.WriteString("    </style>\n</head>\n<body>\n")

	sb.WriteString(p.body)
	if !strings.HasSuffix(p.body, "\n") {
		sb.WriteString("\n")
	}
	for _, s := range p.scripts {
		sb.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(b.brand.TailJSTags())
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

// attrString 将属性映射编码为元素属性串。
// 键按字典序排列，值做 HTML 转义，保证输出确定。
func attrString(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "\n        %s=\"%s\"", k, html.EscapeString(attrs[k]))
	}
	return sb.String()
}

// jsObject 将字符串映射编码为 JS 对象字面量。
// 键按字典序排列；true/false 与纯数字按原样输出，其余带引号。
func jsObject(entries map[string]string, indent string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, k := range keys {
		fmt.Fprintf(&sb, "%s    %q: %s", indent, k, jsValue(entries[k]))
		if i < len(keys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent + "}")
	return sb.String()
}

// jsValue 单个 JS 字面量编码
func jsValue(v string) string {
	if v == "true" || v == "false" || v == "null" {
		return v
	}
	if isNumeric(v) {
		return v
	}
	return fmt.Sprintf("%q", v)
}

// isNumeric 判断是否为十进制整数或小数
func isNumeric(v string) bool {
	if v == "" {
		return false
	}
	dot := false
	for i, r := range v {
		if r == '-' && i == 0 {
			continue
		}
		if r == '.' && !dot {
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return v != "-" && v != "."
}
