package themes

import (
	"fmt"

	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

// Elements stoplight elements 渲染器适配器
type Elements struct {
	base
}

// NewElements 创建 Elements 适配器
// specURL 不能为空白，否则返回 ErrConfiguration
func NewElements(specURL string, opts ...Option) (*Elements, error) {
	b, err := newBase(brand.KindElements, specURL, opts...)
	if err != nil {
		return nil, err
	}

	e := &Elements{base: b}

	// elements-api 默认属性
	e.set("layout", "sidebar")
	e.set("hideInternal", "false")
	e.set("hideTryIt", "false")
	e.set("hideSchemas", "false")
	e.set("hideExport", "false")
	e.set("router", "hash")
	e.set("basePath", "")

	return e, nil
}

// Set 透传任意 elements-api 属性
func (e *Elements) Set(key, value string) *Elements {
	e.set(key, value)
	return e
}

// WithSidebarLayout 使用侧边栏布局
func (e *Elements) WithSidebarLayout() *Elements {
	e.set("layout", "sidebar")
	return e
}

// WithStackedLayout 使用纵向堆叠布局
func (e *Elements) WithStackedLayout() *Elements {
	e.set("layout", "stacked")
	return e
}

// WithTryItDisabled 隐藏在线调试面板
func (e *Elements) WithTryItDisabled() *Elements {
	e.set("hideTryIt", "true")
	return e
}

// WithTryItCredentialsPolicy 设置调试请求的凭证策略
// policy 可选 omit、include、same-origin
func (e *Elements) WithTryItCredentialsPolicy(policy string) *Elements {
	e.set("tryItCredentialsPolicy", policy)
	return e
}

// LayoutConfiguration 返回布局相关配置的只读视图
func (e *Elements) LayoutConfiguration() map[string]string {
	return map[string]string{
		"layout":                 e.getOr("layout", "sidebar"),
		"hideInternal":           e.getOr("hideInternal", "false"),
		"hideTryIt":              e.getOr("hideTryIt", "false"),
		"hideSchemas":            e.getOr("hideSchemas", "false"),
		"hideExport":             e.getOr("hideExport", "false"),
		"tryItCredentialsPolicy": e.getOr("tryItCredentialsPolicy", ""),
		"router":                 e.getOr("router", "hash"),
		"basePath":               e.getOr("basePath", ""),
	}
}

// Render 产出完整 HTML 文档
// 隐藏调试面板时又设置凭证策略视为配置冲突
func (e *Elements) Render() (string, error) {
	if e.getOr("hideTryIt", "false") == "true" && e.getOr("tryItCredentialsPolicy", "") != "" {
		return "", errors.ErrConfiguration.WithMessage("已隐藏调试面板, 凭证策略不生效")
	}

	attrs := e.merged()
	attrs["apiDescriptionUrl"] = e.specURL
	if attrs["basePath"] == "" {
		delete(attrs, "basePath")
	}

	body := fmt.Sprintf(`<div class="docs-elements-container">
    <div class="docs-loading">Loading API Documentation...</div>
    <elements-api%s
    ></elements-api>
</div>`, attrString(attrs))

	script := `<script>
(function() {
    var el = document.querySelector('elements-api');
    if (!el) {
        return;
    }
    var hideLoading = function() {
        var loading = document.querySelector('.docs-loading');
        if (loading && loading.parentNode) {
            loading.parentNode.removeChild(loading);
        }
    };
    customElements.whenDefined('elements-api').then(hideLoading);
    setTimeout(hideLoading, 5000);
})();
</script>`

	return e.renderPage(page{
		title: e.title,
		headLinks: []string{
			fmt.Sprintf(`<link rel="stylesheet" href=%q>`, elementsCSSURL),
		},
		styles: []string{e.themeCSS()},
		body:   body,
		scripts: []string{
			fmt.Sprintf("<script src=%q></script>", elementsJSURL),
			script,
		},
	}), nil
}

// themeCSS Elements 专属品牌样式
func (e *Elements) themeCSS() string {
	return fmt.Sprintf(`body {
    margin: 0;
    font-family: %[4]s;
    background-color: %[3]s;
}
elements-api {
    display: block;
    height: 100vh;
    --color-primary: %[1]s;
    --color-success: %[5]s;
    --color-warning: %[6]s;
    --color-danger: %[7]s;
    --font-ui: %[4]s;
    --font-code: %[8]s;
}
.sl-elements .sl-sidebar {
    background-color: %[2]s;
}
.sl-elements .sl-sidebar .sl-text-body {
    color: %[9]s;
}
.sl-elements a {
    color: %[10]s;
}
.sl-elements a:hover {
    color: %[11]s;
}
.docs-elements-container {
    position: relative;
    min-height: 100vh;
}
.docs-elements-container .docs-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
}
`, e.brand.PrimaryColor, e.brand.NavBgColor, e.brand.BackgroundColor,
		e.brand.RegularFont, brand.ColorAccentGreen, brand.ColorAccentYellow,
		brand.ColorAccentRed, e.brand.MonoFont, e.brand.NavTextColor,
		brand.ColorLinkLight, brand.ColorLinkLighter)
}
