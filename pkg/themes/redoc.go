package themes

import (
	"fmt"

	"github.com/tokmz/docskit/pkg/brand"
)

// ReDoc redoc 渲染器适配器
type ReDoc struct {
	base
	themeOverride string // Redoc.init 的 theme JSON，覆盖品牌派生主题
}

// NewReDoc 创建 ReDoc 适配器
// specURL 不能为空白，否则返回 ErrConfiguration
func NewReDoc(specURL string, opts ...Option) (*ReDoc, error) {
	b, err := newBase(brand.KindReDoc, specURL, opts...)
	if err != nil {
		return nil, err
	}

	r := &ReDoc{base: b}

	// Redoc.init 默认选项
	r.set("scrollYOffset", "60")
	r.set("hideDownloadButton", "false")
	r.set("disableSearch", "false")
	r.set("hideLoading", "false")
	r.set("nativeScrollbars", "false")

	return r, nil
}

// Set 透传任意 Redoc.init 选项
func (r *ReDoc) Set(key, value string) *ReDoc {
	r.set(key, value)
	return r
}

// WithThemeOverride 用自定义 theme JSON 整体替换品牌派生主题
func (r *ReDoc) WithThemeOverride(themeJSON string) *ReDoc {
	r.themeOverride = themeJSON
	return r
}

// WithSearchDisabled 关闭左侧搜索
func (r *ReDoc) WithSearchDisabled() *ReDoc {
	r.set("disableSearch", "true")
	return r
}

// ThemeConfiguration 返回品牌派生主题的扁平只读视图
func (r *ReDoc) ThemeConfiguration() map[string]string {
	return map[string]string{
		"colors.primary.main":        r.brand.PrimaryColor,
		"colors.success.main":        brand.ColorAccentGreen,
		"colors.warning.main":        brand.ColorAccentYellow,
		"colors.error.main":          brand.ColorAccentRed,
		"colors.text.primary":        r.brand.TextColor,
		"colors.background.primary":  r.brand.BackgroundColor,
		"typography.fontFamily":      r.brand.RegularFont,
		"typography.code.fontFamily": r.brand.MonoFont,
		"sidebar.backgroundColor":    r.brand.NavBgColor,
		"sidebar.textColor":          r.brand.NavTextColor,
		"sidebar.activeTextColor":    r.brand.PrimaryColor,
		"rightPanel.backgroundColor": r.brand.HeaderColor,
		"rightPanel.textColor":       r.brand.TextColor,
	}
}

// themeJSON 品牌派生的 Redoc theme，结构固定，输出确定
func (r *ReDoc) themeJSON() string {
	if r.themeOverride != "" {
		return r.themeOverride
	}
	return fmt.Sprintf(`{
        "colors": {
            "primary": {"main": %[1]q},
            "success": {"main": %[2]q},
            "warning": {"main": %[3]q},
            "error": {"main": %[4]q}
        },
        "typography": {
            "fontSize": "14px",
            "lineHeight": "1.5em",
            "fontFamily": %[5]q,
            "code": {"fontSize": "13px", "fontFamily": %[6]q},
            "headings": {"fontFamily": %[5]q, "fontWeight": "600"}
        },
        "sidebar": {
            "backgroundColor": %[7]q,
            "textColor": %[8]q,
            "activeTextColor": %[1]q
        },
        "rightPanel": {
            "backgroundColor": %[9]q,
            "textColor": %[10]q
        }
    }`, r.brand.PrimaryColor, brand.ColorAccentGreen, brand.ColorAccentYellow,
		brand.ColorAccentRed, r.brand.RegularFont, r.brand.MonoFont,
		r.brand.NavBgColor, r.brand.NavTextColor, r.brand.HeaderColor, r.brand.TextColor)
}

// Render 产出完整 HTML 文档
func (r *ReDoc) Render() (string, error) {
	opts := make(map[string]string, len(r.opts))
	for k, v := range r.opts {
		opts[k] = v
	}

	script := fmt.Sprintf(`<script>
(function() {
    var options = %s;
    options.theme = %s;
    Redoc.init(%q, options, document.getElementById('redoc-container'), function(err) {
        var loading = document.querySelector('.docs-loading');
        if (loading && loading.parentNode) {
            loading.parentNode.removeChild(loading);
        }
        if (err) {
            var error = document.createElement('div');
            error.className = 'docs-error';
            error.innerHTML = '<h3>Failed to Load API Documentation</h3>' +
                '<p>Unable to load the OpenAPI specification. Please check the URL and try again.</p>';
            document.querySelector('.docs-redoc-container').appendChild(error);
        }
    });
})();
</script>`, jsObject(opts, "    "), r.themeJSON(), r.specURL)

	body := `<div class="docs-redoc-container">
    <div class="docs-loading">Loading API Documentation...</div>
    <div id="redoc-container"></div>
</div>`

	return r.renderPage(page{
		title:   r.title,
		styles:  []string{r.themeCSS()},
		body:    body,
		scripts: []string{fmt.Sprintf("<script src=%q></script>", redocJSURL), script},
	}), nil
}

// themeCSS ReDoc 专属品牌样式
func (r *ReDoc) themeCSS() string {
	return fmt.Sprintf(`body {
    margin: 0;
    font-family: %[5]s;
    background-color: %[4]s;
    color: %[6]s;
}
::-webkit-scrollbar {
    width: 8px;
}
::-webkit-scrollbar-track {
    background: %[2]s;
}
::-webkit-scrollbar-thumb {
    background: %[1]s;
    border-radius: 4px;
}
::-webkit-scrollbar-thumb:hover {
    background: %[3]s;
}
.api-info h1 {
    color: %[1]s !important;
}
.http-verb.get,
.http-verb.post {
    background-color: %[1]s !important;
}
.http-verb.put {
    background-color: %[7]s !important;
}
.http-verb.delete {
    background-color: %[8]s !important;
}
.http-verb.patch {
    background-color: %[9]s !important;
}
.docs-redoc-container {
    position: relative;
    min-height: 100vh;
}
.docs-redoc-container .docs-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
}
`, r.brand.PrimaryColor, r.brand.NavBgColor, r.brand.NavAccentColor,
		r.brand.BackgroundColor, r.brand.RegularFont, r.brand.TextColor,
		brand.ColorAccentBlue, brand.ColorAccentRed, brand.ColorAccentYellow)
}
