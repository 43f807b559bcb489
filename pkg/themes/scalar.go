package themes

import (
	"fmt"
	"html"

	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

// Scalar scalar api-reference 渲染器适配器
type Scalar struct {
	base
	hotKeySet bool // searchHotKey 是否被显式设置过
}

// NewScalar 创建 Scalar 适配器
// specURL 不能为空白，否则返回 ErrConfiguration
func NewScalar(specURL string, opts ...Option) (*Scalar, error) {
	b, err := newBase(brand.KindScalar, specURL, opts...)
	if err != nil {
		return nil, err
	}

	s := &Scalar{base: b}

	// data-configuration 默认选项，theme 与 darkMode 由品牌派生
	s.set("layout", "modern")
	s.set("showSidebar", "true")
	s.set("hideModels", "false")
	s.set("hideDownloadButton", "false")

	return s, nil
}

// Set 透传任意 data-configuration 选项
func (s *Scalar) Set(key, value string) *Scalar {
	if key == "searchHotKey" {
		s.hotKeySet = true
	}
	s.set(key, value)
	return s
}

// WithModernLayout 使用 modern 布局
func (s *Scalar) WithModernLayout() *Scalar {
	s.set("layout", "modern")
	return s
}

// WithClassicLayout 使用 classic 布局
func (s *Scalar) WithClassicLayout() *Scalar {
	s.set("layout", "classic")
	return s
}

// WithSidebarHidden 隐藏侧边栏
func (s *Scalar) WithSidebarHidden() *Scalar {
	s.set("showSidebar", "false")
	return s
}

// WithModelsHidden 隐藏数据模型分区
func (s *Scalar) WithModelsHidden() *Scalar {
	s.set("hideModels", "true")
	return s
}

// WithSearchHotKey 设置搜索快捷键，如 "k" 表示 ctrl/cmd+k
func (s *Scalar) WithSearchHotKey(key string) *Scalar {
	s.hotKeySet = true
	s.set("searchHotKey", key)
	return s
}

// Configuration 返回已生效配置的只读视图
func (s *Scalar) Configuration() map[string]string {
	cfg := s.merged()
	if _, ok := cfg["searchHotKey"]; !ok {
		cfg["searchHotKey"] = "k"
	}
	return cfg
}

// Render 产出完整 HTML 文档
// 隐藏侧边栏时又显式设置搜索快捷键视为配置冲突
func (s *Scalar) Render() (string, error) {
	if s.hotKeySet && s.getOr("showSidebar", "true") == "false" {
		return "", errors.ErrConfiguration.WithMessage("已隐藏侧边栏, 搜索快捷键不生效")
	}

	cfg := s.merged()
	cfg["customCss"] = s.brand.CSSVariables()

	script := fmt.Sprintf(`<script id="api-reference" data-url=%q data-configuration="%s"></script>`,
		s.specURL, html.EscapeString(jsObject(cfg, "")))

	body := `<div class="docs-scalar-container">
    <div class="docs-loading">Loading API Documentation...</div>
</div>`

	hide := `<script>
(function() {
    var hideLoading = function() {
        var loading = document.querySelector('.docs-loading');
        if (loading && loading.parentNode) {
            loading.parentNode.removeChild(loading);
        }
    };
    window.addEventListener('load', function() {
        setTimeout(hideLoading, 300);
    });
})();
</script>`

	return s.renderPage(page{
		title:  s.title,
		styles: []string{s.themeCSS()},
		body:   body,
		scripts: []string{
			script,
			fmt.Sprintf("<script src=%q></script>", scalarJSURL),
			hide,
		},
	}), nil
}

// themeCSS Scalar 专属品牌样式
func (s *Scalar) themeCSS() string {
	return fmt.Sprintf(`body {
    margin: 0;
    font-family: %[3]s;
    background-color: %[2]s;
}
.scalar-app {
    --scalar-color-accent: %[1]s;
    --scalar-background-1: %[2]s;
    --scalar-color-1: %[4]s;
    --scalar-sidebar-background-1: %[5]s;
    --scalar-sidebar-color-1: %[6]s;
    --scalar-font: %[3]s;
    --scalar-font-code: %[7]s;
}
.scalar-app a {
    color: %[8]s;
}
.scalar-app a:hover {
    color: %[9]s;
}
.docs-scalar-container {
    position: relative;
    min-height: 100vh;
}
.docs-scalar-container .docs-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
}
`, s.brand.PrimaryColor, s.brand.BackgroundColor, s.brand.RegularFont,
		s.brand.TextColor, s.brand.NavBgColor, s.brand.NavTextColor,
		s.brand.MonoFont, brand.ColorLinkLight, brand.ColorLinkLighter)
}
