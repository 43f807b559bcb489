package themes

import (
	"fmt"
	"html"

	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

// RapiDoc rapi-doc 渲染器适配器
type RapiDoc struct {
	base
	auth         authScheme
	headerSlot   string
	stickyHeader bool
}

// NewRapiDoc 创建 RapiDoc 适配器
// specURL 不能为空白，否则返回 ErrConfiguration
func NewRapiDoc(specURL string, opts ...Option) (*RapiDoc, error) {
	b, err := newBase(brand.KindRapiDoc, specURL, opts...)
	if err != nil {
		return nil, err
	}

	r := &RapiDoc{base: b, stickyHeader: true}

	// rapi-doc 元素默认属性
	r.set("render-style", "read")
	r.set("schema-style", "table")
	r.set("default-schema-tab", "schema")
	r.set("response-area-height", "400px")
	r.set("show-info", "true")
	r.set("allow-authentication", "true")
	r.set("allow-server-selection", "true")
	r.set("allow-api-list-style-selection", "true")
	r.set("show-header", "true")
	r.set("show-components", "true")
	r.set("update-route", "true")
	r.set("route-prefix", "#")
	r.set("sort-tags", "true")
	r.set("fill-request-fields-with-example", "true")
	r.set("persist-auth", "false")

	return r, nil
}

// Set 透传任意 rapi-doc 属性，未识别的键原样输出到元素上
func (r *RapiDoc) Set(key, value string) *RapiDoc {
	r.set(key, value)
	return r
}

// WithJWTAuth 配置 JWT 认证，替换之前配置的任何方案
func (r *RapiDoc) WithJWTAuth(tokenURL string) *RapiDoc {
	if tokenURL == "" {
		tokenURL = "/auth/token"
	}
	r.auth.replace(AuthJWT, map[string]string{
		"jwt-url":          tokenURL,
		"jwt-header-name":  "Authorization",
		"jwt-token-prefix": "Bearer ",
	})
	return r
}

// WithAPIKeyAuth 配置 API Key 认证，替换之前配置的任何方案
func (r *RapiDoc) WithAPIKeyAuth(headerName string) *RapiDoc {
	if headerName == "" {
		headerName = "X-API-Key"
	}
	r.auth.replace(AuthAPIKey, map[string]string{
		"api-key-name":     headerName,
		"api-key-location": "header",
	})
	return r
}

// WithHeaderSlot 设置自定义页头插槽内容，覆盖默认 Logo 插槽
func (r *RapiDoc) WithHeaderSlot(content string) *RapiDoc {
	r.headerSlot = content
	return r
}

// WithStickyHeader 设置页头是否吸顶，默认开启
func (r *RapiDoc) WithStickyHeader(sticky bool) *RapiDoc {
	r.stickyHeader = sticky
	return r
}

// AuthConfiguration 返回当前认证配置的只读视图
func (r *RapiDoc) AuthConfiguration() map[string]string {
	return r.auth.view()
}

// Render 产出完整 HTML 文档。
// 已配置认证方案但 allow-authentication 被关闭时返回 ErrConfiguration。
func (r *RapiDoc) Render() (string, error) {
	if r.auth.configured() && r.getOr("allow-authentication", "true") == "false" {
		return "", errors.ErrConfiguration.WithMessage(
			"已配置认证方案但 allow-authentication 被关闭")
	}

	attrs := r.merged()
	attrs["spec-url"] = r.specURL
	if r.auth.configured() {
		attrs["persist-auth"] = "true"
		for k, v := range r.auth.settings {
			// jwt-url 是取令牌端点，不是 rapi-doc 属性
			if k == "jwt-url" {
				continue
			}
			attrs[k] = v
		}
	}

	body := fmt.Sprintf(`<div class="docs-rapidoc-container">
    <rapi-doc%s>
%s    </rapi-doc>
</div>`, attrString(attrs), r.logoSlot())

	return r.renderPage(page{
		title:   r.title,
		styles:  []string{r.themeCSS()},
		body:    body,
		scripts: []string{fmt.Sprintf("<script type=\"module\" src=%q></script>", rapidocJSURL), rapidocLoadingScript},
	}), nil
}

// logoSlot 页头插槽：自定义内容优先，否则输出品牌 Logo 与标题
func (r *RapiDoc) logoSlot() string {
	if r.headerSlot != "" {
		return fmt.Sprintf("        <div slot=\"logo\">%s</div>\n", r.headerSlot)
	}
	return fmt.Sprintf(`        <div slot="logo" style="display: flex; align-items: center; gap: 10px;">
            <img src="%s" alt="%s Logo" style="height: 32px;">
            <span style="font-weight: 600;">%s</span>
        </div>
`, r.brand.Logo(), html.EscapeString(r.brand.CompanyName), html.EscapeString(r.brand.DisplayTitle()))
}

// themeCSS RapiDoc 专属品牌样式
func (r *RapiDoc) themeCSS() string {
	css := fmt.Sprintf(`rapi-doc {
    --green: %[1]s;
    --blue: %[4]s;
    --orange: %[1]s;
    --red: %[5]s;
}
rapi-doc a {
    color: %[4]s !important;
}
rapi-doc a:hover {
    color: %[6]s !important;
}
rapi-doc::-webkit-scrollbar {
    width: 8px;
}
rapi-doc::-webkit-scrollbar-track {
    background: %[2]s;
}
rapi-doc::-webkit-scrollbar-thumb {
    background: %[1]s;
    border-radius: 4px;
}
rapi-doc::-webkit-scrollbar-thumb:hover {
    background: %[3]s;
}
.docs-rapidoc-container {
    position: relative;
    min-height: 100vh;
}
`, r.brand.PrimaryColor, r.brand.NavBgColor, r.brand.NavAccentColor,
		brand.ColorLinkLight, brand.ColorAccentRed, brand.ColorLinkLighter)

	if r.stickyHeader {
		css += fmt.Sprintf(`rapi-doc::part(section-navbar) {
    position: sticky;
    top: 0;
    z-index: 1000;
    background: %s;
}
`, r.brand.HeaderColor)
	}
	return css
}

// rapidocLoadingScript 加载态与加载失败提示
const rapidocLoadingScript = `<script>
(function() {
    var el = document.querySelector('rapi-doc');
    var container = document.querySelector('.docs-rapidoc-container');
    if (!el || !container) {
        return;
    }
    var loading = document.createElement('div');
    loading.className = 'docs-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);
    el.addEventListener('spec-loaded', function() {
        setTimeout(function() {
            if (loading.parentNode) {
                loading.parentNode.removeChild(loading);
            }
        }, 500);
    });
    el.addEventListener('spec-load-error', function() {
        loading.className = 'docs-error';
        loading.innerHTML = '<h3>Failed to Load API Documentation</h3>' +
            '<p>Unable to load the OpenAPI specification. Please check the URL and try again.</p>';
    });
})();
</script>`
