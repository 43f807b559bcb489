package themes

import (
	"fmt"
	"strings"

	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

// SwaggerUI swagger-ui 渲染器适配器
type SwaggerUI struct {
	base
	auth authScheme
}

// NewSwaggerUI 创建 SwaggerUI 适配器
// specURL 不能为空白，否则返回 ErrConfiguration
func NewSwaggerUI(specURL string, opts ...Option) (*SwaggerUI, error) {
	b, err := newBase(brand.KindSwaggerUI, specURL, opts...)
	if err != nil {
		return nil, err
	}

	s := &SwaggerUI{base: b}

	// SwaggerUIBundle 默认配置
	s.set("layout", "BaseLayout")
	s.set("deepLinking", "true")
	s.set("displayOperationId", "false")
	s.set("defaultModelsExpandDepth", "1")
	s.set("defaultModelExpandDepth", "1")
	s.set("defaultModelRendering", "example")
	s.set("displayRequestDuration", "true")
	s.set("docExpansion", "list")
	s.set("filter", "true")
	s.set("showExtensions", "true")
	s.set("showCommonExtensions", "true")
	s.set("tryItOutEnabled", "true")

	return s, nil
}

// Set 透传任意 SwaggerUIBundle 配置项
func (s *SwaggerUI) Set(key, value string) *SwaggerUI {
	s.set(key, value)
	return s
}

// WithOAuth2 配置 OAuth2 认证，替换之前配置的任何方案
func (s *SwaggerUI) WithOAuth2(clientID, realm string, scopes []string) *SwaggerUI {
	s.auth.replace(AuthOAuth2, map[string]string{
		"clientId":       clientID,
		"realm":          realm,
		"appName":        s.title,
		"scopeSeparator": " ",
		"scopes":         strings.Join(scopes, " "),
	})
	return s
}

// WithAPIKeyAuth 配置 API Key 认证，替换之前配置的任何方案
func (s *SwaggerUI) WithAPIKeyAuth(headerName string) *SwaggerUI {
	if headerName == "" {
		headerName = "X-API-Key"
	}
	s.auth.replace(AuthAPIKey, map[string]string{
		"api-key-name": headerName,
	})
	s.set("persistAuthorization", "true")
	return s
}

// WithTryItOut 设置是否允许在线调用
func (s *SwaggerUI) WithTryItOut(enabled bool) *SwaggerUI {
	if enabled {
		s.set("tryItOutEnabled", "true")
	} else {
		s.set("tryItOutEnabled", "false")
	}
	return s
}

// AuthConfiguration 返回当前认证配置的只读视图
func (s *SwaggerUI) AuthConfiguration() map[string]string {
	return s.auth.view()
}

// OAuthConfiguration 返回 initOAuth 的完整配置视图。
// 未配置 OAuth2 时返回带默认值的骨架。
func (s *SwaggerUI) OAuthConfiguration() map[string]string {
	out := map[string]string{
		"clientId":                    "",
		"realm":                       "",
		"appName":                     s.title,
		"scopeSeparator":              " ",
		"scopes":                      "",
		"additionalQueryStringParams": "",
		"useBasicAuthenticationWithAccessCodeGrant": "false",
	}
	if s.auth.kind == AuthOAuth2 {
		for k, v := range s.auth.settings {
			out[k] = v
		}
	}
	return out
}

// Render 产出完整 HTML 文档。
// 已配置 OAuth2 但在线调用被关闭时返回 ErrConfiguration。
func (s *SwaggerUI) Render() (string, error) {
	if s.auth.kind == AuthOAuth2 && s.getOr("tryItOutEnabled", "true") == "false" {
		return "", errors.ErrConfiguration.WithMessage(
			"已配置 OAuth2 但 tryItOutEnabled 被关闭")
	}

	cfg := make(map[string]string, len(s.opts))
	for k, v := range s.opts {
		cfg[k] = v
	}

	var initOAuth string
	if s.auth.kind == AuthOAuth2 {
		oauth := map[string]string{
			"clientId":       s.auth.settings["clientId"],
			"realm":          s.auth.settings["realm"],
			"appName":        s.auth.settings["appName"],
			"scopeSeparator": s.auth.settings["scopeSeparator"],
			"scopes":         s.auth.settings["scopes"],
		}
		initOAuth = fmt.Sprintf("\n    ui.initOAuth(%s);", jsObject(oauth, "    "))
	}

	script := fmt.Sprintf(`<script>
(function() {
    var config = %s;
    config.url = %q;
    config.dom_id = '#swagger-ui';
    config.onComplete = function() {
        var loading = document.querySelector('.docs-loading');
        if (loading && loading.parentNode) {
            loading.parentNode.removeChild(loading);
        }
    };
    var ui = SwaggerUIBundle(config);%s
})();
</script>`, jsObject(cfg, "    "), s.specURL, initOAuth)

	body := `<div class="docs-swagger-container">
    <div class="docs-loading">Loading API Documentation...</div>
    <div id="swagger-ui"></div>
</div>`

	return s.renderPage(page{
		title:     s.title,
		headLinks: []string{fmt.Sprintf("<link rel=\"stylesheet\" href=%q>", swaggerCSSURL)},
		styles:    []string{s.themeCSS()},
		body:      body,
		scripts:   []string{fmt.Sprintf("<script src=%q></script>", swaggerJSURL), script},
	}), nil
}

// themeCSS SwaggerUI 专属品牌样式
func (s *SwaggerUI) themeCSS() string {
	return fmt.Sprintf(`.swagger-ui .topbar {
    background-color: %[2]s;
    border-bottom: 2px solid %[1]s;
}
.swagger-ui .info .title {
    color: %[1]s;
    font-family: %[6]s;
}
.swagger-ui .scheme-container {
    background: %[5]s;
    border: 1px solid %[2]s;
}
.swagger-ui .opblock.opblock-get,
.swagger-ui .opblock.opblock-post,
.swagger-ui .opblock.opblock-put {
    border-color: %[1]s;
}
.swagger-ui .opblock.opblock-get .opblock-summary-method,
.swagger-ui .opblock.opblock-post .opblock-summary-method,
.swagger-ui .opblock.opblock-put .opblock-summary-method {
    background: %[1]s;
}
.swagger-ui .opblock.opblock-delete {
    border-color: %[4]s;
}
.swagger-ui .opblock.opblock-delete .opblock-summary-method {
    background: %[4]s;
}
.swagger-ui .btn.authorize,
.swagger-ui .btn.execute {
    background-color: %[1]s;
    border-color: %[1]s;
}
.swagger-ui .btn.authorize:hover,
.swagger-ui .btn.execute:hover {
    background-color: %[3]s;
    border-color: %[3]s;
}
.swagger-ui ::-webkit-scrollbar {
    width: 8px;
}
.swagger-ui ::-webkit-scrollbar-track {
    background: %[2]s;
}
.swagger-ui ::-webkit-scrollbar-thumb {
    background: %[1]s;
    border-radius: 4px;
}
.docs-swagger-container {
    position: relative;
    min-height: 100vh;
}
.docs-swagger-container .docs-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
}
`, s.brand.PrimaryColor, s.brand.NavBgColor, s.brand.NavAccentColor,
		brand.ColorAccentRed, s.brand.HeaderColor, s.brand.RegularFont)
}
