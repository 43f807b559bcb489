package docskit

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokmz/docskit/pkg/themes"
)

const contentTypeHTML = "text/html; charset=utf-8"

// pageHandler 每次请求重新渲染页面。
// 渲染是纯函数，失败只可能源于选项组合冲突，
// 此时返回 500 与品牌化错误页，路由本身保持可用。
func (m *Manager) pageHandler(path string, a themes.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := a.Render()
		if err != nil {
			m.logger.Error("文档页面渲染失败",
				zap.String("path", path),
				zap.String("kind", string(a.Kind())),
				zap.Error(err))
			c.Data(http.StatusInternalServerError, contentTypeHTML, []byte(m.errorPage(a.Title())))
			return
		}
		c.Data(http.StatusOK, contentTypeHTML, []byte(out))
	}
}

// errorPage 品牌化的渲染失败兜底页，不泄露内部错误细节
func (m *Manager) errorPage(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%s</title>
    <style>
%s%s    </style>
</head>
<body>
    <div class="docs-error">
        <h3>Documentation Unavailable</h3>
        <p>The documentation page could not be rendered. Please contact the API administrator.</p>
    </div>
</body>
</html>
`, html.EscapeString(title), m.brand.CSSVariables(), m.brand.LoadingCSS())
}
