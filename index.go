package docskit

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// 索引页中各渲染器的展示名
var kindLabels = map[string]string{
	"rapidoc":  "RapiDoc",
	"swagger":  "Swagger UI",
	"redoc":    "ReDoc",
	"elements": "Stoplight Elements",
	"scalar":   "Scalar",
}

// AddIndex 在 path 挂载文档索引页。
// 索引内容是调用时已挂载端点的快照，之后新增的端点不会出现；
// 在同一路径重复调用只重建快照，不重复挂载路由。
func (m *Manager) AddIndex(path string) *Manager {
	path = normalizePath(path)

	m.mu.Lock()
	snap := make([]Endpoint, len(m.endpoints))
	copy(snap, m.endpoints)

	_, isIndex := m.indexSnaps[path]
	if _, taken := m.registered[path]; taken && !isIndex {
		m.mu.Unlock()
		m.fail(path, duplicateRouteErr(path))
		return m
	}

	m.registered[path] = struct{}{}
	m.indexSnaps[path] = snap
	m.mu.Unlock()

	if !isIndex {
		m.router.GET(path, m.indexHandler(path))
		m.logger.Info("文档索引页已挂载")
	}
	return m
}

// indexHandler 渲染索引页，快照在锁保护下读取
func (m *Manager) indexHandler(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.mu.Lock()
		snap := m.indexSnaps[path]
		m.mu.Unlock()

		c.Data(http.StatusOK, contentTypeHTML, []byte(m.indexPage(snap)))
	}
}

// indexPage 组装索引页 HTML，端点按注册顺序列出
func (m *Manager) indexPage(endpoints []Endpoint) string {
	var items strings.Builder
	for _, ep := range endpoints {
		label := kindLabels[string(ep.Kind)]
		if label == "" {
			label = string(ep.Kind)
		}
		fmt.Fprintf(&items, `        <li><a href="%s">%s</a><span>%s</span></li>
`, ep.Path, html.EscapeString(label), html.EscapeString(ep.Path))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%[1]s</title>
    <style>
%[2]sbody {
    margin: 0;
    min-height: 100vh;
    display: flex;
    align-items: center;
    justify-content: center;
    font-family: var(--brand-regular-font, sans-serif);
    background: var(--brand-bg-color, #07080d);
    color: var(--brand-text-color, #fcfdfe);
}
.docs-index {
    min-width: 320px;
    padding: 2rem;
}
.docs-index h1 {
    margin: 0 0 0.25rem;
    font-size: 1.4rem;
}
.docs-index p {
    margin: 0 0 1.5rem;
    opacity: 0.7;
}
.docs-index ul {
    list-style: none;
    margin: 0;
    padding: 0;
}
.docs-index li {
    display: flex;
    justify-content: space-between;
    gap: 2rem;
    padding: 0.6rem 0;
    border-bottom: 1px solid var(--brand-nav-bg-color, #1f2430);
}
.docs-index a {
    color: var(--brand-primary-color, #ad0f6c);
    text-decoration: none;
    font-weight: 600;
}
.docs-index a:hover {
    text-decoration: underline;
}
.docs-index li span {
    opacity: 0.6;
    font-family: var(--brand-mono-font, monospace);
    font-size: 0.85rem;
}
    </style>
</head>
<body>
    <div class="docs-index">
        <h1>%[3]s</h1>
        <p>Available documentation interfaces</p>
        <ul>
%[4]s        </ul>
    </div>
</body>
</html>
`, html.EscapeString(m.indexTitle()), m.brand.CSSVariables(),
		html.EscapeString(m.indexTitle()), items.String())
}

// indexTitle 索引页标题：显式标题优先，否则品牌展示标题
func (m *Manager) indexTitle() string {
	if m.title != "" {
		return m.title
	}
	return m.brand.DisplayTitle() + " API Documentation"
}
