package docskit

import (
	"go.uber.org/zap"

	"github.com/tokmz/docskit/pkg/brand"
)

// Option Manager 构造选项
type Option func(*Manager)

// WithBrand 设置品牌配置，所有端点共享同一实例
func WithBrand(bc *brand.Config) Option {
	return func(m *Manager) {
		if bc != nil {
			m.brand = bc
		}
	}
}

// WithSpecURL 设置 OpenAPI 文档地址，默认 /openapi.json
func WithSpecURL(url string) Option {
	return func(m *Manager) {
		m.specURL = url
	}
}

// WithTitle 设置所有端点的页面标题
func WithTitle(title string) Option {
	return func(m *Manager) {
		m.title = title
	}
}

// WithLogger 设置日志器，默认不输出
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
