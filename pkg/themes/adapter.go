// Package themes 提供五种 OpenAPI 文档渲染器的品牌化适配器。
// 每个适配器把品牌配置与工具特有选项合并为最终可渲染的 HTML 页面，
// 渲染为纯函数：相同输入字节级一致，可安全并发调用。
package themes

import (
	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
	"github.com/tokmz/docskit/utils/strings"
)

// DefaultSpecURL spec 端点默认路径
const DefaultSpecURL = "/openapi.json"

// DefaultTitle 文档页面默认标题
const DefaultTitle = "API Documentation"

// Adapter 文档渲染器适配器的共同契约。
// 五种适配器类型在构造时选定，调用方不需要也不应该
// 依据工具名字符串做运行期分派。
type Adapter interface {
	// Kind 渲染器种类
	Kind() brand.Kind

	// SpecURL OpenAPI 文档地址
	SpecURL() string

	// Title 页面标题
	Title() string

	// Brand 品牌配置（共享引用）
	Brand() *brand.Config

	// Render 产出完整 HTML 文档。
	// 选项组合内部矛盾时返回 ErrConfiguration。
	Render() (string, error)

	// Configuration 返回当前合并视图（品牌派生 < 选项），只读快照
	Configuration() map[string]string
}

// base 五个适配器共享的状态与构造逻辑
type base struct {
	kind    brand.Kind
	specURL string
	title   string
	brand   *brand.Config
	opts    map[string]string
}

// Option 适配器通用构造选项
type Option func(*base)

// WithTitle 设置页面标题
func WithTitle(title string) Option {
	return func(b *base) {
		b.title = title
	}
}

// WithBrand 设置品牌配置
func WithBrand(bc *brand.Config) Option {
	return func(b *base) {
		b.brand = bc
	}
}

// newBase 构造共享状态
// specURL 为空白时返回 ErrConfiguration，不产生任何部分状态
func newBase(kind brand.Kind, specURL string, opts ...Option) (base, error) {
	if strings.IsBlank(specURL) {
		return base{}, errors.ErrConfiguration.WithMessage("spec 地址不能为空")
	}

	b := base{
		kind:    kind,
		specURL: specURL,
		title:   DefaultTitle,
		brand:   brand.Default(),
		opts:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b, nil
}

// Kind 渲染器种类
func (b *base) Kind() brand.Kind {
	return b.kind
}

// SpecURL OpenAPI 文档地址
func (b *base) SpecURL() string {
	return b.specURL
}

// Title 页面标题
func (b *base) Title() string {
	return b.title
}

// Brand 品牌配置
func (b *base) Brand() *brand.Config {
	return b.brand
}

// set 写入选项值，重复设置时覆盖而非累积
func (b *base) set(key, value string) {
	b.opts[key] = value
}

// getOr 读取选项值，缺省时返回 fallback
func (b *base) getOr(key, fallback string) string {
	if v, ok := b.opts[key]; ok {
		return v
	}
	return fallback
}

// merged 返回合并视图：品牌派生属性优先级最低，
// 选项（类型化默认值、链式方法与透传键统一存储，后写覆盖先写）最高。
// 返回的是拷贝，调用方修改不影响适配器状态。
func (b *base) merged() map[string]string {
	out := b.brand.Attributes(b.kind)
	for k, v := range b.opts {
		out[k] = v
	}
	return out
}

// Configuration 返回当前合并视图，只读快照
func (b *base) Configuration() map[string]string {
	return b.merged()
}
