// Package docskit 将品牌化的 OpenAPI 文档页面挂载到 gin 路由。
// 一个 Manager 管理一组文档端点：五种渲染器各占一条路由，
// 可选的索引页列出已注册的端点。所有 Add* 方法支持链式调用，
// 首个注册失败被记住并通过 Err 暴露，失败的端点不会挂载。
package docskit

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
	"github.com/tokmz/docskit/pkg/themes"
	"github.com/tokmz/docskit/utils/strings"
)

// 五种渲染器的约定挂载路径
const (
	DefaultRapiDocPath  = "/docs"
	DefaultSwaggerPath  = "/swagger"
	DefaultReDocPath    = "/redoc"
	DefaultElementsPath = "/elements"
	DefaultScalarPath   = "/scalar"
)

// Endpoint 一条已挂载的文档端点
type Endpoint struct {
	Path  string     // 挂载路径
	Kind  brand.Kind // 渲染器种类
	Title string     // 页面标题
}

// Manager 文档端点管理器
type Manager struct {
	router  gin.IRouter
	brand   *brand.Config
	specURL string
	title   string
	logger  *zap.Logger

	mu         sync.Mutex
	endpoints  []Endpoint            // 按注册顺序
	registered map[string]struct{}   // 已占用路径
	indexSnaps map[string][]Endpoint // 索引页快照，按索引路径
	err        error                 // 首个注册错误
}

// New 创建 Manager，文档端点挂载到给定路由
func New(router gin.IRouter, opts ...Option) *Manager {
	m := &Manager{
		router:     router,
		brand:      brand.Default(),
		specURL:    themes.DefaultSpecURL,
		logger:     zap.NewNop(),
		registered: make(map[string]struct{}),
		indexSnaps: make(map[string][]Endpoint),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Err 返回首个注册错误，全部成功时为 nil
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Brand 返回共享的品牌配置
func (m *Manager) Brand() *brand.Config {
	return m.brand
}

// SpecURL 返回 OpenAPI 文档地址
func (m *Manager) SpecURL() string {
	return m.specURL
}

// Endpoints 返回已挂载端点的快照，按注册顺序
func (m *Manager) Endpoints() []Endpoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Endpoint, len(m.endpoints))
	copy(out, m.endpoints)
	return out
}

// AddRapiDoc 在 path 挂载 RapiDoc 页面
func (m *Manager) AddRapiDoc(path string, customize ...func(*themes.RapiDoc)) *Manager {
	a, err := themes.NewRapiDoc(m.specURL, m.adapterOptions()...)
	if err != nil {
		m.fail(path, err)
		return m
	}
	for _, fn := range customize {
		fn(a)
	}
	m.register(path, a)
	return m
}

// AddSwaggerUI 在 path 挂载 Swagger UI 页面
func (m *Manager) AddSwaggerUI(path string, customize ...func(*themes.SwaggerUI)) *Manager {
	a, err := themes.NewSwaggerUI(m.specURL, m.adapterOptions()...)
	if err != nil {
		m.fail(path, err)
		return m
	}
	for _, fn := range customize {
		fn(a)
	}
	m.register(path, a)
	return m
}

// AddReDoc 在 path 挂载 ReDoc 页面
func (m *Manager) AddReDoc(path string, customize ...func(*themes.ReDoc)) *Manager {
	a, err := themes.NewReDoc(m.specURL, m.adapterOptions()...)
	if err != nil {
		m.fail(path, err)
		return m
	}
	for _, fn := range customize {
		fn(a)
	}
	m.register(path, a)
	return m
}

// AddElements 在 path 挂载 Stoplight Elements 页面
func (m *Manager) AddElements(path string, customize ...func(*themes.Elements)) *Manager {
	a, err := themes.NewElements(m.specURL, m.adapterOptions()...)
	if err != nil {
		m.fail(path, err)
		return m
	}
	for _, fn := range customize {
		fn(a)
	}
	m.register(path, a)
	return m
}

// AddScalar 在 path 挂载 Scalar 页面
func (m *Manager) AddScalar(path string, customize ...func(*themes.Scalar)) *Manager {
	a, err := themes.NewScalar(m.specURL, m.adapterOptions()...)
	if err != nil {
		m.fail(path, err)
		return m
	}
	for _, fn := range customize {
		fn(a)
	}
	m.register(path, a)
	return m
}

// AddAll 按约定路径挂载全部五种渲染器
func (m *Manager) AddAll() *Manager {
	return m.AddRapiDoc(DefaultRapiDocPath).
		AddSwaggerUI(DefaultSwaggerPath).
		AddReDoc(DefaultReDocPath).
		AddElements(DefaultElementsPath).
		AddScalar(DefaultScalarPath)
}

// adapterOptions 共享品牌与标题传给每个适配器
func (m *Manager) adapterOptions() []themes.Option {
	opts := []themes.Option{themes.WithBrand(m.brand)}
	if strings.IsNotBlank(m.title) {
		opts = append(opts, themes.WithTitle(m.title))
	}
	return opts
}

// register 占用路径并挂载页面处理器
func (m *Manager) register(path string, a themes.Adapter) {
	path = normalizePath(path)

	m.mu.Lock()
	if _, ok := m.registered[path]; ok {
		err := duplicateRouteErr(path)
		if m.err == nil {
			m.err = err
		}
		m.mu.Unlock()
		m.logger.Warn("文档端点注册失败",
			zap.String("path", path),
			zap.String("kind", string(a.Kind())),
			zap.Error(err))
		return
	}
	m.registered[path] = struct{}{}
	m.endpoints = append(m.endpoints, Endpoint{
		Path:  path,
		Kind:  a.Kind(),
		Title: a.Title(),
	})
	m.mu.Unlock()

	m.router.GET(path, m.pageHandler(path, a))
	m.logger.Info("文档端点已挂载",
		zap.String("path", path),
		zap.String("kind", string(a.Kind())))
}

// fail 记录首个注册错误，不做任何挂载
func (m *Manager) fail(path string, err error) {
	m.mu.Lock()
	if m.err == nil {
		m.err = err
	}
	m.mu.Unlock()
	m.logger.Warn("文档端点注册失败",
		zap.String("path", path),
		zap.Error(err))
}

// normalizePath 统一为以 / 开头、不以 / 结尾的形式
func normalizePath(p string) string {
	return strings.TrimTrailingSlash(strings.EnsureLeadingSlash(p))
}

func duplicateRouteErr(path string) error {
	return errors.ErrDuplicateRoute.WithMessage("路径已被占用: " + path)
}
