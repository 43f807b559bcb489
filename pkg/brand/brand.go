package brand

// Config 品牌配置
// 描述一次品牌视觉，投射到所有文档渲染器。
// 构造完成后视为只读值对象：所有派生方法都是纯函数，
// 多个适配器之间按引用共享同一实例，不做拷贝。
type Config struct {
	// LogoURL Logo 地址，空值时使用内置 SVG Logo
	LogoURL string

	// FaviconURL favicon 地址，空值时页面不输出 favicon 标签
	FaviconURL string

	// CompanyName 公司名称
	CompanyName string

	// AppTitle 应用标题，用于页面头部展示，空值时回退到 CompanyName
	AppTitle string

	// Theme 主题：dark, light, auto
	Theme Theme

	// PrimaryColor 品牌主色
	PrimaryColor string

	// BackgroundColor 页面背景色
	BackgroundColor string

	// TextColor 正文文字颜色
	TextColor string

	// NavBgColor 导航背景色
	NavBgColor string

	// NavTextColor 导航文字颜色
	NavTextColor string

	// NavHoverBgColor 导航悬停背景色
	NavHoverBgColor string

	// NavHoverTextColor 导航悬停文字颜色
	NavHoverTextColor string

	// NavAccentColor 导航强调色
	NavAccentColor string

	// NavAccentTextColor 导航强调文字颜色
	NavAccentTextColor string

	// HeaderColor 页头背景色
	HeaderColor string

	// RegularFont 正文字体
	RegularFont string

	// MonoFont 等宽字体
	MonoFont string

	// CustomCSSURLs 附加样式表地址，按声明顺序应用，后者覆盖前者
	CustomCSSURLs []string

	// CustomJSURLs 附加脚本地址，按声明顺序应用
	CustomJSURLs []string
}

// Option 品牌配置选项函数
type Option func(*Config)

// defaultConfig 返回默认深色品牌配置
func defaultConfig() *Config {
	return &Config{
		CompanyName:        "DocsKit",
		Theme:              ThemeDark,
		PrimaryColor:       ColorPrimaryMagenta,
		BackgroundColor:    ColorPrimaryDark,
		TextColor:          ColorPrimaryLight,
		NavBgColor:         ColorNeutral900,
		NavTextColor:       ColorNeutral300,
		NavHoverBgColor:    ColorNeutral800,
		NavHoverTextColor:  ColorPrimaryLight,
		NavAccentColor:     ColorLinkLight,
		NavAccentTextColor: ColorPrimaryLight,
		HeaderColor:        ColorNeutral800,
		RegularFont:        "Inter, 'Segoe UI', system-ui, sans-serif",
		MonoFont:           "'JetBrains Mono', 'Fira Code', monospace",
	}
}

// New 创建品牌配置，默认为深色主题
func New(opts ...Option) *Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default 返回系统默认（深色）品牌配置
func Default() *Config {
	return New()
}

// Light 返回浅色品牌配置
func Light(opts ...Option) *Config {
	base := []Option{
		WithTheme(ThemeLight),
		WithBackgroundColor(ColorNeutral100),
		WithTextColor(ColorNeutral900),
		WithNavColors(ColorNeutral200, ColorNeutral800),
		WithNavHoverColors(ColorNeutral300, ColorNeutral900),
		WithHeaderColor(ColorNeutral200),
	}
	return New(append(base, opts...)...)
}

// DisplayTitle 返回页头显示标题，AppTitle 优先
func (c *Config) DisplayTitle() string {
	if c.AppTitle != "" {
		return c.AppTitle
	}
	return c.CompanyName
}

// Logo 返回 Logo 地址，未配置时使用内置 SVG
func (c *Config) Logo() string {
	if c.LogoURL != "" {
		return c.LogoURL
	}
	return defaultLogoDataURI
}

// defaultLogoDataURI 内置 Logo，主色圆点加书页轮廓
const defaultLogoDataURI = "data:image/svg+xml," +
	"%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 32 32'%3E" +
	"%3Ccircle cx='16' cy='16' r='14' fill='%23ad0f6c'/%3E" +
	"%3Cpath d='M10 9h12v14H10z' fill='%23fcfdfe'/%3E" +
	"%3Cpath d='M13 13h6M13 16h6M13 19h4' stroke='%23ad0f6c' stroke-width='1.5'/%3E" +
	"%3C/svg%3E"

// WithLogoURL 设置 Logo 地址
func WithLogoURL(url string) Option {
	return func(c *Config) {
		c.LogoURL = url
	}
}

// WithFaviconURL 设置 favicon 地址
func WithFaviconURL(url string) Option {
	return func(c *Config) {
		c.FaviconURL = url
	}
}

// WithCompanyName 设置公司名称
func WithCompanyName(name string) Option {
	return func(c *Config) {
		c.CompanyName = name
	}
}

// WithAppTitle 设置应用标题
func WithAppTitle(title string) Option {
	return func(c *Config) {
		c.AppTitle = title
	}
}

// WithTheme 设置主题
func WithTheme(theme Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPrimaryColor 设置品牌主色
func WithPrimaryColor(color string) Option {
	return func(c *Config) {
		c.PrimaryColor = color
	}
}

// WithBackgroundColor 设置背景色
func WithBackgroundColor(color string) Option {
	return func(c *Config) {
		c.BackgroundColor = color
	}
}

// WithTextColor 设置文字颜色
func WithTextColor(color string) Option {
	return func(c *Config) {
		c.TextColor = color
	}
}

// WithNavColors 设置导航背景色与文字颜色
func WithNavColors(bg, text string) Option {
	return func(c *Config) {
		c.NavBgColor = bg
		c.NavTextColor = text
	}
}

// WithNavHoverColors 设置导航悬停背景色与文字颜色
func WithNavHoverColors(bg, text string) Option {
	return func(c *Config) {
		c.NavHoverBgColor = bg
		c.NavHoverTextColor = text
	}
}

// WithNavAccentColors 设置导航强调色与强调文字颜色
func WithNavAccentColors(accent, text string) Option {
	return func(c *Config) {
		c.NavAccentColor = accent
		c.NavAccentTextColor = text
	}
}

// WithHeaderColor 设置页头背景色
func WithHeaderColor(color string) Option {
	return func(c *Config) {
		c.HeaderColor = color
	}
}

// WithFonts 设置正文字体与等宽字体
func WithFonts(regular, mono string) Option {
	return func(c *Config) {
		c.RegularFont = regular
		c.MonoFont = mono
	}
}

// WithCustomCSS 追加样式表地址，保持声明顺序
func WithCustomCSS(urls ...string) Option {
	return func(c *Config) {
		c.CustomCSSURLs = append(c.CustomCSSURLs, urls...)
	}
}

// WithCustomJS 追加脚本地址，保持声明顺序
func WithCustomJS(urls ...string) Option {
	return func(c *Config) {
		c.CustomJSURLs = append(c.CustomJSURLs, urls...)
	}
}
