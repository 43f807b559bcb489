package config

import (
	"github.com/tokmz/docskit/pkg/brand"
)

// brandSection 配置文件中 brand 段的映射结构
type brandSection struct {
	LogoURL            string   `mapstructure:"logo_url"`
	FaviconURL         string   `mapstructure:"favicon_url"`
	CompanyName        string   `mapstructure:"company_name"`
	AppTitle           string   `mapstructure:"app_title"`
	Theme              string   `mapstructure:"theme"`
	PrimaryColor       string   `mapstructure:"primary_color"`
	BackgroundColor    string   `mapstructure:"background_color"`
	TextColor          string   `mapstructure:"text_color"`
	NavBgColor         string   `mapstructure:"nav_bg_color"`
	NavTextColor       string   `mapstructure:"nav_text_color"`
	NavHoverBgColor    string   `mapstructure:"nav_hover_bg_color"`
	NavHoverTextColor  string   `mapstructure:"nav_hover_text_color"`
	NavAccentColor     string   `mapstructure:"nav_accent_color"`
	NavAccentTextColor string   `mapstructure:"nav_accent_text_color"`
	HeaderColor        string   `mapstructure:"header_color"`
	RegularFont        string   `mapstructure:"regular_font"`
	MonoFont           string   `mapstructure:"mono_font"`
	CustomCSS          []string `mapstructure:"custom_css"`
	CustomJS           []string `mapstructure:"custom_js"`
}

// DocsSection 配置文件中 docs 段的映射结构
type DocsSection struct {
	Title   string `mapstructure:"title"`
	SpecURL string `mapstructure:"spec_url"`
}

// Brand 读取 brand 段并构造品牌配置。
// theme 为 light 时以浅色调色板为基底，否则用默认深色调色板；
// 未出现的字段保持基底默认值。
func (c *Config) Brand() (*brand.Config, error) {
	var sec brandSection
	if err := c.UnmarshalKey("brand", &sec); err != nil {
		return nil, err
	}

	bc := brand.Default()
	if sec.Theme == string(brand.ThemeLight) {
		bc = brand.Light()
	}
	applyIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	applyIf(&bc.LogoURL, sec.LogoURL)
	applyIf(&bc.FaviconURL, sec.FaviconURL)
	applyIf(&bc.CompanyName, sec.CompanyName)
	applyIf(&bc.AppTitle, sec.AppTitle)
	applyIf(&bc.PrimaryColor, sec.PrimaryColor)
	applyIf(&bc.BackgroundColor, sec.BackgroundColor)
	applyIf(&bc.TextColor, sec.TextColor)
	applyIf(&bc.NavBgColor, sec.NavBgColor)
	applyIf(&bc.NavTextColor, sec.NavTextColor)
	applyIf(&bc.NavHoverBgColor, sec.NavHoverBgColor)
	applyIf(&bc.NavHoverTextColor, sec.NavHoverTextColor)
	applyIf(&bc.NavAccentColor, sec.NavAccentColor)
	applyIf(&bc.NavAccentTextColor, sec.NavAccentTextColor)
	applyIf(&bc.HeaderColor, sec.HeaderColor)
	applyIf(&bc.RegularFont, sec.RegularFont)
	applyIf(&bc.MonoFont, sec.MonoFont)

	if sec.Theme == string(brand.ThemeAuto) {
		bc.Theme = brand.ThemeAuto
	}
	bc.CustomCSSURLs = append(bc.CustomCSSURLs, sec.CustomCSS...)
	bc.CustomJSURLs = append(bc.CustomJSURLs, sec.CustomJS...)

	if err := brand.ValidateColors(bc); err != nil {
		return nil, err
	}
	return bc, nil
}

// Docs 读取 docs 段，缺省字段为空字符串由调用方兜底
func (c *Config) Docs() (DocsSection, error) {
	var sec DocsSection
	if err := c.UnmarshalKey("docs", &sec); err != nil {
		return DocsSection{}, err
	}
	return sec, nil
}
