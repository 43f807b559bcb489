package brand

// Theme 文档主题
type Theme string

const (
	// ThemeDark 深色主题
	ThemeDark Theme = "dark"
	// ThemeLight 浅色主题
	ThemeLight Theme = "light"
	// ThemeAuto 跟随系统
	ThemeAuto Theme = "auto"
)

/*
	默认品牌调色板
*/

const (
	// ColorPrimaryMagenta 默认品牌主色
	ColorPrimaryMagenta = "#ad0f6c"
	// ColorPrimaryDark 深色主题背景
	ColorPrimaryDark = "#07080d"
	// ColorPrimaryLight 浅色前景
	ColorPrimaryLight = "#fcfdfe"

	// ColorAccentRed 错误/删除强调色
	ColorAccentRed = "#f01932"
	// ColorAccentBlue 信息强调色
	ColorAccentBlue = "#1e3a8a"
	// ColorAccentGreen 成功强调色
	ColorAccentGreen = "#059669"
	// ColorAccentYellow 警告强调色
	ColorAccentYellow = "#d97706"

	// ColorLinkLight 链接色（主色的亮色变体）
	ColorLinkLight = "#ff53a8"
	// ColorLinkLighter 链接悬停色
	ColorLinkLighter = "#ff9dcd"
)

// 中性色阶，100 最浅，900 最深
const (
	ColorNeutral100 = "#f4f5f7"
	ColorNeutral200 = "#e2e4e9"
	ColorNeutral300 = "#c6c9d2"
	ColorNeutral400 = "#a0a4b1"
	ColorNeutral500 = "#787d8c"
	ColorNeutral600 = "#565b69"
	ColorNeutral700 = "#3a3e4a"
	ColorNeutral800 = "#23262f"
	ColorNeutral900 = "#14161d"
)
