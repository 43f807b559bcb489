package brand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokmz/docskit/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	c := Default()

	assert.Equal(t, "DocsKit", c.CompanyName)
	assert.Equal(t, ThemeDark, c.Theme)
	assert.Equal(t, ColorPrimaryMagenta, c.PrimaryColor)
	assert.Equal(t, ColorPrimaryDark, c.BackgroundColor)
	assert.Equal(t, ColorPrimaryLight, c.TextColor)
	assert.NotEmpty(t, c.RegularFont)
	assert.NotEmpty(t, c.MonoFont)
}

func TestLightConfig(t *testing.T) {
	c := Light()

	assert.Equal(t, ThemeLight, c.Theme)
	assert.Equal(t, ColorNeutral100, c.BackgroundColor)
	assert.Equal(t, ColorNeutral900, c.TextColor)
}

func TestNewOptions(t *testing.T) {
	c := New(
		WithCompanyName("Acme"),
		WithAppTitle("Acme Cloud"),
		WithPrimaryColor("#112233"),
		WithNavColors("#000000", "#ffffff"),
		WithFonts("Arial, sans-serif", "monospace"),
	)

	assert.Equal(t, "Acme", c.CompanyName)
	assert.Equal(t, "Acme Cloud", c.AppTitle)
	assert.Equal(t, "#112233", c.PrimaryColor)
	assert.Equal(t, "#000000", c.NavBgColor)
	assert.Equal(t, "#ffffff", c.NavTextColor)
	assert.Equal(t, "Arial, sans-serif", c.RegularFont)
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "DocsKit", Default().DisplayTitle())
	assert.Equal(t, "Acme Cloud", New(WithAppTitle("Acme Cloud")).DisplayTitle())
	assert.Equal(t, "Acme", New(WithCompanyName("Acme")).DisplayTitle())
}

func TestLogoFallback(t *testing.T) {
	assert.True(t, strings.HasPrefix(Default().Logo(), "data:image/svg+xml"))
	assert.Equal(t, "/static/logo.svg", New(WithLogoURL("/static/logo.svg")).Logo())
}

func TestCustomAssetsOrder(t *testing.T) {
	c := New(
		WithCustomCSS("/a.css", "/b.css"),
		WithCustomCSS("/c.css"),
		WithCustomJS("/x.js"),
	)

	assert.Equal(t, []string{"/a.css", "/b.css", "/c.css"}, c.CustomCSSURLs)

	head := c.HeadCSSTags()
	assert.Less(t, strings.Index(head, "/a.css"), strings.Index(head, "/b.css"))
	assert.Less(t, strings.Index(head, "/b.css"), strings.Index(head, "/c.css"))
	assert.Contains(t, c.TailJSTags(), "/x.js")
}

func TestCSSVariables(t *testing.T) {
	c := Default()
	css := c.CSSVariables()

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "--brand-primary-color: "+ColorPrimaryMagenta+";")
	assert.Contains(t, css, "--brand-bg-color: "+ColorPrimaryDark+";")
	// 相同配置重复调用字节级一致
	assert.Equal(t, css, c.CSSVariables())
}

func TestCSSVariablesSkipsEmpty(t *testing.T) {
	c := &Config{PrimaryColor: "#ad0f6c"}
	css := c.CSSVariables()

	assert.Contains(t, css, "--brand-primary-color")
	assert.NotContains(t, css, "--brand-bg-color")
	assert.NotContains(t, css, "--brand-nav-bg-color")
}

func TestAttributesPerKind(t *testing.T) {
	c := Default()

	rapidoc := c.Attributes(KindRapiDoc)
	assert.Equal(t, "dark", rapidoc["theme"])
	assert.Equal(t, ColorPrimaryMagenta, rapidoc["primary-color"])
	assert.Equal(t, c.Logo(), rapidoc["logo"])

	assert.Empty(t, c.Attributes(KindSwaggerUI))
	assert.Empty(t, c.Attributes(KindReDoc))

	elements := c.Attributes(KindElements)
	assert.Equal(t, c.Logo(), elements["logo"])

	scalar := c.Attributes(KindScalar)
	assert.Equal(t, "dark", scalar["theme"])
	assert.Equal(t, "true", scalar["darkMode"])
}

func TestAttributesDeterministic(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Attributes(KindRapiDoc), c.Attributes(KindRapiDoc))
}

func TestValidateColors(t *testing.T) {
	assert.NoError(t, ValidateColors(Default()))
	assert.NoError(t, ValidateColors(New(WithPrimaryColor("rgba(10, 20, 30, 0.5)"))))
	assert.NoError(t, ValidateColors(New(WithPrimaryColor("var(--my-color)"))))

	err := ValidateColors(New(
		WithPrimaryColor("not-a-color"),
		WithHeaderColor("#12"),
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
	assert.Contains(t, err.Error(), "primary_color")
	assert.Contains(t, err.Error(), "header_color")
}
