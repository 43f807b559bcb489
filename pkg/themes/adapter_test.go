package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

func TestNewBaseEmptySpecURL(t *testing.T) {
	for _, specURL := range []string{"", "   ", "\t\n"} {
		_, err := NewRapiDoc(specURL)
		assert.ErrorIs(t, err, errors.ErrConfiguration)

		_, err = NewSwaggerUI(specURL)
		assert.ErrorIs(t, err, errors.ErrConfiguration)

		_, err = NewReDoc(specURL)
		assert.ErrorIs(t, err, errors.ErrConfiguration)

		_, err = NewElements(specURL)
		assert.ErrorIs(t, err, errors.ErrConfiguration)

		_, err = NewScalar(specURL)
		assert.ErrorIs(t, err, errors.ErrConfiguration)
	}
}

func TestBaseDefaults(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	assert.Equal(t, brand.KindRapiDoc, rd.Kind())
	assert.Equal(t, "/openapi.json", rd.SpecURL())
	assert.Equal(t, DefaultTitle, rd.Title())
	assert.NotNil(t, rd.Brand())
}

func TestBaseOptions(t *testing.T) {
	bc := brand.New(brand.WithAppTitle("Payments API"))
	rd, err := NewRapiDoc("/spec.json", WithTitle("Payments"), WithBrand(bc))
	require.NoError(t, err)

	assert.Equal(t, "Payments", rd.Title())
	assert.Same(t, bc, rd.Brand())
}

func TestConfigurationReturnsCopy(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	cfg := rd.Configuration()
	cfg["render-style"] = "focused"

	assert.Equal(t, "read", rd.Configuration()["render-style"])
}

func TestConfigurationMergePrecedence(t *testing.T) {
	// 品牌派生值可被显式选项覆盖，后写覆盖先写
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	assert.Equal(t, "dark", rd.Configuration()["theme"])

	rd.Set("theme", "light").Set("theme", "dark").Set("theme", "light")
	assert.Equal(t, "light", rd.Configuration()["theme"])
}

func TestRenderDeterministic(t *testing.T) {
	build := func() Adapter {
		bc := brand.New(brand.WithCompanyName("Acme"), brand.WithCustomCSS("/a.css", "/b.css"))
		rd, err := NewRapiDoc("/openapi.json", WithBrand(bc))
		require.NoError(t, err)
		return rd.WithJWTAuth("/auth/token").Set("show-header", "false")
	}

	first, err := build().Render()
	require.NoError(t, err)
	second, err := build().Render()
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// 渲染不改变适配器状态
	a := build()
	out1, err := a.Render()
	require.NoError(t, err)
	out2, err := a.Render()
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestRenderCommonPage(t *testing.T) {
	bc := brand.New(
		brand.WithFaviconURL("/static/favicon.ico"),
		brand.WithCustomCSS("/static/extra.css"),
		brand.WithCustomJS("/static/extra.js"),
	)

	for _, a := range allAdapters(t, bc) {
		out, err := a.Render()
		require.NoError(t, err, string(a.Kind()))

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), string(a.Kind()))
		assert.Contains(t, out, "<title>API Documentation</title>")
		assert.Contains(t, out, "/static/favicon.ico")
		assert.Contains(t, out, "/static/extra.css")
		assert.Contains(t, out, "/static/extra.js")
		assert.Contains(t, out, ":root {")
		assert.Contains(t, out, ".docs-loading")
	}
}

// allAdapters 用同一品牌和 spec 地址构造全部五种适配器
func allAdapters(t *testing.T, bc *brand.Config) []Adapter {
	t.Helper()

	rd, err := NewRapiDoc("/openapi.json", WithBrand(bc))
	require.NoError(t, err)
	sw, err := NewSwaggerUI("/openapi.json", WithBrand(bc))
	require.NoError(t, err)
	re, err := NewReDoc("/openapi.json", WithBrand(bc))
	require.NoError(t, err)
	el, err := NewElements("/openapi.json", WithBrand(bc))
	require.NoError(t, err)
	sc, err := NewScalar("/openapi.json", WithBrand(bc))
	require.NoError(t, err)

	return []Adapter{rd, sw, re, el, sc}
}

func TestJSObjectEncoding(t *testing.T) {
	out := jsObject(map[string]string{
		"deepLinking": "true",
		"maxDepth":    "3",
		"layout":      "BaseLayout",
		"offset":      "-1.5",
	}, "")

	assert.Contains(t, out, `"deepLinking": true`)
	assert.Contains(t, out, `"maxDepth": 3`)
	assert.Contains(t, out, `"layout": "BaseLayout"`)
	assert.Contains(t, out, `"offset": -1.5`)
	// 键按字典序输出
	assert.Less(t, strings.Index(out, "deepLinking"), strings.Index(out, "layout"))
	assert.Less(t, strings.Index(out, "layout"), strings.Index(out, "maxDepth"))
}

func TestAttrStringEscapesAndSorts(t *testing.T) {
	out := attrString(map[string]string{
		"b-attr": `va"lue`,
		"a-attr": "<x>",
	})

	assert.Contains(t, out, `a-attr="&lt;x&gt;"`)
	assert.Contains(t, out, `b-attr="va&#34;lue"`)
	assert.Less(t, strings.Index(out, "a-attr"), strings.Index(out, "b-attr"))
}
