package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokmz/docskit/pkg/brand"
	"github.com/tokmz/docskit/pkg/errors"
)

func TestRapiDocDefaults(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	cfg := rd.Configuration()
	assert.Equal(t, "read", cfg["render-style"])
	assert.Equal(t, "table", cfg["schema-style"])
	assert.Equal(t, "schema", cfg["default-schema-tab"])
	assert.Equal(t, "400px", cfg["response-area-height"])
	assert.Equal(t, "true", cfg["allow-authentication"])
	assert.Equal(t, "true", cfg["show-header"])
	assert.Equal(t, "false", cfg["persist-auth"])
	// 品牌派生
	assert.Equal(t, "dark", cfg["theme"])
	assert.Equal(t, brand.ColorPrimaryMagenta, cfg["primary-color"])
}

func TestRapiDocAuthReplace(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	assert.Equal(t, "none", rd.AuthConfiguration()["scheme"])

	rd.WithJWTAuth("/auth/token")
	auth := rd.AuthConfiguration()
	assert.Equal(t, "jwt", auth["scheme"])
	assert.Equal(t, "/auth/token", auth["jwt-url"])
	assert.Equal(t, "Authorization", auth["jwt-header-name"])
	assert.Equal(t, "Bearer ", auth["jwt-token-prefix"])

	// 再配置 API Key 时完全替换，不残留 JWT 设置
	rd.WithAPIKeyAuth("X-API-Key")
	auth = rd.AuthConfiguration()
	assert.Equal(t, "api_key", auth["scheme"])
	assert.Equal(t, "X-API-Key", auth["api-key-name"])
	assert.Equal(t, "header", auth["api-key-location"])
	assert.NotContains(t, auth, "jwt-url")
}

func TestRapiDocAuthDefaults(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	rd.WithJWTAuth("")
	assert.Equal(t, "/auth/token", rd.AuthConfiguration()["jwt-url"])

	rd.WithAPIKeyAuth("")
	assert.Equal(t, "X-API-Key", rd.AuthConfiguration()["api-key-name"])
}

func TestRapiDocRender(t *testing.T) {
	bc := brand.New(brand.WithCompanyName("Acme"), brand.WithAppTitle("Acme API"))
	rd, err := NewRapiDoc("/v1/openapi.json", WithBrand(bc))
	require.NoError(t, err)

	out, err := rd.WithJWTAuth("/auth/token").Render()
	require.NoError(t, err)

	assert.Contains(t, out, "<rapi-doc")
	assert.Contains(t, out, `spec-url="/v1/openapi.json"`)
	assert.Contains(t, out, rapidocJSURL)
	// 配置认证后强制持久化
	assert.Contains(t, out, `persist-auth="true"`)
	// jwt-url 是取令牌端点，不进元素属性
	assert.NotContains(t, out, "jwt-url=")
	assert.Contains(t, out, `slot="logo"`)
	assert.Contains(t, out, "Acme API")
}

func TestRapiDocHeaderSlot(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	out, err := rd.WithHeaderSlot(`<h1>Custom Header</h1>`).Render()
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Custom Header</h1>")
	assert.NotContains(t, out, "<img src=")
}

func TestRapiDocStickyHeader(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)
	out, err := rd.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "rapi-doc::part(section-navbar)")

	rd2, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)
	out2, err := rd2.WithStickyHeader(false).Render()
	require.NoError(t, err)
	assert.NotContains(t, out2, "rapi-doc::part(section-navbar)")
}

func TestRapiDocAuthDisabledConflict(t *testing.T) {
	rd, err := NewRapiDoc("/openapi.json")
	require.NoError(t, err)

	rd.WithJWTAuth("/auth/token").Set("allow-authentication", "false")
	_, err = rd.Render()
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	// 重新允许认证后可渲染
	rd.Set("allow-authentication", "true")
	_, err = rd.Render()
	assert.NoError(t, err)
}
