package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokmz/docskit/pkg/errors"
)

func TestElementsDefaults(t *testing.T) {
	el, err := NewElements("/openapi.json")
	require.NoError(t, err)

	layout := el.LayoutConfiguration()
	assert.Equal(t, "sidebar", layout["layout"])
	assert.Equal(t, "false", layout["hideTryIt"])
	assert.Equal(t, "false", layout["hideSchemas"])
	assert.Equal(t, "hash", layout["router"])
	assert.Equal(t, "", layout["tryItCredentialsPolicy"])
}

func TestElementsLayoutChain(t *testing.T) {
	el, err := NewElements("/openapi.json")
	require.NoError(t, err)

	el.WithStackedLayout()
	assert.Equal(t, "stacked", el.LayoutConfiguration()["layout"])

	el.WithSidebarLayout()
	assert.Equal(t, "sidebar", el.LayoutConfiguration()["layout"])

	el.WithTryItCredentialsPolicy("include")
	assert.Equal(t, "include", el.LayoutConfiguration()["tryItCredentialsPolicy"])
}

func TestElementsRender(t *testing.T) {
	el, err := NewElements("/v1/openapi.json")
	require.NoError(t, err)

	out, err := el.Render()
	require.NoError(t, err)

	assert.Contains(t, out, elementsJSURL)
	assert.Contains(t, out, elementsCSSURL)
	assert.Contains(t, out, "<elements-api")
	assert.Contains(t, out, `apiDescriptionUrl="/v1/openapi.json"`)
	assert.Contains(t, out, `router="hash"`)
	// 空 basePath 不输出
	assert.NotContains(t, out, "basePath=")
}

func TestElementsBasePath(t *testing.T) {
	el, err := NewElements("/openapi.json")
	require.NoError(t, err)

	out, err := el.Set("basePath", "/api-docs").Render()
	require.NoError(t, err)
	assert.Contains(t, out, `basePath="/api-docs"`)
}

func TestElementsTryItPolicyConflict(t *testing.T) {
	el, err := NewElements("/openapi.json")
	require.NoError(t, err)

	el.WithTryItDisabled().WithTryItCredentialsPolicy("include")
	_, err = el.Render()
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	// 只隐藏调试面板不报错
	el2, err := NewElements("/openapi.json")
	require.NoError(t, err)
	_, err = el2.WithTryItDisabled().Render()
	assert.NoError(t, err)
}
