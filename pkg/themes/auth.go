package themes

// AuthKind 认证方案种类
type AuthKind string

const (
	// AuthNone 未配置认证
	AuthNone AuthKind = "none"
	// AuthJWT JWT Bearer 认证
	AuthJWT AuthKind = "jwt"
	// AuthAPIKey API Key 认证
	AuthAPIKey AuthKind = "api_key"
	// AuthOAuth2 OAuth2 认证
	AuthOAuth2 AuthKind = "oauth2"
)

// authScheme 单一生效的认证方案记录。
// 底层渲染器同一时间只支持一种方案：
// 设置新方案时整体替换，丢弃之前的全部设置。
type authScheme struct {
	kind     AuthKind
	settings map[string]string
}

// replace 用新方案整体替换当前方案
func (a *authScheme) replace(kind AuthKind, settings map[string]string) {
	a.kind = kind
	a.settings = settings
}

// configured 是否已配置认证方案
func (a *authScheme) configured() bool {
	return a.kind != "" && a.kind != AuthNone
}

// view 返回方案的只读视图，含 scheme 键
func (a *authScheme) view() map[string]string {
	out := make(map[string]string, len(a.settings)+1)
	kind := a.kind
	if kind == "" {
		kind = AuthNone
	}
	out["scheme"] = string(kind)
	for k, v := range a.settings {
		out[k] = v
	}
	return out
}
