package errors

/*
	内置常用错误码
*/

var (
	// ErrConfiguration 文档配置无效（必填字段缺失或选项组合冲突）
	ErrConfiguration = New(2001, "文档配置无效", 500)
	// ErrDuplicateRoute 路由路径重复注册
	ErrDuplicateRoute = New(2002, "路由路径重复注册", 500)
	// ErrConfigNotFound 配置文件未找到
	ErrConfigNotFound = New(2003, "配置文件未找到", 500)
	// ErrConfigReadFailed 配置读取失败
	ErrConfigReadFailed = New(2004, "配置读取失败", 500)
)
