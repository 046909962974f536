package config

// Initialize 触发加载本目录下所有 init() 配置注册
func Initialize() {
	// 空函数，只为触发包加载
}
