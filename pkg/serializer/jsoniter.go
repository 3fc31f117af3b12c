package serializer

import (
	jsoniter "github.com/json-iterator/go"
)

// jsonIterAPI 采用与标准库兼容的配置，保证与 JSONSerializer 产出互通。
var jsonIterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONIterSerializer 使用 json-iterator 实现 JSON 编解码。
//
// 与 JSONSerializer 的输出语义一致，供需要流式 API 或
// 逐字段惰性解析的调用方选用。
type JSONIterSerializer struct{}

// 编译期断言：确保 JSONIterSerializer 实现了 Serializer 接口。
var _ Serializer = (*JSONIterSerializer)(nil)

func (JSONIterSerializer) Name() string {
	return JSONIterName
}

func (JSONIterSerializer) Marshal(v any) ([]byte, error) {
	return jsonIterAPI.Marshal(v)
}

func (JSONIterSerializer) Unmarshal(data []byte, v any) error {
	return jsonIterAPI.Unmarshal(data, v)
}
