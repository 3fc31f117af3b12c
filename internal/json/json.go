// Package json 基于 bytedance/sonic 封装标准库风格的 JSON 接口。
//
// 统一入口的目的：
//   - 项目内所有 JSON 编解码都经过这里，便于整体替换底层实现；
//   - sonic 使用 ConfigStd 配置，行为与 encoding/json 保持兼容。
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var json = sonic.ConfigStd

// Marshal 将对象编码为 JSON 字节序列。
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal 将 JSON 字节序列解码到目标对象。
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalIndent 将对象编码为带缩进的 JSON 字节序列。
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// NewEncoder 创建一个写入 w 的 JSON 编码器。
func NewEncoder(w io.Writer) sonic.Encoder {
	return json.NewEncoder(w)
}

// NewDecoder 创建一个从 r 读取的 JSON 解码器。
func NewDecoder(r io.Reader) sonic.Decoder {
	return json.NewDecoder(r)
}
