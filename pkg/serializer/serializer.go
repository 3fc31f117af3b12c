package serializer

import (
	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

// Serializer 抽象了“对象 <-> 字节流”的序列化能力。
//
// 设计目标：
//   - 同时支持 AMP 线格式和 JSON 等文本格式；
//   - 调用方通过接口注入具体实现，便于后续扩展其它序列化方案。
type Serializer interface {
	// Name 返回序列化器的注册名。
	Name() string

	// Marshal 将任意对象编码为字节序列。
	Marshal(v any) ([]byte, error)

	// Unmarshal 将字节序列解码到目标对象。
	//
	// v 通常为指针类型，用于接收解码结果。
	Unmarshal(data []byte, v any) error
}

// 可用序列化器的注册名。
const (
	AMPName      = "amp"
	JSONName     = "json"
	JSONIterName = "jsoniter"
)

// New 按注册名创建序列化器。
// 名字未注册时返回 ErrSerializerNotFound。
func New(name string) (Serializer, error) {
	switch name {
	case AMPName:
		return AMPSerializer{}, nil
	case JSONName:
		return JSONSerializer{}, nil
	case JSONIterName:
		return JSONIterSerializer{}, nil
	default:
		return nil, merr.WrapErrSerializerNotFound(name)
	}
}
