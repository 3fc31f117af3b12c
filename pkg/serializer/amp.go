package serializer

import (
	"github.com/lk2023060901/amp-garden-go/pkg/amp"
)

// AMPSerializer 使用 AMP 线格式进行编解码。
//
// 注意：AMP 对类型集合有严格限制（无 map、无字节串、嵌套结构体
// 只能是最后一个字段），超出范围的对象会返回 ErrWireTypeUnsupported。
type AMPSerializer struct{}

// 编译期断言：确保 AMPSerializer 实现了 Serializer 接口。
var _ Serializer = (*AMPSerializer)(nil)

func (AMPSerializer) Name() string {
	return AMPName
}

func (AMPSerializer) Marshal(v any) ([]byte, error) {
	return amp.Marshal(v)
}

func (AMPSerializer) Unmarshal(data []byte, v any) error {
	return amp.Unmarshal(data, v)
}
