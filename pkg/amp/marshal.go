package amp

import (
	"reflect"
	"strconv"

	"github.com/lk2023060901/amp-garden-go/internal/pool/bytebuffer"
	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
	"github.com/lk2023060901/amp-garden-go/pkg/util/typeutil"
)

// Marshal 通过反射遍历 v 并编码为完整的 AMP 文档（含终止符）。
//
// 支持的类型集合：布尔、有/无符号整数、浮点数、字符串、结构体
// （字段按声明顺序编码，可用 `amp:"name"` 标签改名、`amp:"-"` 跳过）、
// 切片与数组。其余类别（map、chan、func、复数、字节串、nil 指针等）
// 返回 ErrWireTypeUnsupported，绝不静默错编。
func Marshal(v any) ([]byte, error) {
	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	e := NewEncoderWithBuffer(buf.B[:0])
	if err := encodeValue(e, reflect.ValueOf(v), false); err != nil {
		return nil, err
	}
	out, err := e.Finish()
	if err != nil {
		return nil, err
	}

	// 编码器可能触发扩容，把增长后的缓冲交还给池。
	buf.B = out

	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}

func encodeValue(e *Encoder, rv reflect.Value, inSequence bool) error {
	if !rv.IsValid() {
		return merr.WrapErrWireTypeUnsupported("nil", "cannot encode untyped nil")
	}

	switch rv.Kind() {
	case reflect.Bool:
		return e.EmitBool(rv.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.EmitInt(rv.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return e.EmitUint(rv.Uint())

	case reflect.Float32:
		return e.EmitFloat32(float32(rv.Float()))

	case reflect.Float64:
		return e.EmitFloat64(rv.Float())

	case reflect.String:
		return e.EmitString(rv.String())

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "nil values have no wire encoding")
		}
		return encodeValue(e, rv.Elem(), inSequence)

	case reflect.Struct:
		if inSequence {
			// 结构体没有私有终止符，放进序列后无法界定其结束位置。
			return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "struct inside a sequence")
		}
		return encodeStruct(e, rv)

	case reflect.Slice, reflect.Array:
		return encodeSequence(e, rv)

	default:
		return merr.WrapErrWireTypeUnsupported(rv.Type().String())
	}
}

func encodeStruct(e *Encoder, rv reflect.Value) error {
	fields := structFields(rv.Type())

	// 标签改名可能让两个字段撞在同一个键上，解码侧无法区分，直接拒绝。
	seen := typeutil.NewSet[string]()
	for _, f := range fields {
		if seen.Contain(f.name) {
			return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "duplicate wire key "+strconv.Quote(f.name))
		}
		seen.Insert(f.name)
	}

	for i, f := range fields {
		fv := rv.Field(f.index)

		// 嵌套结构体依赖全局终止符界定结束，只允许出现在最后一个字段。
		if isStructLike(fv) && i != len(fields)-1 {
			return merr.WrapErrWireTypeUnsupported(fv.Type().String(), "nested struct must be the last field")
		}

		if err := e.EmitKey(f.name); err != nil {
			return err
		}
		if err := encodeValue(e, fv, false); err != nil {
			return err
		}
	}
	return nil
}

func encodeSequence(e *Encoder, rv reflect.Value) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 && rv.Kind() == reflect.Slice {
		// 字节串不走“元素逐个文本化”的序列编码，也没有专门的帧格式。
		return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "byte blobs have no wire encoding")
	}

	e.BeginSequence()
	for i := 0; i < rv.Len(); i++ {
		if err := encodeValue(e, rv.Index(i), true); err != nil {
			return err
		}
	}
	return e.EndSequence()
}

// isStructLikeType 判断类型解引用后是否为结构体。
// 与编码端的 isStructLike 对应，供解码端在分配元素前做同样的拒绝。
func isStructLikeType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// isStructLike 判断值解引用后是否为结构体。
func isStructLike(rv reflect.Value) bool {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

type fieldInfo struct {
	index int
	name  string
}

// structFields 返回类型 t 中参与编解码的字段，按声明顺序排列。
// 未导出字段与 `amp:"-"` 标记的字段被跳过。
func structFields(t reflect.Type) []fieldInfo {
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("amp"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, fieldInfo{index: i, name: name})
	}
	return fields
}
