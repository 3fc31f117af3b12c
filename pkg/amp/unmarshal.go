package amp

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

// Unmarshal 通过反射把一个完整的 AMP 文档解码到 v 指向的值中。
//
// v 必须是非 nil 指针。目标值消费完毕后，游标必须恰好落在终止符上，
// 且终止符之后不允许有任何剩余字节，否则返回 ErrWireTrailingCharacters。
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return merr.WrapErrParameterInvalid("non-nil pointer", fmt.Sprintf("%T", v), "unmarshal target")
	}

	d := NewDecoder(data)
	if err := decodeValue(d, rv.Elem()); err != nil {
		return err
	}

	atTerm, err := d.AtTerminator()
	if err != nil {
		return err
	}
	if !atTerm {
		return merr.WrapErrWireTrailingCharacters(d.index)
	}
	d.index += lengthSize
	if d.index != len(d.input) {
		return merr.WrapErrWireTrailingCharacters(d.index)
	}
	return nil
}

func decodeValue(d *Decoder, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		v, err := d.ReadBool()
		if err != nil {
			return err
		}
		rv.SetBool(v)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := d.ReadInt(rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := d.ReadUint(rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil

	case reflect.Float32, reflect.Float64:
		v, err := d.ReadFloat(rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(v)
		return nil

	case reflect.String:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		rv.SetString(v)
		return nil

	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(d, rv.Elem())

	case reflect.Struct:
		return decodeStruct(d, rv)

	case reflect.Slice:
		return decodeSlice(d, rv)

	case reflect.Array:
		return decodeArray(d, rv)

	default:
		return merr.WrapErrWireTypeUnsupported(rv.Type().String())
	}
}

func decodeStruct(d *Decoder, rv reflect.Value) error {
	fields := structFields(rv.Type())
	byName := make(map[string]int, len(fields))
	for _, f := range fields {
		byName[f.name] = f.index
	}

	for {
		atTerm, err := d.AtTerminator()
		if err != nil {
			return err
		}
		if atTerm {
			return nil
		}

		keyOffset := d.index
		key, err := d.ReadString()
		if err != nil {
			return err
		}
		idx, ok := byName[key]
		if !ok {
			return merr.WrapErrWireBadData(keyOffset, "unknown struct field "+strconv.Quote(key))
		}
		if err := decodeValue(d, rv.Field(idx)); err != nil {
			return err
		}
	}
}

func decodeSlice(d *Decoder, rv reflect.Value) error {
	elemType := rv.Type().Elem()
	if elemType.Kind() == reflect.Uint8 {
		return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "byte blobs have no wire encoding")
	}
	if isStructLikeType(elemType) {
		return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "struct inside a sequence")
	}

	span, err := d.BeginSequence()
	if err != nil {
		return err
	}

	out := reflect.MakeSlice(rv.Type(), 0, 0)
	start := d.Offset()
	for d.Offset()-start < span {
		elem := reflect.New(elemType).Elem()
		if err := decodeValue(d, elem); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
	}
	if d.Offset()-start != span {
		return merr.WrapErrWireBadData(d.Offset(), "sequence element bytes overrun the declared span")
	}
	rv.Set(out)
	return nil
}

func decodeArray(d *Decoder, rv reflect.Value) error {
	elemType := rv.Type().Elem()
	if isStructLikeType(elemType) {
		return merr.WrapErrWireTypeUnsupported(rv.Type().String(), "struct inside a sequence")
	}

	span, err := d.BeginSequence()
	if err != nil {
		return err
	}

	start := d.Offset()
	for i := 0; i < rv.Len(); i++ {
		if err := decodeValue(d, rv.Index(i)); err != nil {
			return err
		}
	}
	if d.Offset()-start != span {
		return merr.WrapErrWireBadData(d.Offset(), "sequence span does not match array length")
	}
	return nil
}
