package amp

import (
	"strconv"
	"unicode/utf8"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

// Decoder 以单向游标流式解码 AMP 线格式字节流。
//
// 输入缓冲在解码期间不可变，游标只前进不后退；终止符探测通过
// 一次字段前瞻（peek 不消费）完成。每个 Decoder 只服务于一次
// 解码调用，不支持并发访问。
type Decoder struct {
	input []byte
	index int
}

// NewDecoder 创建一个从 data 起始位置解码的解码器。
func NewDecoder(data []byte) *Decoder {
	return &Decoder{input: data}
}

// peekLength 读取游标处的 2 字节长度前缀，不移动游标。
func (d *Decoder) peekLength() (uint16, error) {
	if d.index+lengthSize > len(d.input) {
		return 0, merr.WrapErrWireEOF(d.index, "truncated length prefix")
	}
	return bytesToLength(d.input[d.index : d.index+lengthSize]), nil
}

// readLength 读取长度前缀并将游标前移 2 字节。
func (d *Decoder) readLength() (uint16, error) {
	length, err := d.peekLength()
	if err != nil {
		return 0, err
	}
	d.index += lengthSize
	return length, nil
}

// readField 读取一个完整字段并返回其 UTF-8 文本载荷。
func (d *Decoder) readField() (string, error) {
	length, err := d.readLength()
	if err != nil {
		return "", err
	}
	end := d.index + int(length)
	if end > len(d.input) {
		return "", merr.WrapErrWireEOF(d.index, "truncated field payload")
	}
	payload := d.input[d.index:end]
	if !utf8.Valid(payload) {
		return "", merr.WrapErrWireBadData(d.index, "field payload is not valid utf-8")
	}
	d.index = end
	return string(payload), nil
}

// AtTerminator 实现 FieldSource.AtTerminator。
func (d *Decoder) AtTerminator() (bool, error) {
	length, err := d.peekLength()
	if err != nil {
		return false, err
	}
	return length == 0, nil
}

// ReadBool 实现 FieldSource.ReadBool。
func (d *Decoder) ReadBool() (bool, error) {
	offset := d.index
	text, err := d.readField()
	if err != nil {
		return false, err
	}
	switch text {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, merr.WrapErrWireBadData(offset, "expected \"True\" or \"False\", got "+strconv.Quote(text))
	}
}

// ReadInt 实现 FieldSource.ReadInt。
func (d *Decoder) ReadInt(bitSize int) (int64, error) {
	offset := d.index
	text, err := d.readField()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, merr.WrapErrWireBadData(offset, "invalid integer text "+strconv.Quote(text))
	}
	return v, nil
}

// ReadUint 实现 FieldSource.ReadUint。
func (d *Decoder) ReadUint(bitSize int) (uint64, error) {
	offset := d.index
	text, err := d.readField()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, merr.WrapErrWireBadData(offset, "invalid unsigned integer text "+strconv.Quote(text))
	}
	return v, nil
}

// ReadFloat 实现 FieldSource.ReadFloat。
func (d *Decoder) ReadFloat(bitSize int) (float64, error) {
	offset := d.index
	text, err := d.readField()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return 0, merr.WrapErrWireBadData(offset, "invalid float text "+strconv.Quote(text))
	}
	return v, nil
}

// ReadRune 实现 FieldSource.ReadRune。
// 字段载荷必须恰好为一个字符。
func (d *Decoder) ReadRune() (rune, error) {
	offset := d.index
	text, err := d.readField()
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(text) != 1 {
		return 0, merr.WrapErrWireBadData(offset, "expected a single character, got "+strconv.Quote(text))
	}
	r, _ := utf8.DecodeRuneInString(text)
	return r, nil
}

// ReadString 实现 FieldSource.ReadString。
func (d *Decoder) ReadString() (string, error) {
	return d.readField()
}

// BeginSequence 实现 FieldSource.BeginSequence。
// 返回序列声明的元素总字节跨度，元素由驱动方继续拉取。
func (d *Decoder) BeginSequence() (int, error) {
	length, err := d.readLength()
	if err != nil {
		return 0, err
	}
	if d.index+int(length) > len(d.input) {
		return 0, merr.WrapErrWireEOF(d.index, "sequence span exceeds input")
	}
	return int(length), nil
}

// Offset 返回游标当前位置，供驱动方核对序列消费进度。
func (d *Decoder) Offset() int {
	return d.index
}
