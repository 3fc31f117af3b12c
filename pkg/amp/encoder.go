package amp

import (
	"strconv"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

// Encoder 将遍历驱动推送的类型化值编码为 AMP 线格式字节流。
//
// 每个 Encoder 只服务于一次编码调用，内部状态（输出缓冲与回填标记栈）
// 由该次调用独占，不支持跨调用复用或并发访问。
type Encoder struct {
	// marks 为序列长度回填的标记栈，元素是长度前缀应插入的输出偏移。
	// 序列允许任意深度嵌套，栈深即嵌套深度。
	marks []int

	out []byte
}

// NewEncoder 创建一个空输出缓冲的编码器。
func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewEncoderWithBuffer 创建一个复用给定缓冲区的编码器。
// buf 的已有内容会被保留并在其后追加输出，通常传入 buf[:0]。
func NewEncoderWithBuffer(buf []byte) *Encoder {
	return &Encoder{out: buf}
}

// emitField 写入一个完整字段：2 字节长度前缀 + UTF-8 文本。
func (e *Encoder) emitField(text string) error {
	if len(text) == 0 {
		// 零长字段与终止符字节相同，线格式无法区分。
		return merr.WrapErrWireTypeUnsupported("empty string", "zero-length field is reserved for the terminator")
	}
	prefix, err := lengthToBytes(len(text))
	if err != nil {
		return err
	}
	e.out = append(e.out, prefix[0], prefix[1])
	e.out = append(e.out, text...)
	return nil
}

// EmitBool 实现 FieldEmitter.EmitBool。
func (e *Encoder) EmitBool(v bool) error {
	if v {
		return e.emitField("True")
	}
	return e.emitField("False")
}

// EmitInt 实现 FieldEmitter.EmitInt。
func (e *Encoder) EmitInt(v int64) error {
	return e.emitField(strconv.FormatInt(v, 10))
}

// EmitUint 实现 FieldEmitter.EmitUint。
func (e *Encoder) EmitUint(v uint64) error {
	return e.emitField(strconv.FormatUint(v, 10))
}

// EmitFloat32 实现 FieldEmitter.EmitFloat32。
// 使用最短往返表示，不固定小数精度。
func (e *Encoder) EmitFloat32(v float32) error {
	return e.emitField(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// EmitFloat64 实现 FieldEmitter.EmitFloat64。
// 使用最短往返表示，不固定小数精度。
func (e *Encoder) EmitFloat64(v float64) error {
	return e.emitField(strconv.FormatFloat(v, 'g', -1, 64))
}

// EmitRune 实现 FieldEmitter.EmitRune。
func (e *Encoder) EmitRune(v rune) error {
	return e.emitField(string(v))
}

// EmitString 实现 FieldEmitter.EmitString。
func (e *Encoder) EmitString(v string) error {
	return e.emitField(v)
}

// EmitKey 实现 FieldEmitter.EmitKey。
// key 在线格式上就是一个字符串标量字段。
func (e *Encoder) EmitKey(name string) error {
	return e.emitField(name)
}

// BeginSequence 实现 FieldEmitter.BeginSequence。
func (e *Encoder) BeginSequence() {
	e.marks = append(e.marks, len(e.out))
}

// EndSequence 实现 FieldEmitter.EndSequence。
//
// 弹出最近的标记，将 [标记, 当前末尾) 的字节跨度编码为 2 字节长度前缀，
// 并插入到标记位置（标记之后的所有字节整体右移 2 字节）。
func (e *Encoder) EndSequence() error {
	if len(e.marks) == 0 {
		return merr.WrapErrParameterInvalid("open sequence", "none", "EndSequence without BeginSequence")
	}
	mark := e.marks[len(e.marks)-1]
	e.marks = e.marks[:len(e.marks)-1]

	span := len(e.out) - mark
	prefix, err := lengthToBytes(span)
	if err != nil {
		return err
	}

	e.out = append(e.out, 0, 0)
	copy(e.out[mark+lengthSize:], e.out[mark:])
	e.out[mark] = prefix[0]
	e.out[mark+1] = prefix[1]
	return nil
}

// Finish 追加文档终止符并返回完整的输出字节。
// 返回的切片与内部缓冲共享底层数组，调用方接管所有权。
func (e *Encoder) Finish() ([]byte, error) {
	if len(e.marks) != 0 {
		return nil, merr.WrapErrParameterInvalid(0, len(e.marks), "unclosed sequence at Finish")
	}
	e.out = append(e.out, 0, 0)
	return e.out, nil
}

// Bytes 返回当前已写入的输出字节（不含终止符）。
func (e *Encoder) Bytes() []byte {
	return e.out
}
