package amp

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

type DecoderSuite struct {
	suite.Suite
}

func (s *DecoderSuite) TestBool() {
	var v bool
	s.NoError(Unmarshal([]byte{0, 4, 'T', 'r', 'u', 'e', 0, 0}, &v))
	s.True(v)

	s.NoError(Unmarshal([]byte{0, 5, 'F', 'a', 'l', 's', 'e', 0, 0}, &v))
	s.False(v)

	err := Unmarshal([]byte{0, 4, 'y', 'e', 'a', 'h', 0, 0}, &v)
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestSignedIntegers() {
	var i8 int8
	s.NoError(Unmarshal([]byte{0, 3, '-', '1', '5', 0, 0}, &i8))
	s.Equal(int8(-15), i8)

	var i16 int16
	s.NoError(Unmarshal([]byte{0, 5, '-', '7', '1', '9', '4', 0, 0}, &i16))
	s.Equal(int16(-7194), i16)

	var i32 int32
	s.NoError(Unmarshal([]byte{0, 6, '-', '7', '1', '9', '4', '9', 0, 0}, &i32))
	s.Equal(int32(-71949), i32)

	var i64 int64
	s.NoError(Unmarshal([]byte{0, 7, '-', '9', '6', '5', '5', '3', '7', 0, 0}, &i64))
	s.Equal(int64(-965537), i64)
}

func (s *DecoderSuite) TestUnsignedIntegers() {
	var u8 uint8
	s.NoError(Unmarshal([]byte{0, 3, '2', '5', '5', 0, 0}, &u8))
	s.Equal(uint8(255), u8)

	var u16 uint16
	s.NoError(Unmarshal([]byte{0, 5, '6', '5', '5', '3', '5', 0, 0}, &u16))
	s.Equal(uint16(65535), u16)

	var u32 uint32
	s.NoError(Unmarshal([]byte{0, 5, '6', '5', '5', '3', '7', 0, 0}, &u32))
	s.Equal(uint32(65537), u32)

	var u64 uint64
	s.NoError(Unmarshal([]byte{0, 7, '2', '9', '6', '5', '5', '3', '7', 0, 0}, &u64))
	s.Equal(uint64(2965537), u64)
}

func (s *DecoderSuite) TestIntegerOverflow() {
	// "255" 超出 int8 范围，属于内容性错误而不是 panic。
	var i8 int8
	err := Unmarshal([]byte{0, 3, '2', '5', '5', 0, 0}, &i8)
	s.ErrorIs(err, merr.ErrWireBadData)

	var u8 uint8
	err = Unmarshal([]byte{0, 2, '-', '1', 0, 0}, &u8)
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestFloats() {
	var f32 float32
	s.NoError(Unmarshal([]byte{0, 4, '1', '2', '.', '9', 0, 0}, &f32))
	s.Equal(float32(12.9), f32)

	var f64 float64
	s.NoError(Unmarshal([]byte{0, 4, '1', '2', '.', '9', 0, 0}, &f64))
	s.Equal(12.9, f64)
}

func (s *DecoderSuite) TestString() {
	var v string
	s.NoError(Unmarshal([]byte{0, 4, 't', 'e', 's', 't', 0, 0}, &v))
	s.Equal("test", v)
}

func (s *DecoderSuite) TestRuneField() {
	d := NewDecoder([]byte{0, 1, 'a', 0, 0})
	r, err := d.ReadRune()
	s.NoError(err)
	s.Equal('a', r)

	d = NewDecoder([]byte{0, 2, 'a', 'b', 0, 0})
	_, err = d.ReadRune()
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestStruct() {
	type testStruct struct {
		Value uint   `amp:"value"`
		Name  string `amp:"name"`
	}

	input := []byte{
		0, 5, 'v', 'a', 'l', 'u', 'e',
		0, 3, '3', '8', '3',
		0, 4, 'n', 'a', 'm', 'e',
		0, 7, 'a', 'n', '-', 'n', 'a', 'm', 'e',
		0, 0,
	}

	var v testStruct
	s.NoError(Unmarshal(input, &v))
	s.Equal(uint(383), v.Value)
	s.Equal("an-name", v.Name)
}

func (s *DecoderSuite) TestStructUnknownField() {
	type testStruct struct {
		Value uint `amp:"value"`
	}

	input := []byte{
		0, 5, 'o', 't', 'h', 'e', 'r',
		0, 1, '1',
		0, 0,
	}

	var v testStruct
	err := Unmarshal(input, &v)
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestSequence() {
	input := []byte{
		0, 8,
		0, 2, '1', '0',
		0, 2, '1', '1',
		0, 0,
	}

	var v []int
	s.NoError(Unmarshal(input, &v))
	s.Equal([]int{10, 11}, v)
}

func (s *DecoderSuite) TestSequenceSpanMismatch() {
	// 声明 7 字节，但元素帧实际占 8 字节，元素解码会越过声明跨度。
	input := []byte{
		0, 7,
		0, 2, '1', '0',
		0, 2, '1', '1',
		0, 0,
	}

	var v []int
	err := Unmarshal(input, &v)
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestStructInSequenceRejected() {
	type inner struct {
		A int `amp:"a"`
	}

	// 序列元素没有私有终止符，结构体元素在两个方向上都不允许，
	// 指针包装也不能绕过这条规则。
	input := []byte{
		0, 8,
		0, 1, 'a',
		0, 1, '1',
		0, 0,
	}

	var direct []inner
	err := Unmarshal(input, &direct)
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	var viaPointer []*inner
	err = Unmarshal(input, &viaPointer)
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	var asArray [1]*inner
	err = Unmarshal(input, &asArray)
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)
}

func (s *DecoderSuite) TestTruncatedInput() {
	var v string

	// 长度前缀本身被截断。
	err := Unmarshal([]byte{0}, &v)
	s.ErrorIs(err, merr.ErrWireEOF)

	// 载荷短于声明长度。
	err = Unmarshal([]byte{0, 5, 'a', 'b'}, &v)
	s.ErrorIs(err, merr.ErrWireEOF)

	// 字段完整但缺少终止符。
	err = Unmarshal([]byte{0, 1, 'a'}, &v)
	s.ErrorIs(err, merr.ErrWireEOF)
}

func (s *DecoderSuite) TestInvalidUTF8() {
	var v string
	err := Unmarshal([]byte{0, 2, 0xff, 0xfe, 0, 0}, &v)
	s.ErrorIs(err, merr.ErrWireBadData)
}

func (s *DecoderSuite) TestTrailingCharacters() {
	var v bool

	// 值消费完后游标未落在终止符上。
	err := Unmarshal([]byte{0, 4, 'T', 'r', 'u', 'e', 0, 1, 'x', 0, 0}, &v)
	s.ErrorIs(err, merr.ErrWireTrailingCharacters)

	// 终止符之后仍有剩余字节。
	err = Unmarshal([]byte{0, 4, 'T', 'r', 'u', 'e', 0, 0, 'x'}, &v)
	s.ErrorIs(err, merr.ErrWireTrailingCharacters)
}

func (s *DecoderSuite) TestTargetMustBePointer() {
	var v bool
	err := Unmarshal([]byte{0, 4, 'T', 'r', 'u', 'e', 0, 0}, v)
	s.ErrorIs(err, merr.ErrParameterInvalid)
}

func TestDecoder(t *testing.T) {
	suite.Run(t, new(DecoderSuite))
}
