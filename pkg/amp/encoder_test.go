package amp

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

type EncoderSuite struct {
	suite.Suite
}

func (s *EncoderSuite) TestBoolTrue() {
	out, err := Marshal(true)
	s.NoError(err)
	s.Equal([]byte{0, 4, 'T', 'r', 'u', 'e', 0, 0}, out)
}

func (s *EncoderSuite) TestBoolFalse() {
	out, err := Marshal(false)
	s.NoError(err)
	s.Equal([]byte{0, 5, 'F', 'a', 'l', 's', 'e', 0, 0}, out)
}

func (s *EncoderSuite) TestSignedIntegers() {
	out, err := Marshal(int8(-10))
	s.NoError(err)
	s.Equal([]byte{0, 3, '-', '1', '0', 0, 0}, out)

	out, err = Marshal(int16(-100))
	s.NoError(err)
	s.Equal([]byte{0, 4, '-', '1', '0', '0', 0, 0}, out)

	out, err = Marshal(int32(-1000))
	s.NoError(err)
	s.Equal([]byte{0, 5, '-', '1', '0', '0', '0', 0, 0}, out)

	out, err = Marshal(int64(-10000))
	s.NoError(err)
	s.Equal([]byte{0, 6, '-', '1', '0', '0', '0', '0', 0, 0}, out)
}

func (s *EncoderSuite) TestUnsignedIntegers() {
	out, err := Marshal(uint8(10))
	s.NoError(err)
	s.Equal([]byte{0, 2, '1', '0', 0, 0}, out)

	out, err = Marshal(uint16(100))
	s.NoError(err)
	s.Equal([]byte{0, 3, '1', '0', '0', 0, 0}, out)

	out, err = Marshal(uint32(1000))
	s.NoError(err)
	s.Equal([]byte{0, 4, '1', '0', '0', '0', 0, 0}, out)

	out, err = Marshal(uint64(10000))
	s.NoError(err)
	s.Equal([]byte{0, 5, '1', '0', '0', '0', '0', 0, 0}, out)
}

func (s *EncoderSuite) TestFloats() {
	out, err := Marshal(float32(1.5))
	s.NoError(err)
	s.Equal([]byte{0, 3, '1', '.', '5', 0, 0}, out)

	out, err = Marshal(float64(10.5))
	s.NoError(err)
	s.Equal([]byte{0, 4, '1', '0', '.', '5', 0, 0}, out)
}

func (s *EncoderSuite) TestString() {
	out, err := Marshal("An string")
	s.NoError(err)
	s.Equal([]byte{0, 9, 'A', 'n', ' ', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, out)
}

func (s *EncoderSuite) TestRuneField() {
	e := NewEncoder()
	s.NoError(e.EmitRune('X'))
	out, err := e.Finish()
	s.NoError(err)
	s.Equal([]byte{0, 1, 'X', 0, 0}, out)
}

func (s *EncoderSuite) TestStruct() {
	type nestedStruct struct {
		Inner uint `amp:"inner"`
	}
	type testStruct struct {
		Value  uint         `amp:"value"`
		Nested nestedStruct `amp:"nested"`
	}

	out, err := Marshal(testStruct{
		Value:  10,
		Nested: nestedStruct{Inner: 1},
	})
	s.NoError(err)
	s.Equal([]byte{
		0, 5, 'v', 'a', 'l', 'u', 'e',
		0, 2, '1', '0',
		0, 6, 'n', 'e', 's', 't', 'e', 'd',
		0, 5, 'i', 'n', 'n', 'e', 'r',
		0, 1, '1',
		0, 0,
	}, out)
}

func (s *EncoderSuite) TestSequence() {
	out, err := Marshal([]int{10, 11})
	s.NoError(err)
	// 外层长度 8 是两个内层字段帧的总字节数（4 + 4）。
	s.Equal([]byte{
		0, 8,
		0, 2, '1', '0',
		0, 2, '1', '1',
		0, 0,
	}, out)
}

func (s *EncoderSuite) TestNestedSequence() {
	out, err := Marshal([][]int{{1, 2}, {3}})
	s.NoError(err)
	s.Equal([]byte{
		0, 14,
		0, 6, 0, 1, '1', 0, 1, '2',
		0, 3, 0, 1, '3',
		0, 0,
	}, out)
}

func (s *EncoderSuite) TestTerminatorAlwaysLast() {
	for _, v := range []any{true, int64(42), "x", []int{1, 2, 3}} {
		out, err := Marshal(v)
		s.NoError(err)
		s.GreaterOrEqual(len(out), 2)
		s.Equal([]byte{0, 0}, out[len(out)-2:])
	}
}

func (s *EncoderSuite) TestUnsupportedTypes() {
	_, err := Marshal(map[string]int{"a": 1})
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	_, err = Marshal([]byte{1, 2, 3})
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	_, err = Marshal(nil)
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	var p *int
	_, err = Marshal(p)
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	_, err = Marshal(complex(1, 2))
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	// 空字符串与终止符同形。
	_, err = Marshal("")
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)
}

func (s *EncoderSuite) TestStructPlacementRules() {
	type inner struct {
		A int `amp:"a"`
	}

	// 嵌套结构体只能是最后一个字段。
	type badOrder struct {
		Nested inner `amp:"nested"`
		Tail   int   `amp:"tail"`
	}
	_, err := Marshal(badOrder{})
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)

	// 结构体不允许作为序列元素。
	_, err = Marshal([]inner{{A: 1}})
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)
}

func (s *EncoderSuite) TestDuplicateWireKey() {
	type clash struct {
		A int `amp:"same"`
		B int `amp:"same"`
	}
	_, err := Marshal(clash{})
	s.ErrorIs(err, merr.ErrWireTypeUnsupported)
}

func (s *EncoderSuite) TestUnbalancedSequence() {
	e := NewEncoder()
	e.BeginSequence()
	s.NoError(e.EmitInt(1))
	_, err := e.Finish()
	s.ErrorIs(err, merr.ErrParameterInvalid)

	e = NewEncoder()
	s.ErrorIs(e.EndSequence(), merr.ErrParameterInvalid)
}

func TestEncoder(t *testing.T) {
	suite.Run(t, new(EncoderSuite))
}
