// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrWireBadData(12, "not a boolean")
	errors.Wrap(err, "failed to decode document")
	s.ErrorIs(err, ErrWireBadData)
	s.Equal(Code(ErrWireBadData), Code(err))
	s.Equal(TimeoutCode, Code(context.DeadlineExceeded))
	s.Equal(CanceledCode, Code(context.Canceled))
	s.Equal(errUnexpected.errCode, Code(errUnexpected))

	sameCodeErr := newAmpError("new error", ErrWireBadData.errCode, false)
	s.True(sameCodeErr.Is(ErrWireBadData))
}

func (s *ErrSuite) TestWrap() {
	// Wire 编解码相关错误。
	s.ErrorIs(WrapErrWireEOF(0, "truncated length prefix"), ErrWireEOF)
	s.ErrorIs(WrapErrWireTrailingCharacters(8), ErrWireTrailingCharacters)
	s.ErrorIs(WrapErrWireBadData(2, "invalid utf-8"), ErrWireBadData)
	s.ErrorIs(WrapErrWireFieldTooLarge(70000, 65535, "key too long"), ErrWireFieldTooLarge)
	s.ErrorIs(WrapErrWireTypeUnsupported("map[string]int"), ErrWireTypeUnsupported)

	// Serializer 相关错误。
	s.ErrorIs(WrapErrSerializerNotFound("msgpack"), ErrSerializerNotFound)

	// 参数相关错误。
	s.ErrorIs(WrapErrParameterInvalid(8, 1, "failed to create"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterInvalidRange(0, 1<<16, -1, "length should be in range"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterMissing("serializer_name", "no serializer parameter"), ErrParameterMissing)
}

func (s *ErrSuite) TestIsRetryable() {
	s.False(IsRetryableErr(ErrWireBadData))
	s.False(IsRetryableErr(ErrWireEOF))
	s.False(IsRetryableErr(errors.New("not an amp error")))
}

func (s *ErrSuite) TestErrorType() {
	err := WrapErrAsInputError(ErrWireBadData)
	s.Equal(InputError, GetErrorType(err))
	s.Equal(SystemError, GetErrorType(errors.New("plain")))
	s.Equal("input_error", InputError.String())
}

func (s *ErrSuite) TestCombine() {
	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
		errThird  = errors.New("third")
	)

	err := Combine(errFirst, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))

	s.Equal("first: second", err.Error())
}

func (s *ErrSuite) TestCombineWithNil() {
	err := errors.New("non-nil")

	err = Combine(nil, err)
	s.NotNil(err)
}

func (s *ErrSuite) TestCombineOnlyNil() {
	err := Combine(nil, nil)
	s.Nil(err)
}

func (s *ErrSuite) TestCombineCode() {
	err := Combine(WrapErrWireEOF(4), WrapErrWireBadData(2, "bad digit"))
	s.Equal(Code(ErrWireBadData), Code(err))
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
