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
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	CanceledCode int32 = 10000
	TimeoutCode  int32 = 10001
)

type ErrorType int32

const (
	SystemError ErrorType = 0
	InputError  ErrorType = 1
)

var ErrorTypeName = map[ErrorType]string{
	SystemError: "system_error",
	InputError:  "input_error",
}

func (err ErrorType) String() string {
	return ErrorTypeName[err]
}

// Define leaf errors here,
// WARN: take care to add new error,
// check whether you can use the errors below before adding a new one.
// Name: Err + related prefix + error name
var (
	// Wire 编解码相关错误。
	// 解码端：输入在一个字段中途耗尽。
	ErrWireEOF = newAmpError("unexpected end of input", 100, false)
	// 解码端：顶层值消费完毕后，游标未恰好落在终止符上。
	ErrWireTrailingCharacters = newAmpError("trailing characters after document", 101, false)
	// 解码端：UTF-8 非法、数值/布尔文本无法解析、序列长度不一致等内容性错误。
	ErrWireBadData = newAmpError("bad or malformed data", 102, false)
	// 编码端：单个字段长度超过 2 字节长度前缀的上限（65535）。
	ErrWireFieldTooLarge = newAmpError("field length exceeds two-byte prefix", 103, false)
	// 编码端：值的类型不在线格式支持的集合内（字节串、空值、map 等）。
	ErrWireTypeUnsupported = newAmpError("type not supported by wire format", 104, false)

	// Serializer 相关错误。
	ErrSerializerNotFound = newAmpError("serializer not found", 200, false)

	// 参数相关错误。
	ErrParameterInvalid = newAmpError("invalid parameter", 1100, false)
	ErrParameterMissing = newAmpError("missing parameter", 1101, false)

	// Do NOT export this,
	// never allow programmer using this, keep only for converting unknown error to ampError
	errUnexpected = newAmpError("unexpected error", (1<<16)-1, false)
)

type errorOption func(*ampError)

func WithDetail(detail string) errorOption {
	return func(err *ampError) {
		err.detail = detail
	}
}

func WithErrorType(etype ErrorType) errorOption {
	return func(err *ampError) {
		err.errType = etype
	}
}

type ampError struct {
	msg       string
	detail    string
	retriable bool
	errCode   int32
	errType   ErrorType
}

func newAmpError(msg string, code int32, retriable bool, options ...errorOption) ampError {
	err := ampError{
		msg:       msg,
		detail:    msg,
		retriable: retriable,
		errCode:   code,
	}

	for _, option := range options {
		option(&err)
	}
	return err
}

func (e ampError) code() int32 {
	return e.errCode
}

func (e ampError) Error() string {
	return e.msg
}

func (e ampError) Detail() string {
	return e.detail
}

func (e ampError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(ampError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// To make merr work for multi errors,
	// we need cause of multi errors, which defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
