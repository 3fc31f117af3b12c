package amp

import (
	"encoding/binary"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

const (
	// maxFieldLength 为单个字段载荷的最大字节数，由 2 字节长度前缀决定。
	maxFieldLength = 0xFFFF

	// lengthSize 为长度前缀与终止符的字节数。
	lengthSize = 2
)

// lengthToBytes 将字段长度转换为 2 字节大端表示。
// 超出上限时返回 ErrWireFieldTooLarge，而不是 panic。
func lengthToBytes(n int) ([lengthSize]byte, error) {
	var b [lengthSize]byte
	if n < 0 || n > maxFieldLength {
		return b, merr.WrapErrWireFieldTooLarge(n, maxFieldLength)
	}
	binary.BigEndian.PutUint16(b[:], uint16(n))
	return b, nil
}

// bytesToLength 将 2 字节大端表示还原为字段长度。
// 任意 2 字节组合都是合法长度，没有失败分支。
func bytesToLength(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}
