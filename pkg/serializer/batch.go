package serializer

import (
	"context"
	"runtime"

	"github.com/lk2023060901/amp-garden-go/pkg/util/conc"
)

// batchPool 供批量编码复用，容量跟随 CPU 数。
var batchPool = conc.NewPool[[]byte](runtime.GOMAXPROCS(0))

// MarshalBatch 用协程池并行编码一批对象，结果顺序与输入一致。
//
// 每次提交前都会检查 ctx，取消后不再派发剩余任务，已派发的任务
// 仍会跑完。任意一个对象编码失败或 ctx 被取消都会使整批失败，
// 调用方不应依赖失败批次的部分结果。
func MarshalBatch[T any](ctx context.Context, s Serializer, items []T) ([][]byte, error) {
	futures := make([]*conc.Future[[]byte], 0, len(items))
	for _, item := range items {
		item := item
		if err := ctx.Err(); err != nil {
			conc.AwaitAll(futures...)
			return nil, err
		}
		futures = append(futures, batchPool.Submit(func() ([]byte, error) {
			return s.Marshal(item)
		}))
	}

	if err := conc.AwaitAll(futures...); err != nil {
		return nil, err
	}

	out := make([][]byte, len(futures))
	for i, future := range futures {
		out[i] = future.Value()
	}
	return out, nil
}

// UnmarshalBatch 将编码结果逐个解码到新对象中，顺序不变。
// 与 MarshalBatch 对称，ctx 取消后立即停止。
func UnmarshalBatch[T any](ctx context.Context, s Serializer, docs [][]byte) ([]T, error) {
	out := make([]T, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Unmarshal(doc, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
