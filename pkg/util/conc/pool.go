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

package conc

import (
	ants "github.com/panjf2000/ants/v2"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

// Pool 是基于 ants 的泛型协程池封装。
//
// 与直接使用 ants 的区别：
//   - Submit 返回 Future，调用方可以等待并取回任务结果与错误；
//   - 任务内 panic 由 ants 统一 recover，行为由 PoolOption 控制。
type Pool[T any] struct {
	inner *ants.Pool
	opt   *poolOption
}

// NewPool 创建一个容量为 cap 的协程池。
func NewPool[T any](cap int, opts ...PoolOption) *Pool[T] {
	opt := defaultPoolOption()
	for _, o := range opts {
		o(opt)
	}

	pool, err := ants.NewPool(cap, opt.antsOptions()...)
	if err != nil {
		// ants 仅在参数非法时返回错误。
		panic(err)
	}

	return &Pool[T]{
		inner: pool,
		opt:   opt,
	}
}

// Submit 提交一个任务，返回可等待结果的 Future。
func (pool *Pool[T]) Submit(method func() (T, error)) *Future[T] {
	future := newFuture[T]()
	err := pool.inner.Submit(func() {
		defer close(future.ch)
		if pool.opt.preHandler != nil {
			pool.opt.preHandler()
		}
		res, err := method()
		if err != nil {
			future.err = err
			return
		}
		future.value = res
	})
	if err != nil {
		future.err = err
		close(future.ch)
	}

	return future
}

// Cap 返回协程池容量。
func (pool *Pool[T]) Cap() int {
	return pool.inner.Cap()
}

// Running 返回当前正在运行的 worker 数量。
func (pool *Pool[T]) Running() int {
	return pool.inner.Running()
}

// Free 返回当前空闲的 worker 数量。
func (pool *Pool[T]) Free() int {
	return pool.inner.Free()
}

// Release 关闭协程池并回收 worker。
func (pool *Pool[T]) Release() {
	pool.inner.Release()
}

// Future 表示一个已提交任务的异步结果。
type Future[T any] struct {
	ch    chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		ch: make(chan struct{}),
	}
}

// Await 阻塞等待任务完成，返回任务结果与错误。
func (future *Future[T]) Await() (T, error) {
	<-future.ch
	return future.value, future.err
}

// Value 阻塞等待任务完成，仅返回结果。
func (future *Future[T]) Value() T {
	<-future.ch
	return future.value
}

// Err 阻塞等待任务完成，仅返回错误。
func (future *Future[T]) Err() error {
	<-future.ch
	return future.err
}

// Inner 返回任务完成信号通道，便于配合 select 使用。
func (future *Future[T]) Inner() <-chan struct{} {
	return future.ch
}

// AwaitAll 等待所有 Future 完成，返回合并后的错误。
func AwaitAll[T any](futures ...*Future[T]) error {
	errs := make([]error, 0, len(futures))
	for _, future := range futures {
		errs = append(errs, future.Err())
	}
	return merr.Combine(errs...)
}
