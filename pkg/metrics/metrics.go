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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// ampNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	ampNamespace = "amp"

	// 以下为当前使用的通用标签名。
	serializerLabelName = "serializer"
	opLabelName         = "op"
	statusLabelName     = "status"

	// op 标签的合法取值。
	EncodeOpLabel = "encode"
	DecodeOpLabel = "decode"

	// status 标签的合法取值。
	SuccessStatusLabel = "success"
	FailStatusLabel    = "fail"
)

var (
	// sizeBuckets 为载荷大小的桶划分，单位为字节。
	// 线格式单字段上限为 65535 字节，文档整体可以更大。
	sizeBuckets = []float64{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

	CodecOpTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: ampNamespace,
			Name:      "codec_op_total",
			Help:      "number of encode/decode calls by serializer and status",
		}, []string{serializerLabelName, opLabelName, statusLabelName})

	CodecBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: ampNamespace,
			Name:      "codec_bytes",
			Help:      "size distribution of encoded documents in bytes",
			Buckets:   sizeBuckets,
		}, []string{serializerLabelName, opLabelName})

	metricRegisterer prometheus.Registerer
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册当前定义的所有指标。
// 通常应在 init 函数中调用。
func Register(r prometheus.Registerer) {
	r.MustRegister(CodecOpTotal)
	r.MustRegister(CodecBytes)
	metricRegisterer = r
}
