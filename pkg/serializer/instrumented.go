package serializer

import (
	"go.uber.org/zap"

	"github.com/lk2023060901/amp-garden-go/pkg/log"
	"github.com/lk2023060901/amp-garden-go/pkg/metrics"
)

// Instrumented 在任意 Serializer 外层叠加 Prometheus 指标与限速日志。
//
// 每次调用按序列化器名、操作、成败上报计数，成功时额外上报
// 文档字节数分布。失败路径的日志走限速器，避免坏数据风暴刷屏。
type Instrumented struct {
	inner  Serializer
	logger *log.MLogger
}

// 编译期断言：确保 Instrumented 实现了 Serializer 接口。
var _ Serializer = (*Instrumented)(nil)

// NewInstrumented 包装 inner，返回带观测能力的序列化器。
func NewInstrumented(inner Serializer) *Instrumented {
	return &Instrumented{
		inner: inner,
		logger: log.With(log.FieldSerializer(inner.Name())).
			WithRateGroup("serializer."+inner.Name(), 1, 60),
	}
}

func (s *Instrumented) Name() string {
	return s.inner.Name()
}

func (s *Instrumented) Marshal(v any) ([]byte, error) {
	data, err := s.inner.Marshal(v)
	if err != nil {
		metrics.CodecOpTotal.WithLabelValues(s.inner.Name(), metrics.EncodeOpLabel, metrics.FailStatusLabel).Inc()
		s.logger.RatedWarn(10, "marshal failed", zap.Error(err))
		return nil, err
	}
	metrics.CodecOpTotal.WithLabelValues(s.inner.Name(), metrics.EncodeOpLabel, metrics.SuccessStatusLabel).Inc()
	metrics.CodecBytes.WithLabelValues(s.inner.Name(), metrics.EncodeOpLabel).Observe(float64(len(data)))
	return data, nil
}

func (s *Instrumented) Unmarshal(data []byte, v any) error {
	if err := s.inner.Unmarshal(data, v); err != nil {
		metrics.CodecOpTotal.WithLabelValues(s.inner.Name(), metrics.DecodeOpLabel, metrics.FailStatusLabel).Inc()
		s.logger.RatedWarn(10, "unmarshal failed",
			zap.Int("inputBytes", len(data)),
			zap.Error(err))
		return err
	}
	metrics.CodecOpTotal.WithLabelValues(s.inner.Name(), metrics.DecodeOpLabel, metrics.SuccessStatusLabel).Inc()
	metrics.CodecBytes.WithLabelValues(s.inner.Name(), metrics.DecodeOpLabel).Observe(float64(len(data)))
	return nil
}
