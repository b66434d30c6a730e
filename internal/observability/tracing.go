package observability

import (
    "context"

    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    sdkresource "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"
    semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

    "github.com/d60-Lab/feedback-board/config"
)

// InitTracer 初始化 OTLP 链路追踪；未启用时返回 nil
func InitTracer(ctx context.Context, cfg *config.Config) (*sdktrace.TracerProvider, error) {
    if !cfg.Trace.Enabled {
        return nil, nil
    }
    exporter, err := otlptracehttp.New(ctx,
        otlptracehttp.WithEndpoint(cfg.Trace.Endpoint),
        otlptracehttp.WithInsecure(),
    )
    if err != nil {
        return nil, err
    }
    res, err := sdkresource.New(ctx,
        sdkresource.WithAttributes(semconv.ServiceName("feedback-board")),
    )
    if err != nil {
        return nil, err
    }
    tp := sdktrace.NewTracerProvider(
        sdktrace.WithBatcher(exporter),
        sdktrace.WithResource(res),
    )
    otel.SetTracerProvider(tp)
    return tp, nil
}
