package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthFunc adapts a plain function to HealthChecker.
type HealthFunc func(ctx context.Context) bool

func (f HealthFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}
