package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. "development" gets the console encoder.
func New(env string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(env), "development") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
