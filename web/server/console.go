package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RequestLogger implements core.Logger by tagging renderer output with the
// render it belongs to
type RequestLogger struct {
	renderID string
	output   *log.Logger
}

// NewRequestLogger creates a logger for a specific render that writes
// through the standard logger
func NewRequestLogger(renderID string) core.Logger {
	return &RequestLogger{
		renderID: renderID,
		output:   log.Default(),
	}
}

// Printf implements core.Logger interface
func (rl *RequestLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.output.Printf("[%s] %s", rl.renderID, message)
}
