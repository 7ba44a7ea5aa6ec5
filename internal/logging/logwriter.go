package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter sends the output of the chi request logger to logrus, on debug level.
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprint(v...))
	if msg == "" {
		return
	}
	logrus.Debug(msg)
}
