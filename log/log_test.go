package log

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLogger(t *testing.T) {
	entry := L.WithField("document", "system_config/app_version")

	tests := []struct {
		name string
		ctx  context.Context
		want *logrus.Entry
	}{
		{name: "falls back to L", ctx: context.Background(), want: L},
		{name: "uses context logger", ctx: WithLogger(context.Background(), entry), want: entry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := G(tt.ctx); got != tt.want {
				t.Errorf("GetLogger() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	defer Configure(os.Stderr, false)

	var buf bytes.Buffer

	if got := Configure(&buf, false); got != L {
		t.Errorf("Configure() = %v, want L", got)
	}
	L.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output without verbose: %q", buf.String())
	}

	Configure(&buf, true)
	G(context.Background()).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output with verbose = %q, want it to contain %q", buf.String(), "shown")
	}
}
