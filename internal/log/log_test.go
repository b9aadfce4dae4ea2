package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/CZERTAINLY/gh-trs/internal/log"
	"github.com/stretchr/testify/require"
)

func TestContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := log.New(&buf, log.FormatJSON, false)
	require.NoError(t, err)

	ctx := log.ContextAttrs(context.Background(), slog.String("cmd", "generate"))
	a := log.ContextAttrs(ctx, slog.String("config", "a.yaml"))
	b := log.ContextAttrs(ctx, slog.String("config", "b.yaml"))

	logger.InfoContext(a, "loaded")
	logger.InfoContext(b, "loaded")
	logger.DebugContext(a, "not printed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var recA, recB map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &recA))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &recB))
	require.Equal(t, "generate", recA["cmd"])
	require.Equal(t, "a.yaml", recA["config"])
	require.Equal(t, "b.yaml", recB["config"])
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := log.New(&buf, log.FormatText, true)
	require.NoError(t, err)
	logger.With("owner", "octo-org").Debug("debug enabled")
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "owner=octo-org")

	_, err = log.New(&buf, "xml", false)
	require.Error(t, err)
}
