package polyedit

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestRun(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session, err := Run(strings.NewReader("insert 3 100 200\nprint\n"), &out, logger)
	require.NoError(t, err)

	assert.Len(t, session.Snapshot().Vertices, 5)
	assert.Contains(t, out.String(), "polygon 5 vertices")
	assert.Contains(t, out.String(), "vertical")
	assert.Contains(t, out.String(), "length=200")
}
