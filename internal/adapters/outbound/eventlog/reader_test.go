package eventlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/plugval/internal/adapters/outbound/eventlog"
	"github.com/openkraft/plugval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_ReadsAllKinds(t *testing.T) {
	path := writeEvents(t, `# recorded build
{"kind":"plugin","plugin":{"group":"g","artifact":"a","version":"1.0"},"issue":"issue1"}

{"kind":"task","plugin":{"group":"g","artifact":"a","version":"1.0"},"task":{"goal":"g:a:1.0:run","implementation":"x.RunMojo"},"declaration":"pom.xml @ line 3","occurrence":"g:m:1","issue":"issue2"}
{"kind":"plugin","plugin":{"group":"g","artifact":"b","version":"2.0"},"declared_at":{"model_id":"g:parent:1","location":"/repo/pom.xml","line":12},"module":{"group":"g","artifact":"m","version":"1","file":"/repo/m/pom.xml"},"issue":"issue3"}
`)

	events, err := eventlog.New().Read(path)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, domain.EventPluginIssue, events[0].Kind)
	assert.Equal(t, "g:a:1.0", events[0].Plugin.Key())

	assert.Equal(t, domain.EventTaskIssue, events[1].Kind)
	require.NotNil(t, events[1].Task)
	assert.Equal(t, "g:a:1.0:run (x.RunMojo)", events[1].Task.Key())
	assert.Equal(t, "pom.xml @ line 3", events[1].Declaration)

	require.NotNil(t, events[2].DeclaredAt)
	assert.Equal(t, 12, events[2].DeclaredAt.Line)
	require.NotNil(t, events[2].Module)
	assert.Equal(t, "/repo/m/pom.xml", events[2].Module.File)
}

func TestReader_MalformedLineReportsLineNumber(t *testing.T) {
	path := writeEvents(t, `{"kind":"plugin","plugin":{"artifact":"a"},"issue":"ok"}
{not json
`)
	_, err := eventlog.New().Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}

func TestReader_UnknownFieldRejected(t *testing.T) {
	path := writeEvents(t, `{"kind":"plugin","plugin":{"artifact":"a"},"issue":"ok","severity":"high"}`)
	_, err := eventlog.New().Read(path)
	assert.Error(t, err)
}

func TestReader_InvalidEventRejected(t *testing.T) {
	path := writeEvents(t, `{"kind":"lifecycle","plugin":{"artifact":"a"},"issue":"ok"}`)
	_, err := eventlog.New().Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestReader_MissingFile(t *testing.T) {
	_, err := eventlog.New().Read(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}

func TestReader_EmptyFile(t *testing.T) {
	events, err := eventlog.New().Read(writeEvents(t, ""))
	require.NoError(t, err)
	assert.Empty(t, events)
}
