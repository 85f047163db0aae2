package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfulness/chainfulness-mcp/internal/config"
)

func TestDefaultSteeringPrompt_Embedded(t *testing.T) {
	prompt := DefaultSteeringPrompt()
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "wallet")
}

func TestNewSteeringDecorator_BlockFormat(t *testing.T) {
	decorate := NewSteeringDecorator("the prompt")
	out := decorate(`{"analysis": {}}`)

	assert.True(t, strings.HasPrefix(out, "<<SYSTEM_CONTEXT>>\nthe prompt\n<<END_SYSTEM_CONTEXT>>\n\n"))
	assert.Contains(t, out, "<<DATA>>\n{\"analysis\": {}}\n<<END_DATA>>")
	assert.True(t, strings.HasSuffix(out, "<<GENERATED_QUESTIONS>>"))
}

func TestSteeringFromConfig_Default(t *testing.T) {
	decorate, err := SteeringFromConfig(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, decorate)
	assert.Contains(t, decorate("payload"), DefaultSteeringPrompt())
}

func TestSteeringFromConfig_Disabled(t *testing.T) {
	decorate, err := SteeringFromConfig(&config.Config{DisableSteering: true})
	require.NoError(t, err)
	assert.Nil(t, decorate)
}

func TestSteeringFromConfig_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("custom prompt"), 0o644))

	decorate, err := SteeringFromConfig(&config.Config{SteeringPromptFile: path})
	require.NoError(t, err)
	require.NotNil(t, decorate)

	out := decorate("payload")
	assert.Contains(t, out, "custom prompt")
	assert.NotContains(t, out, DefaultSteeringPrompt())
}

func TestSteeringFromConfig_MissingFile(t *testing.T) {
	_, err := SteeringFromConfig(&config.Config{
		SteeringPromptFile: filepath.Join(t.TempDir(), "missing.txt"),
	})
	assert.Error(t, err)
}
