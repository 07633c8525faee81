package autointel

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/autointel/ai/mock"
	"github.com/poiesic/autointel/core"
)

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	assistant, err := NewAssistant("",
		WithInMemoryStorage(),
		WithAIProvider(mock.NewMockProvider()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { assistant.Close() })
	return assistant
}

func TestNewAssistant(t *testing.T) {
	t.Run("create with file storage", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "assistant_db")
		assistant, err := NewAssistant(tmpDir, WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, assistant)
		defer assistant.Close()

		assert.NotNil(t, assistant.SessionRepository())
		assert.NotNil(t, assistant.PassageRepository())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

		assistant, err := NewAssistant(tmpFile, WithAIProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, assistant)
	})
}

func TestChatRoundTrip(t *testing.T) {
	assistant := newTestAssistant(t)
	ctx := context.Background()

	sessionID := NewSessionID()
	reply, err := assistant.Chat(ctx, sessionID, "what is the tire pressure?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	// The full turn is checkpointed
	session, err := assistant.SessionRepository().GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, core.RoleUser, session.Messages[0].Role)
	assert.Equal(t, "what is the tire pressure?", session.Messages[0].Content)
	assert.Equal(t, core.RoleAssistant, session.Messages[1].Role)
	assert.Equal(t, reply, session.Messages[1].Content)
}

func TestChatResumesCheckpointedSession(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "resume_db")
	ctx := context.Background()
	sessionID := NewSessionID()

	first, err := NewAssistant(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)

	_, err = first.Chat(ctx, sessionID, "how do I check the oil level?")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// A fresh process picks the conversation back up from disk
	second, err := NewAssistant(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer second.Close()

	_, err = second.Chat(ctx, sessionID, "and the coolant?")
	require.NoError(t, err)

	session, err := second.SessionRepository().GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, session.Messages, 4)
	assert.Equal(t, "how do I check the oil level?", session.Messages[0].Content)
	assert.Equal(t, "and the coolant?", session.Messages[2].Content)
}

func TestChatRequiresSessionID(t *testing.T) {
	assistant := newTestAssistant(t)

	_, err := assistant.Chat(context.Background(), "", "hello")
	assert.Error(t, err)
}

func TestResetSession(t *testing.T) {
	assistant := newTestAssistant(t)
	ctx := context.Background()

	sessionID := NewSessionID()
	_, err := assistant.Chat(ctx, sessionID, "what does the warning light mean?")
	require.NoError(t, err)

	require.NoError(t, assistant.ResetSession(ctx, sessionID))

	_, err = assistant.SessionRepository().GetSession(ctx, sessionID)
	assert.Error(t, err)
}

func TestChatSerializesTurnsPerSession(t *testing.T) {
	assistant := newTestAssistant(t)
	ctx := context.Background()
	sessionID := NewSessionID()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := assistant.Chat(ctx, sessionID, "what oil grade should I use?")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	session, err := assistant.SessionRepository().GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, session.Messages, 16, "every turn lands exactly once")
}

func TestIngestionPipelineFactory(t *testing.T) {
	assistant := newTestAssistant(t)

	pipeline, err := assistant.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	stored, err := pipeline.IngestDocument(context.Background(),
		"manual.txt", "Recommended cold tire pressure: 240 kPa front, 230 kPa rear.")
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	count, err := assistant.PassageRepository().CountPassages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
