package manual

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/autointel/ai/mock"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/storage/badger"
)

func TestNewRetriever(t *testing.T) {
	sessionRepo, passageRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		passageRepo.Close()
		sessionRepo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		retriever, err := NewRetriever(passageRepo, provider)
		require.NoError(t, err)
		assert.NotNil(t, retriever)
	})

	t.Run("nil passage repository", func(t *testing.T) {
		_, err := NewRetriever(nil, provider)
		assert.Equal(t, ErrPassageRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewRetriever(passageRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})

	t.Run("invalid top-k", func(t *testing.T) {
		_, err := NewRetriever(passageRepo, provider, WithTopK(0))
		assert.Error(t, err)
	})
}

func TestAnswerEmptyIndex(t *testing.T) {
	sessionRepo, passageRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { passageRepo.Close(); sessionRepo.Close(); backend.Close() }()

	retriever, err := NewRetriever(passageRepo, mock.NewMockProvider())
	require.NoError(t, err)

	answer := retriever.Answer(context.Background(), "what is the tire pressure?")
	assert.Equal(t, NoMatchesMessage, answer)
}

func TestAnswerPreservesFigures(t *testing.T) {
	sessionRepo, passageRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { passageRepo.Close(); sessionRepo.Close(); backend.Close() }()

	ctx := context.Background()

	passage := &core.Passage{
		Source:  "owners-manual.pdf",
		Content: "Recommended cold tire pressure: front 240 kPa (35 psi), rear 230 kPa (33 psi).",
		Vector:  []float32{1, 0, 0},
	}
	_, err = passageRepo.AddPassages(ctx, passage)
	require.NoError(t, err)

	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}
	provider.GetMockGenerator().GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		// The grounding context must carry the figures through verbatim
		for _, figure := range []string{"240 kPa", "35 psi", "230 kPa", "33 psi"} {
			if !strings.Contains(prompt, figure) {
				return "", errors.New("figure missing from prompt: " + figure)
			}
		}
		return "Front tires: 240 kPa (35 psi). Rear tires: 230 kPa (33 psi).", nil
	}

	retriever, err := NewRetriever(passageRepo, provider)
	require.NoError(t, err)

	answer := retriever.Answer(ctx, "What is the recommended tire pressure?")
	assert.Contains(t, answer, "240 kPa")
	assert.Contains(t, answer, "35 psi")
	assert.Contains(t, answer, "230 kPa")
	assert.Contains(t, answer, "33 psi")
}

func TestAnswerSourceTaggedContext(t *testing.T) {
	sessionRepo, passageRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { passageRepo.Close(); sessionRepo.Close(); backend.Close() }()

	ctx := context.Background()

	passages := []*core.Passage{
		{Source: "manual-ch3.txt", Content: "Oil change interval is 10000 km.", Vector: []float32{1, 0}},
		{Source: "manual-ch7.txt", Content: "Coolant capacity is 6.8 liters.", Vector: []float32{0.9, 0.1}},
	}
	_, err = passageRepo.AddPassages(ctx, passages...)
	require.NoError(t, err)

	var captured string
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	provider.GetMockGenerator().GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "ok", nil
	}

	retriever, err := NewRetriever(passageRepo, provider)
	require.NoError(t, err)

	_ = retriever.Answer(ctx, "maintenance intervals?")

	assert.Contains(t, captured, "Source: manual-ch3.txt")
	assert.Contains(t, captured, "Source: manual-ch7.txt")
	assert.Contains(t, captured, "\n---\n")
}

func TestAnswerGenerationFailure(t *testing.T) {
	sessionRepo, passageRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { passageRepo.Close(); sessionRepo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = passageRepo.AddPassages(ctx, &core.Passage{
		Source: "manual", Content: "some passage", Vector: []float32{1},
	})
	require.NoError(t, err)

	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1}, nil
	}
	provider.GetMockGenerator().GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("model unavailable")
	}

	retriever, err := NewRetriever(passageRepo, provider)
	require.NoError(t, err)

	answer := retriever.Answer(ctx, "anything")
	assert.Equal(t, lookupFailedMessage, answer)
}
