package tokens

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEncoder struct{}

func (fakeEncoder) Encode(text string, _ []string, _ []string) []int {
	return make([]int, len(strings.Fields(text)))
}

func newTestCounter(load func(string) (encoder, error)) *Counter {
	c := NewCounter("gpt-4o-mini", slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.load = load
	return c
}

func TestCountUsesEncoder(t *testing.T) {
	loads := 0
	c := newTestCounter(func(string) (encoder, error) {
		loads++
		return fakeEncoder{}, nil
	})
	require.Equal(t, 3, c.Count("sunny in Rome"))
	require.Equal(t, 1, c.Count("rain"))
	require.Equal(t, 1, loads)
}

func TestCountFallsBackToEstimate(t *testing.T) {
	c := newTestCounter(func(string) (encoder, error) {
		return nil, errors.New("offline")
	})
	require.Equal(t, 0, c.Count(""))
	require.Equal(t, 1, c.Count("hi"))
	require.Equal(t, 4, c.Count("weather in Oslo"))
}

func TestWarmLoadsOnce(t *testing.T) {
	loads := 0
	c := newTestCounter(func(string) (encoder, error) {
		loads++
		return fakeEncoder{}, nil
	})
	require.True(t, c.Warm())
	require.Equal(t, 2, c.Count("windy tonight"))
	require.Equal(t, 1, loads)
}

func TestDefaultLoaderWorksOffline(t *testing.T) {
	c := NewCounter("gpt-4o-mini", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.True(t, c.Warm())
	require.Positive(t, c.Count("weather in Oslo"))
}
