package tokens

import (
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

const fallbackEncoding = "cl100k_base"

type encoder interface {
	Encode(text string, allowedSpecial []string, disallowedSpecial []string) []int
}

// offlineBPE points tiktoken at the BPE ranks embedded in the binary so no
// encoding is ever downloaded.
var offlineBPE sync.Once

// Counter counts model tokens with tiktoken. The encoding is loaded by Warm or
// on first use; if it cannot be loaded every count falls back to a rune based
// estimate.
type Counter struct {
	model  string
	logger *slog.Logger

	once sync.Once
	enc  encoder
	load func(model string) (encoder, error)
}

// NewCounter returns a counter for model.
func NewCounter(model string, logger *slog.Logger) *Counter {
	offlineBPE.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
	})
	return &Counter{
		model:  model,
		logger: logger.With("component", "tokens.counter"),
		load:   loadEncoding,
	}
}

// Warm loads the encoding up front so the first chat request does not pay for
// it. It reports whether a real tokenizer is available.
func (c *Counter) Warm() bool {
	c.once.Do(func() {
		enc, err := c.load(c.model)
		if err != nil {
			c.logger.Warn("tiktoken unavailable, estimating tokens", "model", c.model, "error", err)
			return
		}
		c.enc = enc
	})
	return c.enc != nil
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	if !c.Warm() {
		return estimate(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

func loadEncoding(model string) (encoder, error) {
	if model != "" {
		if enc, err := tiktoken.EncodingForModel(model); err == nil {
			return enc, nil
		}
	}
	enc, err := tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

// estimate assumes roughly four characters per token.
func estimate(text string) int {
	n := (utf8.RuneCountInString(text) + 3) / 4
	if n == 0 {
		return 1
	}
	return n
}
