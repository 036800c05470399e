package metrics

// TokenUsage reports LLM token counts spent on one reply.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}

// NewTokenUsage builds a usage record. A zero total is derived from the parts
// since some providers only report prompt and completion counts.
func NewTokenUsage(prompt, completion, total int) TokenUsage {
	if total == 0 {
		total = prompt + completion
	}
	return TokenUsage{PromptTokens: prompt, CompletionTokens: completion, TotalTokens: total}
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}
