package domain

// TranscriptionSource says which tier produced a transcription.
type TranscriptionSource string

const (
	SourceDictionary TranscriptionSource = "dictionary"
	SourceFallback   TranscriptionSource = "fallback"
)

// G2PResult is the transcription of one input word. It is built per request
// and never mutated afterwards.
type G2PResult struct {
	Word     string              `json:"word"`
	Phonemes []string            `json:"phonemes"`
	Source   TranscriptionSource `json:"source"`
}

// Segmentation is the result of splitting an IPA string into phonemes.
// Unknown counts the characters that matched no inventory symbol.
type Segmentation struct {
	Phonemes []string `json:"phonemes"`
	Unknown  int      `json:"unknown"`
}
