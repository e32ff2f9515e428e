package domain

// Method identifies which pipeline path produced a translation.
type Method string

const (
	MethodPassthrough    Method = "passthrough"
	MethodDictionary     Method = "dictionary-lookup"
	MethodIdiom          Method = "idiom-replacement"
	MethodReordered      Method = "reordered"
	MethodDisambiguated  Method = "context-disambiguated"
	MethodPostProcessed  Method = "post-processed"
	MethodFallback       Method = "fallback"
	MethodTransliterated Method = "transliteration"
)

func (m Method) String() string { return string(m) }

// CorrectionType classifies a pipeline correction for the audit trail.
type CorrectionType string

const (
	CorrectionIdiom     CorrectionType = "idiom"
	CorrectionWordOrder CorrectionType = "word-order"
	CorrectionWordSense CorrectionType = "word-sense"
	CorrectionGrammar   CorrectionType = "grammar"
)

// CorrectionApplied records a single transformation a stage applied to the
// text. It is an audit trail only; no stage branches on past corrections.
type CorrectionApplied struct {
	Type      CorrectionType `json:"type"`
	Original  string         `json:"original"`
	Corrected string         `json:"corrected"`
	Reason    string         `json:"reason"`
}

// TranslationResult is the full outcome of one translate call.
type TranslationResult struct {
	Text             string              `json:"text"`
	OriginalText     string              `json:"original_text"`
	Source           string              `json:"source"`
	Target           string              `json:"target"`
	Method           Method              `json:"method"`
	Confidence       float64             `json:"confidence"`
	IsTranslated     bool                `json:"is_translated"`
	Corrections      []CorrectionApplied `json:"corrections,omitempty"`
	Tokens           []Token             `json:"-"`
	WasReordered     bool                `json:"was_reordered"`
	WasDisambiguated bool                `json:"was_disambiguated"`
	IdiomsFound      []string            `json:"idioms_found,omitempty"`
	UnknownWords     []string            `json:"unknown_words,omitempty"`
	FallbackUsed     bool                `json:"fallback_used"`
}

// ChatTranslation is the three-view result of a chat translate call:
// what the sender sees, the English pivot, and what the receiver sees.
type ChatTranslation struct {
	SenderView   string              `json:"sender_view"`
	ReceiverView string              `json:"receiver_view"`
	EnglishCore  string              `json:"english_core"`
	Corrections  []CorrectionApplied `json:"corrections,omitempty"`
	Confidence   float64             `json:"confidence"`
	Method       Method              `json:"method"`
}

// ClampConfidence bounds a confidence score to [0, 1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
