package language

import "github.com/lingobridge/translator-backend/internal/domain"

// profiles is the built-in language table. Grammar flags drive the
// reordering and output-shaping stages; Script drives transliteration.
var profiles = []domain.LanguageProfile{
	// Germanic
	{Code: "en", Name: "english", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "de", Name: "german", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "nl", Name: "dutch", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sv", Name: "swedish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "no", Name: "norwegian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "da", Name: "danish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "is", Name: "icelandic", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},

	// Romance
	{Code: "es", Name: "spanish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "fr", Name: "french", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "it", Name: "italian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "pt", Name: "portuguese", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ro", Name: "romanian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, HasCases: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ca", Name: "catalan", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "gl", Name: "galician", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},

	// Slavic
	{Code: "ru", Name: "russian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "uk", Name: "ukrainian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "be", Name: "belarusian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "bg", Name: "bulgarian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sr", Name: "serbian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "mk", Name: "macedonian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "pl", Name: "polish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "cs", Name: "czech", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sk", Name: "slovak", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sl", Name: "slovenian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "hr", Name: "croatian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},

	// Baltic, Hellenic, Celtic, other European
	{Code: "lt", Name: "lithuanian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "lv", Name: "latvian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "el", Name: "greek", Script: domain.ScriptGreek, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sq", Name: "albanian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, HasCases: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "cy", Name: "welsh", Script: domain.ScriptLatin, WordOrder: domain.WordOrderVSO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ga", Name: "irish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderVSO, HasGender: true, HasArticles: true, HasCases: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "eu", Name: "basque", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "mt", Name: "maltese", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveAfter},

	// Uralic
	{Code: "fi", Name: "finnish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasCases: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "et", Name: "estonian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasCases: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "hu", Name: "hungarian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasArticles: true, HasCases: true, UsesPostpositions: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},

	// Indo-Aryan
	{Code: "hi", Name: "hindi", Script: domain.ScriptDevanagari, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "mr", Name: "marathi", Script: domain.ScriptDevanagari, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ne", Name: "nepali", Script: domain.ScriptDevanagari, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "bn", Name: "bengali", Script: domain.ScriptBengali, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "pa", Name: "punjabi", Script: domain.ScriptGurmukhi, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "gu", Name: "gujarati", Script: domain.ScriptGujarati, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "or", Name: "odia", Script: domain.ScriptOriya, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "si", Name: "sinhala", Script: domain.ScriptSinhala, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ur", Name: "urdu", Script: domain.ScriptArabic, RTL: true, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},

	// Dravidian
	{Code: "ta", Name: "tamil", Script: domain.ScriptTamil, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "te", Name: "telugu", Script: domain.ScriptTelugu, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "kn", Name: "kannada", Script: domain.ScriptKannada, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ml", Name: "malayalam", Script: domain.ScriptMalayalam, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore},

	// Iranian, Semitic, Turkic, Caucasian
	{Code: "fa", Name: "persian", Script: domain.ScriptArabic, RTL: true, WordOrder: domain.WordOrderSOV, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ps", Name: "pashto", Script: domain.ScriptArabic, RTL: true, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ar", Name: "arabic", Script: domain.ScriptArabic, RTL: true, WordOrder: domain.WordOrderVSO, HasGender: true, HasArticles: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "he", Name: "hebrew", Script: domain.ScriptHebrew, RTL: true, WordOrder: domain.WordOrderSVO, HasGender: true, HasArticles: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "tr", Name: "turkish", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "az", Name: "azerbaijani", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "kk", Name: "kazakh", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "uz", Name: "uzbek", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ka", Name: "georgian", Script: domain.ScriptGeorgian, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "hy", Name: "armenian", Script: domain.ScriptArmenian, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},

	// East and Southeast Asian
	{Code: "zh", Name: "chinese", Script: domain.ScriptHan, WordOrder: domain.WordOrderSVO, SubjectDropping: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ja", Name: "japanese", Script: domain.ScriptHiragana, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore, SentenceEndParticle: "です"},
	{Code: "ko", Name: "korean", Script: domain.ScriptHangul, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveBefore, SentenceEndParticle: "요"},
	{Code: "th", Name: "thai", Script: domain.ScriptThai, WordOrder: domain.WordOrderSVO, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveAfter, SentenceEndParticle: "ครับ"},
	{Code: "lo", Name: "lao", Script: domain.ScriptLao, WordOrder: domain.WordOrderSVO, SubjectDropping: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "vi", Name: "vietnamese", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, SubjectDropping: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "id", Name: "indonesian", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ms", Name: "malay", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "fil", Name: "filipino", Script: domain.ScriptLatin, WordOrder: domain.WordOrderVSO, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "km", Name: "khmer", Script: domain.ScriptKhmer, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "my", Name: "burmese", Script: domain.ScriptMyanmar, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "bo", Name: "tibetan", Script: domain.ScriptTibetan, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasHonorific: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "mn", Name: "mongolian", Script: domain.ScriptCyrillic, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},

	// African
	{Code: "am", Name: "amharic", Script: domain.ScriptEthiopic, WordOrder: domain.WordOrderSOV, HasGender: true, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "ti", Name: "tigrinya", Script: domain.ScriptEthiopic, WordOrder: domain.WordOrderSOV, HasGender: true, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "sw", Name: "swahili", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "so", Name: "somali", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ha", Name: "hausa", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, HasGender: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "yo", Name: "yoruba", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "ig", Name: "igbo", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "zu", Name: "zulu", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter},

	// Americas
	{Code: "chr", Name: "cherokee", Script: domain.ScriptCherokee, WordOrder: domain.WordOrderOther, AdjectivePosition: domain.AdjectiveBefore},
	{Code: "iu", Name: "inuktitut", Script: domain.ScriptCanadian, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, AdjectivePosition: domain.AdjectiveAfter},
	{Code: "qu", Name: "quechua", Script: domain.ScriptLatin, WordOrder: domain.WordOrderSOV, UsesPostpositions: true, HasCases: true, AdjectivePosition: domain.AdjectiveBefore},
}

// aliases maps common alternate names and exonyms to canonical names.
// ISO codes resolve separately through the byCode index.
var aliases = map[string]string{
	"farsi":          "persian",
	"dari":           "persian",
	"mandarin":       "chinese",
	"cantonese":      "chinese",
	"simplified chinese":  "chinese",
	"traditional chinese": "chinese",
	"castilian":      "spanish",
	"tagalog":        "filipino",
	"pilipino":       "filipino",
	"bangla":         "bengali",
	"oriya":          "odia",
	"panjabi":        "punjabi",
	"myanmar":        "burmese",
	"bahasa":         "indonesian",
	"bahasa indonesia": "indonesian",
	"bahasa melayu":  "malay",
	"flemish":        "dutch",
	"brazilian portuguese": "portuguese",
	"serbo-croatian": "serbian",
	"slovene":        "slovenian",
	"kirghiz":        "kyrgyz",
	"greek (modern)": "greek",
	"norsk":          "norwegian",
	"nynorsk":        "norwegian",
	"bokmal":         "norwegian",
	"siamese":        "thai",
	"khmer (cambodian)": "khmer",
	"cambodian":      "khmer",
	"eskimo":         "inuktitut",
	"gaelic":         "irish",
	"valencian":      "catalan",
	"moldovan":       "romanian",
}
