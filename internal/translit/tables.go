package translit

import "github.com/lingobridge/translator-backend/internal/domain"

// scriptTables holds the phonetic rule tables per script. Tables are compiled
// (sorted longest-first) at Transliterator construction.
//
// Abugida scripts (Devanagari and relatives) carry two vowel forms: the
// independent letter and the dependent sign written after a consonant; the
// bare "a" is the consonant's inherent vowel and produces no sign.
var scriptTables = map[domain.Script]scriptRules{
	domain.ScriptDevanagari: {
		abugida: true,
		consonants: []rule{
			{"chh", "छ"}, {"ksh", "क्ष"},
			{"kh", "ख"}, {"gh", "घ"}, {"ch", "च"}, {"jh", "झ"},
			{"th", "थ"}, {"dh", "ध"}, {"ph", "फ"}, {"bh", "भ"},
			{"sh", "श"}, {"gy", "ज्ञ"},
			{"k", "क"}, {"g", "ग"}, {"j", "ज"}, {"t", "त"}, {"d", "द"},
			{"n", "न"}, {"p", "प"}, {"b", "ब"}, {"m", "म"}, {"y", "य"},
			{"r", "र"}, {"l", "ल"}, {"v", "व"}, {"w", "व"}, {"s", "स"},
			{"h", "ह"}, {"f", "फ़"}, {"z", "ज़"}, {"q", "क़"}, {"x", "क्स"}, {"c", "क"},
		},
		vowels: []vowelRule{
			{"aa", "आ", "ा"}, {"ai", "ऐ", "ै"}, {"au", "औ", "ौ"},
			{"ee", "ई", "ी"}, {"ii", "ई", "ी"}, {"oo", "ऊ", "ू"}, {"uu", "ऊ", "ू"},
			{"a", "अ", ""}, {"i", "इ", "ि"}, {"u", "उ", "ु"},
			{"e", "ए", "े"}, {"o", "ओ", "ो"},
		},
	},

	domain.ScriptCyrillic: {
		consonants: []rule{
			{"shch", "щ"}, {"sch", "щ"},
			{"zh", "ж"}, {"kh", "х"}, {"ts", "ц"}, {"ch", "ч"}, {"sh", "ш"},
			{"b", "б"}, {"v", "в"}, {"g", "г"}, {"d", "д"},
			{"z", "з"}, {"k", "к"}, {"l", "л"}, {"m", "м"}, {"n", "н"},
			{"p", "п"}, {"r", "р"}, {"s", "с"}, {"t", "т"}, {"f", "ф"},
			{"h", "х"}, {"c", "к"}, {"w", "в"}, {"x", "кс"}, {"j", "дж"}, {"q", "к"},
		},
		// Single-letter vowels first so the reverse table prefers е→e over е→ye.
		vowels: []vowelRule{
			{"a", "а", "а"}, {"e", "е", "е"}, {"i", "и", "и"},
			{"o", "о", "о"}, {"u", "у", "у"}, {"y", "ы", "ы"},
			{"yo", "ё", "ё"}, {"yu", "ю", "ю"}, {"ya", "я", "я"}, {"ye", "е", "е"},
		},
	},

	domain.ScriptGreek: {
		consonants: []rule{
			{"th", "θ"}, {"ph", "φ"}, {"ch", "χ"}, {"kh", "χ"}, {"ps", "ψ"}, {"ks", "ξ"},
			{"b", "μπ"}, {"v", "β"}, {"g", "γ"}, {"d", "δ"}, {"z", "ζ"},
			{"k", "κ"}, {"l", "λ"}, {"m", "μ"}, {"n", "ν"}, {"p", "π"},
			{"r", "ρ"}, {"s", "σ"}, {"t", "τ"}, {"f", "φ"}, {"x", "ξ"},
			{"h", "χ"}, {"c", "κ"}, {"w", "ου"}, {"j", "τζ"}, {"q", "κ"},
		},
		vowels: []vowelRule{
			{"ou", "ου", "ου"}, {"ai", "αι", "αι"}, {"ei", "ει", "ει"},
			{"a", "α", "α"}, {"e", "ε", "ε"}, {"i", "ι", "ι"},
			{"o", "ο", "ο"}, {"u", "υ", "υ"}, {"y", "υ", "υ"},
		},
	},

	domain.ScriptArabic: {
		consonants: []rule{
			{"kh", "خ"}, {"gh", "غ"}, {"sh", "ش"}, {"th", "ث"}, {"dh", "ذ"},
			{"b", "ب"}, {"t", "ت"}, {"j", "ج"}, {"d", "د"}, {"r", "ر"},
			{"z", "ز"}, {"s", "س"}, {"f", "ف"}, {"q", "ق"}, {"k", "ك"},
			{"l", "ل"}, {"m", "م"}, {"n", "ن"}, {"h", "ه"}, {"w", "و"},
			{"y", "ي"}, {"p", "ب"}, {"v", "ف"}, {"g", "ج"}, {"c", "ك"}, {"x", "كس"},
		},
		vowels: []vowelRule{
			{"aa", "ا", "ا"}, {"ee", "ي", "ي"}, {"ii", "ي", "ي"},
			{"oo", "و", "و"}, {"uu", "و", "و"},
			{"a", "ا", "ا"}, {"e", "ي", "ي"}, {"i", "ي", "ي"},
			{"o", "و", "و"}, {"u", "و", "و"},
		},
	},

	domain.ScriptHebrew: {
		consonants: []rule{
			{"sh", "ש"}, {"ch", "ח"}, {"kh", "ח"}, {"ts", "צ"}, {"tz", "צ"},
			{"b", "ב"}, {"v", "ב"}, {"g", "ג"}, {"d", "ד"}, {"h", "ה"},
			{"z", "ז"}, {"t", "ט"}, {"y", "י"}, {"k", "כ"}, {"l", "ל"},
			{"m", "מ"}, {"n", "נ"}, {"s", "ס"}, {"p", "פ"}, {"f", "פ"},
			{"q", "ק"}, {"r", "ר"}, {"w", "ו"}, {"j", "ג'"}, {"c", "כ"}, {"x", "קס"},
		},
		vowels: []vowelRule{
			{"a", "א", "א"}, {"e", "א", "א"}, {"i", "י", "י"},
			{"o", "ו", "ו"}, {"u", "ו", "ו"},
		},
	},

	domain.ScriptGeorgian: {
		consonants: []rule{
			{"zh", "ჟ"}, {"kh", "ხ"}, {"gh", "ღ"}, {"sh", "შ"}, {"ch", "ჩ"},
			{"ts", "ც"}, {"dz", "ძ"},
			{"b", "ბ"}, {"g", "გ"}, {"d", "დ"}, {"v", "ვ"}, {"z", "ზ"},
			{"t", "თ"}, {"k", "კ"}, {"l", "ლ"}, {"m", "მ"}, {"n", "ნ"},
			{"p", "პ"}, {"r", "რ"}, {"s", "ს"}, {"f", "ფ"}, {"q", "ყ"},
			{"h", "ჰ"}, {"j", "ჯ"}, {"c", "კ"}, {"w", "ვ"}, {"y", "ი"}, {"x", "ქს"},
		},
		vowels: []vowelRule{
			{"a", "ა", "ა"}, {"e", "ე", "ე"}, {"i", "ი", "ი"},
			{"o", "ო", "ო"}, {"u", "უ", "უ"},
		},
	},
}
