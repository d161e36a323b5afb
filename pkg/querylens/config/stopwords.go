package config

// defaultStopwords holds the built-in stopword lists, keyed by
// language. Languages without an entry rely entirely on configured
// stopwords. Lists stay deliberately small: they cover the function
// words that dominate search queries, not every low-information term.
var defaultStopwords = map[string][]string{
	"english": {
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"it", "its", "this", "that", "these", "those", "from",
		"up", "down", "over", "under", "again", "further", "than",
		"so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off",
		"own", "same", "too", "very", "can", "will", "just", "not",
		"no", "nor", "do", "does", "did", "doing", "have", "has",
		"had", "having", "i", "you", "he", "she", "we", "they",
		"me", "him", "her", "us", "them", "my", "your", "his",
		"their", "our", "all", "any", "both", "each", "few", "more",
		"most", "other", "some", "only", "now",
	},
	"spanish": {
		"el", "la", "los", "las", "un", "una", "unos", "unas",
		"y", "o", "de", "del", "en", "a", "al", "por", "para",
		"con", "sin", "que", "es", "son", "como", "se", "su", "lo",
	},
	"french": {
		"le", "la", "les", "un", "une", "des", "du", "de", "et",
		"ou", "en", "au", "aux", "pour", "par", "avec", "sans",
		"que", "qui", "est", "sont", "ce", "cette", "ces", "se",
	},
}
