package summarizer

// stopwords holds English function words plus the filler that pads spoken
// transcripts. Words shorter than three letters are dropped separately.
var stopwords = toSet([]string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by",
	"with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "it's", "this", "that",
	"these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such",
	"into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off",
	"own", "same", "too", "very", "can", "will", "just", "don", "don't", "should", "now",
	"i", "i'm", "i've", "i'd", "i'll", "me", "my", "mine", "we", "we're", "we've", "our", "ours", "us",
	"you", "you're", "your", "yours", "he", "him", "his", "she", "her", "hers", "they", "they're", "them",
	"their", "theirs", "what", "which", "who", "whom", "whose", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "no", "nor", "not", "only",
	"do", "does", "did", "doing", "done", "have", "has", "had", "having", "would", "could", "might",
	"must", "shall", "may", "also", "there", "there's", "here", "that's", "what's", "can't", "won't",
	"didn't", "doesn't", "isn't", "aren't", "wasn't", "weren't", "because", "while", "until", "though",
	"get", "got", "getting", "go", "going", "gonna", "want", "wanna", "said", "say", "says", "one",
	"yeah", "yes", "okay", "ok", "um", "uh", "umm", "hmm", "like", "really", "actually", "basically",
	"kind", "sort", "thing", "things", "stuff", "lot", "lots", "know", "mean", "well", "right", "maybe",
	"something", "anything", "everything", "much", "many", "even", "still", "way", "let", "let's",
})

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopword reports whether word is excluded from term extraction.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
