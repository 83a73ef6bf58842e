package tokenizer

// defaultVocabulary lists common English words that GPT-style tokenizers
// encode as a single token. Everything outside this list is priced by
// sub-word pieces.
var defaultVocabulary = []string{
	// articles, pronouns, conjunctions
	"the", "a", "an", "i", "you", "he", "she", "it", "we", "they",
	"me", "him", "her", "us", "them", "my", "your", "his", "its", "our",
	"their", "this", "that", "these", "those", "and", "or", "but", "if",
	"so", "as", "than", "because", "while", "when", "where", "what", "who",
	"which", "how", "why",

	// verbs and auxiliaries
	"is", "are", "was", "were", "be", "been", "being", "am", "do", "does",
	"did", "have", "has", "had", "will", "would", "can", "could", "should",
	"shall", "may", "might", "must", "get", "got", "go", "going", "went",
	"make", "made", "take", "took", "see", "saw", "know", "knew", "think",
	"thought", "say", "said", "want", "need", "use", "used", "work", "call",
	"try", "ask", "feel", "felt", "seem", "leave", "put", "mean", "keep",
	"let", "begin", "start", "show", "talk", "turn", "help", "play", "run",
	"move", "like", "look", "come", "came", "give", "gave", "find", "found",
	"tell", "told",

	// prepositions and particles
	"to", "of", "in", "for", "on", "with", "at", "by", "from", "up", "down",
	"about", "into", "over", "after", "before", "under", "out", "off",
	"not", "no", "yes", "all", "any", "some", "more", "most", "other",
	"such", "only", "own", "same", "just", "also", "very", "too", "then",
	"there", "here", "now", "well", "even", "back", "still", "again",

	// common nouns in daily transcripts
	"time", "day", "week", "year", "people", "person", "way", "thing",
	"man", "woman", "life", "hand", "part", "place", "case", "point",
	"number", "group", "fact", "home", "room", "team", "today", "tomorrow",
	"morning", "night", "meeting", "plan", "idea", "question", "answer",
	"one", "two", "three", "first", "last", "next", "new", "old", "good",
	"great", "little", "big", "right", "left", "long", "high", "low",
	"different", "small", "large", "early", "late", "important",
}
