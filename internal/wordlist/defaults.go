package wordlist

// defaultWords is the built-in common-English practice set used when no
// words file is present.
var defaultWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "I",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "over", "think", "also", "back",
	"after", "use", "two", "how", "our", "work", "first", "well", "way", "even",
	"new", "want", "because", "any", "these", "give", "day", "most", "us", "thing",
	"man", "find", "part", "eye", "place", "week", "case", "point", "government", "company",
	"number", "group", "problem", "fact", "leave", "while", "mean", "keep", "student", "great",
	"seem", "same", "tell", "begin", "help", "talk", "where", "turn", "start", "might",
	"show", "hear", "play", "run", "move", "live", "believe", "hold", "bring", "happen",
	"must", "write", "provide", "sit", "stand", "lose", "pay", "meet", "include", "continue",
	"set", "learn", "change", "lead", "understand", "watch", "follow", "stop", "create", "speak",
	"read", "allow", "add", "spend", "grow", "open", "walk", "win", "offer", "remember",
	"love", "consider", "appear", "buy", "wait", "serve", "die", "send", "expect", "build",
	"stay", "fall", "cut", "reach", "kill", "remain", "suggest", "raise", "pass", "sell",
	"require", "report", "decide", "pull", "return", "explain", "hope", "develop", "carry", "break",
	"receive", "agree", "support", "hit", "produce", "eat", "cover", "catch", "draw", "choose",
	"cause", "listen", "maybe", "until", "without", "probably", "around", "small", "green", "special",
	"difficult", "available", "likely", "short", "single", "medical", "current", "wrong", "private", "past",
	"foreign", "fine", "common", "poor", "natural", "significant", "similar", "hot", "dead", "central",
	"happy", "serious", "ready", "simple", "left", "physical", "general", "environmental", "financial", "blue",
	"democratic", "dark", "various", "entire", "close", "legal", "religious", "cold", "final", "main",
	"huge", "popular", "traditional", "cultural", "choice", "high", "big", "large", "particular", "tiny",
	"enormous",
}

// Default returns a copy of the built-in word list.
func Default() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}
