package optimizer

// Keyword tables live here as data so bands, topics, and summarization
// filters can be tested and replaced without touching control flow.

// summaryKeywords marks sentences worth keeping under moderate
// summarization.
var summaryKeywords = []string{
	"decided", "decision", "deadline", "action", "priority", "important",
	"agreed", "meeting", "plan", "schedule", "task", "urgent", "critical",
	"remember", "note", "conclusion", "result", "follow up", "next step",
}

// aggressiveKeywords is the smaller, higher-priority list used by
// aggressive summarization.
var aggressiveKeywords = []string{
	"decided", "decision", "deadline", "urgent", "critical", "action",
	"agreed", "conclusion",
}

// highPriorityKeywords promote an entry to the high band regardless of
// its length.
var highPriorityKeywords = []string{
	"meeting", "deadline", "decision", "urgent", "important", "critical",
	"action", "agreed", "presentation", "interview",
}

// mediumPriorityKeywords promote an entry to at least the medium band.
var mediumPriorityKeywords = []string{
	"discussion", "discussed", "feedback", "question", "review", "update",
	"plan", "idea", "suggestion",
}

// topicKeywords maps a topic tag to the words that signal it. An entry may
// match zero or several topics.
var topicKeywords = map[string][]string{
	"work":          {"meeting", "project", "deadline", "client", "presentation", "report", "email", "office"},
	"personal":      {"family", "friend", "home", "weekend", "birthday", "kids", "wife", "husband"},
	"health":        {"doctor", "exercise", "workout", "gym", "sleep", "medication", "appointment", "diet"},
	"technology":    {"code", "software", "computer", "app", "website", "server", "api", "bug"},
	"travel":        {"flight", "trip", "hotel", "airport", "vacation", "booking", "train", "drive"},
	"food":          {"breakfast", "lunch", "dinner", "restaurant", "recipe", "coffee", "cooking"},
	"entertainment": {"movie", "music", "game", "show", "concert", "book", "podcast"},
}

// topicOrder fixes the iteration order over topicKeywords so detected
// topic tags are deterministic.
var topicOrder = []string{
	"work", "personal", "health", "technology", "travel", "food", "entertainment",
}
