package llm

import "fmt"

// Both providers are asked for the same loose output contract: exactly two
// recommendations, each a bolded "Title (Year)" plus a one-line rationale.
// This is a prompt-level request — nothing downstream parses or verifies it.
const formatInstruction = ` 1) One similar movie in the same genre, 2) One movie with similar themes but in a different genre. Format each recommendation as: "**Movie Title (Year)** - Brief description explaining why it's recommended."`

const assistantRole = "You are a movie recommendation assistant with access to current movie information."

// openaiSystemPrompt is sent as the system message for the OpenAI adapter.
const openaiSystemPrompt = assistantRole + " Provide exactly 2 movie recommendations in a clear format, taking into account the most recent context about movies."

// openaiUserPrompt builds the user message for the OpenAI adapter. With a
// search snippet the model is told to treat it as current context.
func openaiUserPrompt(title string, movieInfo string) string {
	var context string
	if movieInfo != "" {
		context = fmt.Sprintf("Based on the movie %q and this current information: %s\n\nGive me 2 movie recommendations:", title, movieInfo)
	} else {
		context = fmt.Sprintf("Give me 2 movie recommendations for someone who liked %q:", title)
	}
	return context + formatInstruction
}

// claudeUserPrompt builds the single user message for the Anthropic adapter.
// Claude takes the assistant role folded into the user turn instead of a
// separate system message.
func claudeUserPrompt(title string, movieInfo string) string {
	var context string
	if movieInfo != "" {
		context = fmt.Sprintf("I enjoyed %q. Here's some current information about it: %s\n\nBased on this context, please provide exactly 2 movie recommendations:", title, movieInfo)
	} else {
		context = fmt.Sprintf("I enjoyed %q. Please provide exactly 2 movie recommendations:", title)
	}
	return assistantRole + " " + context + formatInstruction
}
