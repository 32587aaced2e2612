package services

import (
	"fmt"
	"strings"
)

// OfflineFallback builds a canned reply for the given prompt. It is used
// whenever no upstream provider can be reached: missing credential, transport
// failure, error status, or an unparseable response body. Keyword matching on
// the lower-cased prompt picks one of five templates; every template embeds
// the original prompt so the user sees their question acknowledged.
func OfflineFallback(prompt string) string {
	lower := strings.ToLower(prompt)

	switch {
	case hasWord(lower, "hello", "hi", "hey", "greetings"):
		return fmt.Sprintf("Hello! I received your message: %q. I'm currently running in offline mode, but I'm happy to chat. What would you like to talk about?", prompt)
	case containsAny(lower, "code", "function", "bug", "debug", "error", "program"):
		return fmt.Sprintf("I can see you're asking about a coding topic: %q. I'm in offline mode right now, so I can't analyze code in depth, but once a model connection is available I can review logic, spot bugs, and suggest improvements.", prompt)
	case containsAny(lower, "what", "how", "why", "explain", "describe"):
		return fmt.Sprintf("That's a good question: %q. I'm answering in offline mode, so this is a placeholder rather than a researched explanation. Please try again once a model connection is configured.", prompt)
	case containsAny(lower, "help", "assist", "support"):
		return fmt.Sprintf("I'd like to help with: %q. I'm in offline mode at the moment, which limits what I can do, but I'm still here. Could you describe what you need in more detail?", prompt)
	default:
		return fmt.Sprintf("I received your message: %q. I'm currently in offline mode and can't reach a language model, so this is a canned response. Your request was understood and will work normally once a provider key is configured.", prompt)
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// hasWord matches whole words only, so "hi" does not fire on "this".
func hasWord(s string, words ...string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
