package translator

import (
	"fmt"
	"strings"
)

// BilingualSystemPrompt builds the fixed system prompt sent with every
// batch. The output contract mirrors what the batch parser accepts: an
// indexed original line followed by its translation, either re-indexed
// with the same number or as a bare line directly underneath.
func BilingualSystemPrompt(sourceLanguage, targetLanguage string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a professional subtitle translator. Translate video subtitles from " +
		sourceLanguage + " to " + targetLanguage + ".\n\n")

	prompt.WriteString("=== INPUT FORMAT ===\n")
	prompt.WriteString("Each input line is \"<number>: <subtitle text>\".\n\n")

	prompt.WriteString("=== OUTPUT FORMAT ===\n")
	prompt.WriteString("For every input line output exactly two lines:\n")
	prompt.WriteString(fmt.Sprintf("1. the original %s text, prefixed with its number\n", sourceLanguage))
	prompt.WriteString(fmt.Sprintf("2. the %s translation, prefixed with the same number\n\n", targetLanguage))

	prompt.WriteString("=== RULES ===\n")
	prompt.WriteString("1. Keep every number exactly as given; never renumber, drop or reorder lines\n")
	prompt.WriteString("2. Translate meaning naturally, keeping technical terms accurate\n")
	prompt.WriteString("3. Keep each translated line short enough to read on screen\n")
	prompt.WriteString("4. Return ONLY the numbered lines, no explanations or headers\n")

	return prompt.String()
}
