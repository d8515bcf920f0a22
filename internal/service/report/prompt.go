package report

import (
	"fmt"
	"strings"

	"roomreport/internal/model/report"
)

// fallbackSystemPrompt is used when the store holds no active system-scope
// instruction.
const fallbackSystemPrompt = "You are an AI assistant that summarizes chat conversations. Generate a concise, well-organized report based on the messages provided."

// BuildPrompt concatenates the instruction layers and the transcript in a
// fixed order: system instruction, room addendum, language directive,
// conversation section. No part is truncated here; the message batch is
// already capped at retrieval time.
func BuildPrompt(systemPrompt, roomPrompt string, language report.Language, periodLabel, transcript string, messageCount int) string {
	parts := make([]string, 0, 4)

	if systemPrompt != "" {
		parts = append(parts, systemPrompt)
	} else {
		parts = append(parts, fallbackSystemPrompt)
	}

	if roomPrompt != "" {
		parts = append(parts, fmt.Sprintf("\nAdditional context for this room:\n%s", roomPrompt))
	}

	if language != report.LanguageEnglish {
		name := language.Name()
		parts = append(parts, fmt.Sprintf("\nIMPORTANT: Write the entire report in %s. All headings, content, and analysis must be in %s.", name, name))
	}

	periodContext := fmt.Sprintf("Report period: %s", periodLabel)
	parts = append(parts, fmt.Sprintf("\n\n--- CONVERSATION (%d messages from %s) ---\n\n%s", messageCount, periodContext, transcript))

	return strings.Join(parts, "\n")
}
