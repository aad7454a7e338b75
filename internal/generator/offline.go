package generator

import (
	"context"
	"fmt"
	"strings"
)

// OfflineCompleter is a Completer for local development. It never calls a model.
type OfflineCompleter struct{}

func (OfflineCompleter) Complete(_ context.Context, prompt string, intent Intent) (string, error) {
	var sb strings.Builder
	switch intent {
	case IntentSuggestion:
		sb.WriteString("## Suggested details\n\n")
		sb.WriteString("This is an offline draft produced without a language model. ")
		sb.WriteString("Describe the audience you serve, the problems you solve and the outcomes customers can expect. ")
		sb.WriteString("List the key features, how pricing works, and what makes the offer different from alternatives. ")
		sb.WriteString("Close with the single action a visitor should take next.\n\n")
		sb.WriteString("Prompt received:\n\n")
		sb.WriteString(prompt)
	case IntentSection:
		sb.WriteString("<section class=\"generated-section\">\n")
		sb.WriteString("  <p>Offline draft section.</p>\n")
		sb.WriteString("</section>\n")
	default:
		fmt.Fprintf(&sb, "Thanks for your message. (offline reply, %d prompt characters)", len(prompt))
	}
	return sb.String(), nil
}
