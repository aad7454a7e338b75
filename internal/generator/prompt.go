package generator

import (
	"fmt"
	"strings"

	"ai-website-builder/internal/domain"
)

// SnippetLength is how many characters of each previous section go into the prompt context.
const SnippetLength = 200

// SiteInfo is the website metadata a prompt is built from.
type SiteInfo struct {
	Name         string
	Description  string
	OtherDetails string
}

// SiteInfoOf extracts prompt metadata from a website.
func SiteInfoOf(w *domain.Website) SiteInfo {
	return SiteInfo{
		Name:         w.Name,
		Description:  w.Description,
		OtherDetails: w.OtherDetails,
	}
}

const sectionInstructions = `Generate the complete markup for the %q section of this website.
Requirements:
1. Output a single self-contained HTML fragment using semantic elements.
2. Use utility CSS classes for layout, spacing, typography, colors and responsiveness.
3. Include headings, paragraphs, lists, buttons and calls-to-action that fit the section.
4. Use placeholder images such as "https://picsum.photos/seed/1/400/300" with descriptive alt text.
5. Keep the tone and theme consistent with the previous sections.
6. Add accessibility attributes (alt, aria-label) to images and interactive elements.
7. Output only the markup. Do not explain it or add commentary.`

// BuildContext renders the website metadata and a digest of previously generated sections.
// The digest block is omitted when there are no sections.
func BuildContext(site SiteInfo, sections []domain.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Website Name: %s\n", site.Name)
	fmt.Fprintf(&sb, "Description: %s\n", site.Description)
	fmt.Fprintf(&sb, "Additional Details: %s\n", site.OtherDetails)

	if len(sections) > 0 {
		sb.WriteString("\nPrevious sections generated:")
		for i, s := range sections {
			fmt.Fprintf(&sb, "\n%d. %s: %s...", i+1, s.Name, truncate(s.Content, SnippetLength))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildSuggestionPrompt asks for long-form suggestions about a website idea.
func BuildSuggestionPrompt(name, description string) string {
	return fmt.Sprintf(`Based on the website name %q and description %q,
please provide detailed suggestions for additional content and features
that would enhance this website. Consider the target audience, key features,
unique selling points, and overall goals. Provide at least 300 words of
comprehensive suggestions.`, name, description)
}

// BuildSectionPrompt asks for the markup of one named section.
func BuildSectionPrompt(site SiteInfo, sectionName string, previous []domain.Section) string {
	return BuildContext(site, previous) + "\n" + fmt.Sprintf(sectionInstructions, sectionName)
}

// BuildChatPrompt appends a visitor message to the website context.
func BuildChatPrompt(site SiteInfo, sections []domain.Section, message string) string {
	var sb strings.Builder
	sb.WriteString(BuildContext(site, sections))
	fmt.Fprintf(&sb, "\nUser asked: %q\n\n", message)
	sb.WriteString("As a helpful assistant for this website, provide a relevant and helpful response ")
	sb.WriteString("based on the website's content and purpose. Be friendly and informative.")
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
