package domain

// Known section names offered by the creation wizard.
const (
	SectionChatbotWidget = "AI Chatbot Widget Section"
	SectionHero          = "Interactive Hero Section"
	SectionStats         = "Stats / Metrics Section"
	SectionProcess       = "Process / How It Works Section"
	SectionCallToAction  = "Call-to-Action Banner Section"
	SectionBlog          = "Blog / Resources Section"
	SectionPartners      = "Integration / Partners Section"
	SectionDownloadApp   = "Download App Section"
	SectionEvents        = "Events / Webinar Section"
	SectionCommunity     = "Community / Forum Section"
	SectionCareers       = "Careers Section"
	SectionLegal         = "Legal / Compliance Section"
	SectionDarkMode      = "Dark Mode Toggle Section"
)

// AvailableSections is the section vocabulary in wizard order.
// Names outside this list are still accepted.
var AvailableSections = []string{
	SectionChatbotWidget,
	SectionHero,
	SectionStats,
	SectionProcess,
	SectionCallToAction,
	SectionBlog,
	SectionPartners,
	SectionDownloadApp,
	SectionEvents,
	SectionCommunity,
	SectionCareers,
	SectionLegal,
	SectionDarkMode,
}

// IsKnownSection checks if a section name belongs to the vocabulary.
func IsKnownSection(name string) bool {
	for _, s := range AvailableSections {
		if s == name {
			return true
		}
	}
	return false
}
