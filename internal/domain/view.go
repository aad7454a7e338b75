package domain

// ViewStatus is the state an anonymous viewer sees.
type ViewStatus string

const (
	ViewStatusNotFound   ViewStatus = "not_found"
	ViewStatusComingSoon ViewStatus = "coming_soon"
	ViewStatusPublished  ViewStatus = "published"
)

const (
	comingSoonMessage     = "Coming Soon"
	comingSoonDescription = "This website is currently under development and will be available soon."
	notFoundError         = "Website Not Found"
	notFoundMessage       = "The requested website could not be found."
)

// View is the payload served to anonymous viewers.
type View struct {
	Status      ViewStatus `json:"status"`
	Error       string     `json:"error,omitempty"`
	Message     string     `json:"message,omitempty"`
	Description string     `json:"description,omitempty"`
	Website     *Website   `json:"website,omitempty"`
}

// ResolveView projects a stored website into what an anonymous viewer may see.
// Drafts expose only a static notice; nothing from the website leaks.
func ResolveView(w *Website) View {
	switch {
	case w == nil:
		return View{
			Status:  ViewStatusNotFound,
			Error:   notFoundError,
			Message: notFoundMessage,
		}
	case !w.IsPublished():
		return View{
			Status:      ViewStatusComingSoon,
			Message:     comingSoonMessage,
			Description: comingSoonDescription,
		}
	default:
		site := *w
		site.Sections = append([]Section(nil), w.Sections...)
		return View{
			Status:  ViewStatusPublished,
			Website: &site,
		}
	}
}
