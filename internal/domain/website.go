package domain

import "time"

// WebsiteStatus represents the lifecycle status of a website.
type WebsiteStatus string

const (
	WebsiteStatusDraft     WebsiteStatus = "draft"
	WebsiteStatusPublished WebsiteStatus = "published"
)

// ValidStatuses contains all valid website statuses.
var ValidStatuses = []WebsiteStatus{WebsiteStatusDraft, WebsiteStatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Section is a named block of content within a website.
// Order is the insertion index and is only used for display.
type Section struct {
	Name      string    `json:"sectionName"`
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Website is the aggregate of site metadata, its sections and lifecycle status.
type Website struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	OtherDetails string        `json:"otherDetails"`
	Status       WebsiteStatus `json:"status"`
	Sections     []Section     `json:"sections"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewWebsite creates a draft website with no sections.
func NewWebsite(id, name, description, otherDetails string, now time.Time) *Website {
	return &Website{
		ID:           id,
		Name:         name,
		Description:  description,
		OtherDetails: otherDetails,
		Status:       WebsiteStatusDraft,
		Sections:     []Section{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Section returns the section with the given name.
func (w *Website) Section(name string) (*Section, bool) {
	for i := range w.Sections {
		if w.Sections[i].Name == name {
			return &w.Sections[i], true
		}
	}
	return nil, false
}

// UpsertSection replaces the content of the named section, keeping its order,
// or appends a new section with order equal to the current section count.
func (w *Website) UpsertSection(name, content string) []Section {
	now := time.Now()
	if s, ok := w.Section(name); ok {
		s.Content = content
		s.UpdatedAt = now
	} else {
		w.Sections = append(w.Sections, Section{
			Name:      name,
			Content:   content,
			Order:     len(w.Sections),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	w.UpdatedAt = now
	return w.Sections
}

// Publish moves the website to published. Publishing twice is a no-op.
func (w *Website) Publish() {
	if w.Status == WebsiteStatusPublished {
		return
	}
	w.Status = WebsiteStatusPublished
	w.UpdatedAt = time.Now()
}

// IsPublished reports whether the website is visible to anonymous viewers.
func (w *Website) IsPublished() bool {
	return w.Status == WebsiteStatusPublished
}
