package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/service"
)

// WebsiteHandler handles the website builder API.
type WebsiteHandler struct {
	websiteService service.WebsiteServiceInterface
}

// NewWebsiteHandler creates a new WebsiteHandler.
func NewWebsiteHandler(websiteService service.WebsiteServiceInterface) *WebsiteHandler {
	return &WebsiteHandler{
		websiteService: websiteService,
	}
}

// CreateWebsiteRequest is the body of POST /api/createWebsite.
type CreateWebsiteRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	OtherDetails string `json:"otherDetails"`
}

// SuggestRequest is the body of POST /api/generateSuggestedDetails.
type SuggestRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GenerateSectionRequest is the body of POST /api/generateContentSection.
type GenerateSectionRequest struct {
	WebsiteID string `json:"websiteId"`
	Section   string `json:"section"`
}

// UpdateSectionRequest is the body of POST /api/updateSectionContent.
type UpdateSectionRequest struct {
	WebsiteID   string `json:"websiteId"`
	SectionName string `json:"sectionName"`
	NewContent  string `json:"newContent"`
}

// PublishRequest is the body of POST /api/publishWebsite.
type PublishRequest struct {
	WebsiteID string `json:"websiteId"`
}

// ChatRequest is the body of POST /api/chatBotMessage.
type ChatRequest struct {
	WebsiteID string `json:"websiteId"`
	Message   string `json:"message"`
}

// SectionResponse represents a section in the API response.
type SectionResponse struct {
	SectionName string `json:"sectionName"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// WebsiteResponse represents a website in the API response.
type WebsiteResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	OtherDetails string            `json:"otherDetails"`
	Status       string            `json:"status"`
	Sections     []SectionResponse `json:"sections"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}

func toSectionResponse(s domain.Section) SectionResponse {
	return SectionResponse{
		SectionName: s.Name,
		Content:     s.Content,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt.Format(TimeFormat),
		UpdatedAt:   s.UpdatedAt.Format(TimeFormat),
	}
}

func toWebsiteResponse(w *domain.Website) WebsiteResponse {
	sections := make([]SectionResponse, 0, len(w.Sections))
	for _, s := range w.Sections {
		sections = append(sections, toSectionResponse(s))
	}
	return WebsiteResponse{
		ID:           w.ID,
		Name:         w.Name,
		Description:  w.Description,
		OtherDetails: w.OtherDetails,
		Status:       string(w.Status),
		Sections:     sections,
		CreatedAt:    w.CreatedAt.Format(TimeFormat),
		UpdatedAt:    w.UpdatedAt.Format(TimeFormat),
	}
}

// CreateWebsite handles POST /api/createWebsite
func (h *WebsiteHandler) CreateWebsite(c *gin.Context) {
	var req CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	website, err := h.websiteService.CreateWebsite(c.Request.Context(), service.CreateWebsiteInput{
		Name:         req.Name,
		Description:  req.Description,
		OtherDetails: req.OtherDetails,
	})
	if err != nil {
		respondError(c, err, "create website")
		return
	}

	c.JSON(http.StatusCreated, toWebsiteResponse(website))
}

// SuggestDetails handles POST /api/generateSuggestedDetails
func (h *WebsiteHandler) SuggestDetails(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	suggestion, err := h.websiteService.SuggestDetails(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err, "generate suggestion")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestion":     suggestion.Text,
		"suggestionHtml": suggestion.HTML,
	})
}

// GenerateSection handles POST /api/generateContentSection
func (h *WebsiteHandler) GenerateSection(c *gin.Context) {
	var req GenerateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	section, err := h.websiteService.GenerateSection(c.Request.Context(), req.WebsiteID, req.Section)
	if err != nil {
		respondError(c, err, "generate section")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"section": section.Name,
		"content": section.Content,
	})
}

// UpdateSection handles POST /api/updateSectionContent
func (h *WebsiteHandler) UpdateSection(c *gin.Context) {
	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	if err := h.websiteService.UpdateSection(c.Request.Context(), req.WebsiteID, req.SectionName, req.NewContent); err != nil {
		respondError(c, err, "update section")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Publish handles POST /api/publishWebsite
func (h *WebsiteHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	website, err := h.websiteService.Publish(c.Request.Context(), req.WebsiteID)
	if err != nil {
		respondError(c, err, "publish website")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  string(website.Status),
	})
}

// Chat handles POST /api/chatBotMessage
func (h *WebsiteHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	reply, err := h.websiteService.Chat(c.Request.Context(), req.WebsiteID, req.Message)
	if err != nil {
		respondError(c, err, "process chat message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetWebsite handles GET /api/website/:id
func (h *WebsiteHandler) GetWebsite(c *gin.Context) {
	website, err := h.websiteService.GetWebsite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve website")
		return
	}

	c.JSON(http.StatusOK, toWebsiteResponse(website))
}

// ListWebsites handles GET /api/websites
func (h *WebsiteHandler) ListWebsites(c *gin.Context) {
	websites, err := h.websiteService.ListWebsites(c.Request.Context())
	if err != nil {
		respondError(c, err, "list websites")
		return
	}

	response := make([]WebsiteResponse, 0, len(websites))
	for i := range websites {
		response = append(response, toWebsiteResponse(&websites[i]))
	}

	c.JSON(http.StatusOK, response)
}

// ListSections handles GET /api/sections
func (h *WebsiteHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": domain.AvailableSections})
}
