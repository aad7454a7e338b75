package generator

import (
	"fmt"
	"html"

	"ai-website-builder/internal/domain"
)

// ChatFallback is the reply used when the chat completion fails.
const ChatFallback = "I apologize, but I'm having trouble processing your request right now. Please try again later."

const suggestionTemplate = `Based on your website "%s" with the description "%s", here are some comprehensive suggestions to enhance your online presence:

**Content Strategy**: Consider adding detailed product or service pages that showcase your unique value proposition. Include customer testimonials, case studies, and success stories to build trust and credibility with your audience.

**User Experience**: Implement intuitive navigation with clear call-to-action buttons throughout the site. Consider adding a search functionality and filters to help users find what they're looking for quickly.

**Engagement Features**: Add an FAQ section addressing common customer questions, a blog section for sharing industry insights and updates, and social media integration to build community engagement.

**Trust Building**: Include security badges, certifications, and clear privacy policies. Add team member profiles and company background information to personalize your brand.

**Conversion Optimization**: Implement contact forms with multiple touchpoints, live chat support, and clear pricing information if applicable. Consider adding newsletter signup with valuable content incentives.

**Mobile Optimization**: Ensure responsive design across all devices with fast loading times and touch-friendly navigation elements.

**SEO Enhancement**: Optimize for relevant keywords in your industry, add meta descriptions, and ensure proper heading structure throughout your content.

These suggestions will help create a comprehensive, user-friendly website that effectively communicates your value proposition and drives meaningful engagement with your target audience.`

var sectionFallbacks = map[string]string{
	domain.SectionHero: `<div class="hero-section">
  <h1>Welcome to Our Amazing Platform</h1>
  <p>Discover innovative solutions that transform the way you work and succeed in today's digital landscape.</p>
  <button class="cta-primary">Get Started</button>
  <button class="cta-secondary">Learn More</button>
</div>`,
	domain.SectionStats: `<div class="stats-section">
  <div class="stat-item">
    <h3>10,000+</h3>
    <p>Happy Customers</p>
  </div>
  <div class="stat-item">
    <h3>99.9%</h3>
    <p>Uptime Guarantee</p>
  </div>
  <div class="stat-item">
    <h3>24/7</h3>
    <p>Support Available</p>
  </div>
</div>`,
	domain.SectionProcess: `<div class="process-section">
  <h2>How It Works</h2>
  <div class="process-steps">
    <div class="step">
      <h3>1. Sign Up</h3>
      <p>Create your account in minutes with our simple registration process.</p>
    </div>
    <div class="step">
      <h3>2. Set Up</h3>
      <p>Configure your preferences and customize your experience.</p>
    </div>
    <div class="step">
      <h3>3. Start Using</h3>
      <p>Begin leveraging our platform to achieve your goals immediately.</p>
    </div>
  </div>
</div>`,
}

const genericSectionTemplate = `<div class="section-content">
  <h2>%s</h2>
  <p>This section contains engaging content tailored to your website's needs.
  The content will be professionally crafted to align with your brand and objectives.</p>
</div>`

// SuggestionFallback returns the canned suggestion for a website name and description.
func SuggestionFallback(name, description string) string {
	return fmt.Sprintf(suggestionTemplate, name, description)
}

// SectionFallback returns canned markup for a section. Unknown names get a generic block.
func SectionFallback(sectionName string) string {
	if content, ok := sectionFallbacks[sectionName]; ok {
		return content
	}
	return fmt.Sprintf(genericSectionTemplate, html.EscapeString(sectionName))
}
