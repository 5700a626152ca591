package dto

// ChatbotConfigResponse feeds the client-side chat simulator: the business
// profile plus the caller's active sections with their tone/topic rules.
type ChatbotConfigResponse struct {
	Metadata *MetadataData      `json:"metadata"`
	Sections []*SectionResponse `json:"sections"`
}
