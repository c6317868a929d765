package sections

import "encoding/json"

type updateRequest struct {
	ID           uint            `json:"id"`
	Action       string          `json:"action,omitempty"`
	SectionTitle *string         `json:"section_title,omitempty"`
	IsVisible    *bool           `json:"is_visible,omitempty"`
	DisplayOrder *int            `json:"display_order,omitempty"`
	ContentJSON  json.RawMessage `json:"content_json,omitempty"`
}
