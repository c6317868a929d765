package section

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldKind tells the admin editor which input to render and constrains the
// JSON type accepted for the field. Scalar kinds (text, longtext, image,
// date, link) must be strings; list must be an array; object must be a JSON
// object.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindLongText FieldKind = "longtext"
	KindImage    FieldKind = "image"
	KindDate     FieldKind = "date"
	KindLink     FieldKind = "link"
	KindList     FieldKind = "list"
	KindObject   FieldKind = "object"
)

type Field struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
}

// Schema declares the content fields of one section type. Fields not listed
// here are allowed and passed through untouched, so a schema only pins down
// what the renderer relies on.
type Schema struct {
	Key    string  `json:"key"`
	Fields []Field `json:"fields"`
}

var registry = map[string]Schema{
	"hero": {Key: "hero", Fields: []Field{
		{Name: "brideName", Kind: KindText, Required: true},
		{Name: "groomName", Kind: KindText, Required: true},
		{Name: "weddingDate", Kind: KindDate, Required: true},
		{Name: "location", Kind: KindText},
		{Name: "backgroundImage", Kind: KindImage},
	}},
	"couple_intro": {Key: "couple_intro", Fields: []Field{
		{Name: "bridePhoto", Kind: KindImage},
		{Name: "groomPhoto", Kind: KindImage},
		{Name: "brideBio", Kind: KindLongText},
		{Name: "groomBio", Kind: KindLongText},
	}},
	"our_story": {Key: "our_story", Fields: []Field{
		{Name: "heading", Kind: KindText, Required: true},
		{Name: "description", Kind: KindLongText},
	}},
	"ceremony": {Key: "ceremony", Fields: []Field{
		{Name: "date", Kind: KindDate, Required: true},
		{Name: "time", Kind: KindText, Required: true},
		{Name: "venue", Kind: KindText, Required: true},
		{Name: "address", Kind: KindText},
		{Name: "dressCode", Kind: KindText},
		{Name: "parking", Kind: KindText},
	}},
	"reception": {Key: "reception", Fields: []Field{
		{Name: "time", Kind: KindText, Required: true},
		{Name: "venue", Kind: KindText, Required: true},
		{Name: "address", Kind: KindText},
		{Name: "specialInstructions", Kind: KindLongText},
	}},
	"schedule": {Key: "schedule", Fields: []Field{
		{Name: "events", Kind: KindList, Required: true},
	}},
	"wedding_party": {Key: "wedding_party", Fields: []Field{
		{Name: "nasiHeading", Kind: KindText},
		{Name: "martoriHeading", Kind: KindText},
	}},
	"gallery": {Key: "gallery", Fields: []Field{
		{Name: "heading", Kind: KindText},
		{Name: "description", Kind: KindLongText},
	}},
	"accommodations": {Key: "accommodations", Fields: []Field{
		{Name: "heading", Kind: KindText},
		{Name: "hotels", Kind: KindList},
	}},
	"registry": {Key: "registry", Fields: []Field{
		{Name: "heading", Kind: KindText},
		{Name: "message", Kind: KindLongText},
		{Name: "registryLinks", Kind: KindList},
	}},
	"rsvp": {Key: "rsvp", Fields: []Field{
		{Name: "heading", Kind: KindText},
		{Name: "description", Kind: KindLongText},
		{Name: "deadline", Kind: KindDate},
	}},
	"faq": {Key: "faq", Fields: []Field{
		{Name: "heading", Kind: KindText},
	}},
	"footer": {Key: "footer", Fields: []Field{
		{Name: "thankYouMessage", Kind: KindLongText},
		{Name: "hashtag", Kind: KindText},
		{Name: "contactEmail", Kind: KindText},
	}},
}

// SchemaFor returns the content schema of a section key.
func SchemaFor(key string) (Schema, bool) {
	s, ok := registry[key]
	return s, ok
}

// ValidateContent checks a content blob against the schema of its section
// key. It returns an error naming every failing field, or ErrUnknownKey for
// keys outside the registry.
func ValidateContent(key string, raw json.RawMessage) error {
	schema, ok := registry[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("content of section %q is not a JSON object: %w", key, err)
	}

	var problems []string
	for _, f := range schema.Fields {
		value, present := content[f.Name]
		if !present || value == nil {
			if f.Required {
				problems = append(problems, fmt.Sprintf("%s is required", f.Name))
			}
			continue
		}
		if err := checkKind(f, value); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("section %q: %s", key, strings.Join(problems, "; "))
	}
	return nil
}

var ErrUnknownKey = fmt.Errorf("unknown section key")

func checkKind(f Field, value any) error {
	switch f.Kind {
	case KindList:
		if _, ok := value.([]any); !ok {
			return fmt.Errorf("%s must be a list", f.Name)
		}
	case KindObject:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Errorf("%s must be an object", f.Name)
		}
	default:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", f.Name)
		}
		if f.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
	}
	return nil
}
