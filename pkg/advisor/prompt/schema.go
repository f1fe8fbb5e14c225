package prompt

// Schema mirrors the Gemini REST API responseSchema format. The recommendation
// schema is strict on purpose: every field of a recommendation is required, so
// a response missing any of them is a contract violation the client can detect.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

const (
	typeObject = "OBJECT"
	typeArray  = "ARRAY"
	typeString = "STRING"
	typeNumber = "NUMBER"
)

func stringField() *Schema { return &Schema{Type: typeString} }
func numberField() *Schema { return &Schema{Type: typeNumber} }
func stringArray() *Schema { return &Schema{Type: typeArray, Items: stringField()} }

// ResponseSchema declares the exact shape a recommendation response must have:
// a top-level recommendations array whose items carry the full recommendation
// record, retailers included.
func ResponseSchema() *Schema {
	retailer := &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"name": stringField(),
			"url":  stringField(),
		},
		Required: []string{"name", "url"},
	}

	recommendation := &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"id":            stringField(),
			"name":          stringField(),
			"brand":         stringField(),
			"priceEstimate": stringField(),
			"display":       stringField(),
			"processor":     stringField(),
			"camera":        stringField(),
			"battery":       stringField(),
			"whyThisPhone":  stringField(),
			"keyFeatures":   stringArray(),
			"pros":          stringArray(),
			"cons":          stringArray(),
			"bestUseCase":   stringField(),
			"matchScore":    numberField(),
			"availableRetailers": {
				Type:  typeArray,
				Items: retailer,
			},
		},
		Required: []string{
			"id", "name", "brand", "priceEstimate", "display", "processor",
			"camera", "battery", "whyThisPhone", "keyFeatures", "pros", "cons",
			"bestUseCase", "matchScore", "availableRetailers",
		},
	}

	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"recommendations": {
				Type:  typeArray,
				Items: recommendation,
			},
		},
		Required: []string{"recommendations"},
	}
}
