/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

// Schema is the OpenAPI subset accepted as a model response schema.
type Schema struct {
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Required         []string           `json:"required,omitempty"`
}

// Schema types.
const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
)

func stringSchema(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

func objectSchema(props map[string]*Schema, order []string, required ...string) *Schema {
	return &Schema{
		Type:             TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         required,
	}
}

func bilingualSchema(description string) *Schema {
	s := objectSchema(map[string]*Schema{
		"en": stringSchema("English text"),
		"ar": stringSchema("Arabic text"),
	}, []string{"en", "ar"}, "en", "ar")
	s.Description = description

	return s
}

func recommendationGroupSchema() *Schema {
	return objectSchema(map[string]*Schema{
		"title": bilingualSchema("group title"),
		"points": {
			Type:  TypeArray,
			Items: bilingualSchema("one actionable point"),
		},
	}, []string{"title", "points"}, "title", "points")
}

// ResponseSchema returns the schema constraining the model output to the
// paged bilingual AnalysisResult shape.
func ResponseSchema() *Schema {
	row := objectSchema(map[string]*Schema{
		"test":           bilingualSchema("test name"),
		"value":          stringSchema("measured value with unit, verbatim"),
		"referenceRange": stringSchema("reference range, verbatim"),
		"interpretation": bilingualSchema("Normal, High, Low or Critical"),
	}, []string{"test", "value", "referenceRange", "interpretation"},
		"test", "value", "referenceRange", "interpretation")

	page := objectSchema(map[string]*Schema{
		"pageTitle": bilingualSchema("page title"),
		"patientSummary": objectSchema(map[string]*Schema{
			"title":   bilingualSchema("section title"),
			"summary": bilingualSchema("plain-language summary"),
		}, []string{"title", "summary"}, "title", "summary"),
		"physicianReport": objectSchema(map[string]*Schema{
			"title":        bilingualSchema("section title"),
			"introduction": bilingualSchema("introduction"),
			"resultsTable": {
				Type:  TypeArray,
				Items: row,
			},
			"advancedAnalysis": bilingualSchema("advanced analysis"),
		}, []string{"title", "introduction", "resultsTable", "advancedAnalysis"},
			"title", "introduction", "resultsTable", "advancedAnalysis"),
		"recommendations": objectSchema(map[string]*Schema{
			"general":         recommendationGroupSchema(),
			"nutritional":     recommendationGroupSchema(),
			"physicalTherapy": recommendationGroupSchema(),
		}, []string{"general", "nutritional", "physicalTherapy"}),
	}, []string{"pageTitle", "patientSummary", "physicianReport", "recommendations"}, "pageTitle")

	return objectSchema(map[string]*Schema{
		"pages": {
			Type:  TypeArray,
			Items: page,
		},
	}, []string{"pages"}, "pages")
}
