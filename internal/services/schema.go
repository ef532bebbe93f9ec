package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Shape describes the JSON structure a model response must have. The same
// description is sent to the model as its response schema and used to
// validate what comes back.
type Shape struct {
	Name        string
	Kind        Kind
	Description string
	// Fields lists the required properties of an object, in check order.
	Fields []Field
	// Items is the element shape of an array.
	Items *Shape
}

type Field struct {
	Name  string
	Shape *Shape
}

var QuestionListShape = &Shape{
	Name: "QuestionList",
	Kind: KindArray,
	Items: &Shape{
		Kind: KindObject,
		Fields: []Field{
			{Name: "question", Shape: &Shape{Kind: KindString, Description: "The interview question"}},
			{Name: "type", Shape: &Shape{Kind: KindString, Description: "The type of question, either 'technical' or 'behavioral'"}},
		},
	},
}

var FeedbackShape = &Shape{
	Name: "FeedbackResult",
	Kind: KindObject,
	Fields: []Field{
		{Name: "feedback", Shape: &Shape{
			Kind:        KindString,
			Description: "Comprehensive, well-structured feedback in Markdown format with sections: Overall Assessment, Strengths, Areas for Improvement, Detailed Analysis, Recommendations, and Score Breakdown",
		}},
		{Name: "score", Shape: &Shape{
			Kind:        KindNumber,
			Description: "Score out of 10, considering relevance, depth, clarity, examples, and overall quality",
		}},
	},
}

var ATSResultShape = &Shape{
	Name: "AtsResult",
	Kind: KindObject,
	Fields: []Field{
		{Name: "score", Shape: &Shape{Kind: KindNumber, Description: "Overall ATS compatibility score from 0 to 100."}},
		{Name: "breakdown", Shape: &Shape{
			Kind: KindObject,
			Fields: []Field{
				{Name: "keywordMatching", Shape: &Shape{Kind: KindNumber, Description: "Score for keyword matching from 0 to 100."}},
				{Name: "skillsAlignment", Shape: &Shape{Kind: KindNumber, Description: "Score for skills alignment from 0 to 100."}},
				{Name: "formatting", Shape: &Shape{Kind: KindNumber, Description: "Score for formatting from 0 to 100."}},
			},
		}},
		{Name: "analysis", Shape: &Shape{Kind: KindString, Description: "Brief explanation of the score and key findings."}},
		{Name: "tips", Shape: &Shape{
			Kind:        KindArray,
			Description: "Array of 3-5 actionable tips to improve ATS performance.",
			Items:       &Shape{Kind: KindString},
		}},
	},
}

// Validate checks value against shape and returns it unchanged. When the
// value violates the shape, the violation the shape's declared order reaches
// first is returned as a *SchemaError: a missing field before any type
// mismatch in the same object, earlier fields and indexes before later ones.
func Validate(value any, shape *Shape) (any, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(shape.JSONSchema()),
		gojsonschema.NewGoLoader(value),
	)
	if err != nil {
		return nil, &SchemaError{Field: rootField, Reason: fmt.Sprintf("could not be checked: %v", err)}
	}
	if result.Valid() {
		return value, nil
	}

	var (
		first    *SchemaError
		firstKey []int
	)
	for _, resultErr := range result.Errors() {
		key, schemaErr := locate(shape, resultErr)
		if first == nil || lessKey(key, firstKey) {
			first, firstKey = schemaErr, key
		}
	}
	return nil, first
}

const rootField = "(root)"

// locate turns a gojsonschema error into a SchemaError and a sort key that
// orders it the way a depth-first walk of shape would meet it.
func locate(shape *Shape, resultErr gojsonschema.ResultError) ([]int, *SchemaError) {
	segments := contextSegments(resultErr.Context())
	required := resultErr.Type() == "required"
	if required {
		if property, ok := resultErr.Details()["property"].(string); ok {
			segments = append(segments, property)
		}
	}

	var (
		key  []int
		path string
	)
	node := shape
	for i, segment := range segments {
		switch {
		case node != nil && node.Kind == KindArray:
			index, err := strconv.Atoi(segment)
			if err != nil {
				index = math.MaxInt
			}
			key = append(key, index)
			path = fmt.Sprintf("%s[%s]", path, segment)
			node = node.Items
		case node != nil && node.Kind == KindObject:
			position, child := node.field(segment)
			last := i == len(segments)-1
			if required && last {
				// presence is checked before any field is descended into
				key = append(key, 0, position)
			} else {
				key = append(key, 1, position)
			}
			path = fieldPath(path, segment)
			node = child
		default:
			key = append(key, math.MaxInt)
			path = fieldPath(path, segment)
			node = nil
		}
	}
	// an error on a node sorts ahead of anything below it
	key = append(key, -1)

	return key, &SchemaError{Field: displayPath(path), Reason: reasonFor(resultErr)}
}

func (s *Shape) field(name string) (int, *Shape) {
	for i, f := range s.Fields {
		if f.Name == name {
			return i, f.Shape
		}
	}
	return len(s.Fields), nil
}

func contextSegments(ctx *gojsonschema.JsonContext) []string {
	if ctx == nil {
		return nil
	}
	trail := strings.TrimPrefix(ctx.String(), rootField)
	trail = strings.TrimPrefix(trail, ".")
	if trail == "" {
		return nil
	}
	return strings.Split(trail, ".")
}

func reasonFor(resultErr gojsonschema.ResultError) string {
	details := resultErr.Details()
	switch resultErr.Type() {
	case "required":
		return "missing required field"
	case "invalid_type":
		return fmt.Sprintf("expected %s, got %s", jsonTypeName(details["expected"]), jsonTypeName(details["given"]))
	default:
		return resultErr.Description()
	}
}

// jsonTypeName folds gojsonschema's integer type into number, which is the
// only numeric kind a Shape declares.
func jsonTypeName(v any) string {
	name := fmt.Sprint(v)
	if name == "integer" {
		return string(KindNumber)
	}
	return name
}

func lessKey(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// JSONSchema renders the shape as a JSON Schema document. Undeclared
// properties stay allowed.
func (s *Shape) JSONSchema() map[string]any {
	schema := map[string]any{"type": string(s.Kind)}
	if s.Description != "" {
		schema["description"] = s.Description
	}

	if s.Items != nil {
		schema["items"] = s.Items.JSONSchema()
	}

	if len(s.Fields) > 0 {
		properties := make(map[string]any, len(s.Fields))
		required := make([]string, 0, len(s.Fields))
		for _, field := range s.Fields {
			properties[field.Name] = field.Shape.JSONSchema()
			required = append(required, field.Name)
		}
		schema["properties"] = properties
		schema["required"] = required
	}

	return schema
}

func fieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return rootField
	}
	return path
}

// GenaiSchema renders the shape as a Gemini response schema.
func (s *Shape) GenaiSchema() *genai.Schema {
	schema := &genai.Schema{
		Type:        genaiType(s.Kind),
		Description: s.Description,
	}

	if s.Items != nil {
		schema.Items = s.Items.GenaiSchema()
	}

	if len(s.Fields) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(s.Fields))
		for _, field := range s.Fields {
			schema.Properties[field.Name] = field.Shape.GenaiSchema()
			schema.Required = append(schema.Required, field.Name)
			schema.PropertyOrdering = append(schema.PropertyOrdering, field.Name)
		}
	}

	return schema
}

func genaiType(kind Kind) genai.Type {
	switch kind {
	case KindString:
		return genai.TypeString
	case KindNumber:
		return genai.TypeNumber
	case KindArray:
		return genai.TypeArray
	case KindObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
