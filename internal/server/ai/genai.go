package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

// GenAI is a Generator backed by the Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI creates a Gemini client for apiKey.
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GenAI{client: client, model: model}, nil
}

func (g *GenAI) Generate(ctx context.Context, req Request) (string, error) {
	contents, cfg := buildContents(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

// buildContents converts a Request into the genai call arguments.
func buildContents(req Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, t := range req.History {
		role := roleUser
		if t.Role == roleModel {
			role = roleModel
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []*genai.Part{{Text: t.Text}}})
	}

	var parts []*genai.Part
	if req.Image != nil {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: req.Image.MIMEType, Data: req.Image.Data}})
	}
	parts = append(parts, &genai.Part{Text: req.Prompt})
	contents = append(contents, &genai.Content{Role: roleUser, Parts: parts})

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if len(req.Fields) > 0 {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = schemaFor(req.Fields)
	}
	return contents, cfg
}

func schemaFor(fields []Field) *genai.Schema {
	s := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(fields)),
	}
	for _, f := range fields {
		p := &genai.Schema{Description: f.Description, Enum: f.Enum}
		switch f.Type {
		case FieldInteger:
			p.Type = genai.TypeInteger
		default:
			p.Type = genai.TypeString
		}
		s.Properties[f.Name] = p
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}
