package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/logging"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// FallbackMessage is shown to users whenever the assistant cannot answer.
const FallbackMessage = "Sorry, I'm having trouble connecting right now. Please try again in a moment."

var (
	// ErrUnavailable covers provider failures and malformed model output.
	ErrUnavailable = errors.New(FallbackMessage)
	// ErrNotConfigured means no API key was supplied.
	ErrNotConfigured = errors.New("AI service is not configured")
)

// Operation names, also used as metric labels.
const (
	OpChat       = "chat"
	OpIdentify   = "identify"
	OpAutofill   = "autofill"
	OpFertilizer = "fertilizer"
)

// Observer is notified of every call outcome.
type Observer interface {
	ObserveAI(operation string, err error)
}

// Service implements the assistant operations on top of a Generator. A nil
// Generator makes every operation fail with ErrNotConfigured.
type Service struct {
	gen      Generator
	log      logging.Logger
	observer Observer
}

func NewService(gen Generator, log logging.Logger, observer Observer) *Service {
	return &Service{gen: gen, log: log.With("module", "ai"), observer: observer}
}

// Chat answers prompt in the context of the earlier turns of history.
func (s *Service) Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", common.ErrorValidation)
	}

	turns := make([]Turn, 0, len(history))
	for _, h := range history {
		if h.Text == "" {
			continue
		}
		turns = append(turns, Turn{Role: h.Role, Text: h.Text})
	}

	return s.text(ctx, OpChat, Request{System: chatSystem, History: turns, Prompt: prompt})
}

// Identify guesses the species shown in img.
func (s *Service) Identify(ctx context.Context, img models.Photo) (models.Identification, error) {
	var out models.Identification

	image, err := imageFrom(img)
	if err != nil {
		return out, err
	}

	err = s.structured(ctx, OpIdentify, Request{Prompt: identifyPrompt, Image: image, Fields: identifyFields}, &out, func() error {
		if strings.TrimSpace(out.Name) == "" {
			return errors.New("missing name")
		}
		if out.Match < 0 || out.Match > 100 {
			return fmt.Errorf("match %d out of range", out.Match)
		}
		return nil
	})
	return out, err
}

// Autofill suggests care details for the plant shown in img.
func (s *Service) Autofill(ctx context.Context, img models.Photo) (models.CareDetails, error) {
	var out models.CareDetails

	image, err := imageFrom(img)
	if err != nil {
		return out, err
	}

	err = s.structured(ctx, OpAutofill, Request{Prompt: autofillPrompt, Image: image, Fields: autofillFields}, &out, func() error {
		if out.WateringFrequency <= 0 || out.FertilizingFrequency <= 0 {
			return errors.New("frequencies must be positive")
		}
		if !slices.Contains(models.SunlightOptions, out.Sunlight) {
			return fmt.Errorf("unknown sunlight %q", out.Sunlight)
		}
		if !slices.Contains(models.HumidityOptions, out.Humidity) {
			return fmt.Errorf("unknown humidity %q", out.Humidity)
		}
		if out.Name == "" {
			out.Name, _, _ = strings.Cut(strings.TrimSpace(out.ScientificName), " ")
		}
		if out.Name == "" {
			return errors.New("missing name")
		}
		return nil
	})
	return out, err
}

// FertilizerSuggestion returns a short fertilizing tip for a plant.
func (s *Service) FertilizerSuggestion(ctx context.Context, name, scientificName string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.text(ctx, OpFertilizer, Request{Prompt: fertilizerPrompt(name, scientificName)})
}

func (s *Service) text(ctx context.Context, op string, req Request) (string, error) {
	out, err := s.call(ctx, op, req)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	s.observe(op, nil)
	return out, nil
}

// structured calls the model, decodes its JSON answer into v and runs
// validate. Any failure after the call maps to ErrUnavailable.
func (s *Service) structured(ctx context.Context, op string, req Request, v any, validate func() error) error {
	raw, err := s.call(ctx, op, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(stripFences(raw)), v); err != nil {
		s.log.Warn(ctx, "malformed model output", "operation", op, "error", err)
		s.observe(op, err)
		return ErrUnavailable
	}
	if err := validate(); err != nil {
		s.log.Warn(ctx, "invalid model output", "operation", op, "error", err)
		s.observe(op, err)
		return ErrUnavailable
	}

	s.observe(op, nil)
	return nil
}

func (s *Service) call(ctx context.Context, op string, req Request) (string, error) {
	if s.gen == nil {
		s.observe(op, ErrNotConfigured)
		return "", ErrNotConfigured
	}

	out, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.Error(ctx, "model call failed", "operation", op, "error", err)
		s.observe(op, err)
		return "", ErrUnavailable
	}
	return out, nil
}

func (s *Service) observe(op string, err error) {
	if s.observer != nil {
		s.observer.ObserveAI(op, err)
	}
}

// imageFrom validates an upload and fills in its MIME type when the client
// did not send a usable one.
func imageFrom(p models.Photo) (*Image, error) {
	if len(p.Data) == 0 {
		return nil, fmt.Errorf("%w: image is required", common.ErrorValidation)
	}
	mime := p.ContentType
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(p.Data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: unsupported image type %s", common.ErrorValidation, mime)
	}
	return &Image{MIMEType: mime, Data: p.Data}, nil
}

// stripFences removes a surrounding ``` or ```json fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
