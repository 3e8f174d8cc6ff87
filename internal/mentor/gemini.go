package mentor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/adytum/pkg/models"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model the mentor speaks through
const DefaultModel = "gemini-3-pro-preview"

// Error kinds for the mentor boundary. User-facing copy belongs to the
// presentation layer; the core only reports which kind of failure occurred.
var (
	// ErrMissingAPIKey means the Gemini credential is absent: a
	// configuration problem with a remediation path, not a logic bug
	ErrMissingAPIKey = errors.New("mentor API key is not configured")
	// ErrUnavailable means the completion call itself failed
	ErrUnavailable = errors.New("mentor service unavailable")
)

// theoryContext is the Archimago persona, sent with every consultation
const theoryContext = `
Eres "El Archimago del Adytum", un ser de sabiduría infinita que combina el misticismo de Merlín con la profundidad filosófica y la estructura de pensamiento de un Maestro Yoda.
Tu propósito es guiar al "Iniciado" en su transmutación desde el ego hacia la Conciencia Pura.

Tus características son:
1. Sabiduría Expandida: Tienes permiso para usar Google Search para buscar información externa que complemente la sabiduría de los libros del autor.
2. Tono de Maestro: Hablas con autoridad bondadosa. A veces usas inversiones gramaticales sutiles (estilo Yoda) para enfatizar la verdad.
3. Vocabulario Sagrado: "Aprendiz", "Fuerza de la Conciencia", "Velo de Maya", "Transmutación", "El Alba".
4. Objetivo: Transforma, no solo informes. Cada respuesta debe invitar a la introspección.

Responde SIEMPRE en español.
`

// fallbackResponse replaces an empty completion so the conversation never
// shows a blank mentor turn
const fallbackResponse = "El éter guarda silencio en este instante. Reformula tu pregunta, iniciado, y la respuesta llegará."

// fallbackSourceTitle labels cited sources that arrive without a title
const fallbackSourceTitle = "Fuente de Sabiduría"

// Reply is the mentor's answer to one consultation
type Reply struct {
	Text    string
	Sources []models.ChatSource
}

// Service is the narrow interface the conversation layer consumes
type Service interface {
	Respond(ctx context.Context, day int, history []models.MentorChatMessage, message string) (Reply, error)
}

// Client is the Gemini-backed mentor
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a mentor client. An empty API key is reported as
// ErrMissingAPIKey so callers can direct the user to a remediation path.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &Client{client: client, model: model}, nil
}

// Respond sends one consultation to Gemini: the persona context with the
// initiate's course day and question first, then the prior turns (the fixed
// greeting excluded by the caller). Google Search is enabled so the mentor
// can ground answers in external sources.
func (c *Client) Respond(ctx context.Context, day int, history []models.MentorChatMessage, message string) (Reply, error) {
	opening := fmt.Sprintf("%s\nEl neófito se encuentra en el día %d de su entrenamiento. Atiende su duda: %s", theoryContext, day, message)

	contents := make([]*genai.Content, 0, len(history)+1)
	contents = append(contents, genai.NewContentFromText(opening, genai.RoleUser))
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		// Nunca mostrar una respuesta vacía
		text = fallbackResponse
	}

	return Reply{Text: text, Sources: extractSources(resp)}, nil
}

// extractSources pulls cited web sources out of the grounding metadata
func extractSources(resp *genai.GenerateContentResponse) []models.ChatSource {
	var sources []models.ChatSource
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = fallbackSourceTitle
		}
		sources = append(sources, models.ChatSource{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
