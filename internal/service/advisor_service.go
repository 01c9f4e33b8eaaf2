package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"career-compass/internal/llm"
)

// Textos fijos devueltos cuando el servicio de generación falla o no está
// configurado. El caller siempre recibe contenido, nunca un error.
const (
	recommendationsFallback = "Unable to generate AI recommendations at this time. Please try again later."
	resourcesFallback       = "Unable to generate learning resources at this time. Please try again later."
)

const careerPromptTemplate = `You are a career counselor. Provide 3-5 career recommendations based on the skills, interests, and experience level provided.

For each career recommendation:
1. Start with a numbered title
2. Provide a detailed description section (3-4 lines)
3. Include a "Why it fits" section (3-4 lines)
4. Add a "How to prepare" section (3-4 lines)

Make each section detailed and informative, with 3-4 lines of content for each point.

Skills: %s
Interests: %s
Experience Level: %s`

const resourcesPromptTemplate = `You are a career counselor. Provide 3-5 detailed learning resources for someone interested in the specified career path.

For each resource:
1. Start with a numbered title (e.g., "1. Online Course: Python for Data Science")
2. Provide a detailed "Why it's great" section (3-4 lines) explaining the benefits and value of this resource
3. If applicable, include specific courses, books, or websites with brief descriptions (3-4 lines each)
4. For each specific recommendation, explain what topics it covers and why it's valuable (3-4 lines)

Make each section detailed and informative, with 3-4 lines of content for each point.

Career path: %s`

// AdvisorService arma los prompts de orientación profesional y delega la
// generación en el LLM.
type AdvisorService struct {
	logger    *zap.Logger
	llmClient llm.LLMClient
}

// NewAdvisorService crea el servicio; un cliente nil significa que no hay
// credencial configurada y toda generación degrada al texto de respaldo sin
// intentar llamadas de red.
func NewAdvisorService(logger *zap.Logger, llmClient llm.LLMClient) *AdvisorService {
	return &AdvisorService{
		logger:    logger,
		llmClient: llmClient,
	}
}

// RecommendCareers genera recomendaciones de carrera a partir de habilidades,
// intereses y nivel de experiencia. Nunca devuelve error.
func (s *AdvisorService) RecommendCareers(ctx context.Context, skills, interests []string, experienceLevel string) string {
	experienceLevel = strings.TrimSpace(experienceLevel)
	if experienceLevel == "" {
		experienceLevel = "beginner"
	}
	prompt := fmt.Sprintf(careerPromptTemplate,
		strings.Join(skills, ", "),
		strings.Join(interests, ", "),
		experienceLevel,
	)
	return s.generate(ctx, prompt, recommendationsFallback)
}

// LearningResources genera recursos de aprendizaje para una carrera concreta.
func (s *AdvisorService) LearningResources(ctx context.Context, careerPath string) string {
	prompt := fmt.Sprintf(resourcesPromptTemplate, careerPath)
	return s.generate(ctx, prompt, resourcesFallback)
}

func (s *AdvisorService) generate(ctx context.Context, prompt, fallback string) string {
	if s.llmClient == nil {
		return fallback
	}
	text, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		// El cliente no puede distinguir contenido degradado de contenido
		// real; queda pendiente de revisión de producto.
		if s.logger != nil {
			s.logger.Warn("llm generate failed", zap.Error(err))
		}
		return fallback
	}
	return text
}

// CareerCategories devuelve el catálogo fijo de categorías de carrera.
func CareerCategories() map[string][]string {
	return map[string][]string{
		"technology": {"Software Developer", "Data Scientist", "UX Designer", "Cybersecurity Specialist"},
		"healthcare": {"Nurse", "Physician Assistant", "Medical Technologist", "Healthcare Administrator"},
		"business":   {"Marketing Manager", "Financial Analyst", "Human Resources Specialist", "Management Consultant"},
		"creative":   {"Graphic Designer", "Content Writer", "Video Producer", "UI/UX Designer"},
	}
}
