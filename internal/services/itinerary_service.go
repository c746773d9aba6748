package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, userID string) (*response_models.GeneratedItinerary, error)
	GetListOfItineraries(ctx context.Context, page int, pageSize int, userID string) ([]response_models.ItinerarySummary, error)
	GetItineraryById(ctx context.Context, itineraryID string) (*response_models.StoredItinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	aiClient      utils.ItineraryModelClient
	engine        *ItineraryEngine
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.ItineraryModelClient,
	engine *ItineraryEngine,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		aiClient:      aiClient,
		engine:        engine,
	}
}

// GenerateItinerary always produces a complete itinerary document. Model
// failures and unusable model output degrade to synthetic content; only a
// bad request is an error.
func (s *ItineraryService) GenerateItinerary(
	ctx context.Context,
	req request_models.GenerateItineraryRequest,
	userID string,
) (*response_models.GeneratedItinerary, error) {
	trip, err := req.ToTripRequest()
	if err != nil {
		return nil, err
	}

	var doc response_models.ItineraryDocument
	var outcome PipelineOutcome

	prompt := BuildItineraryPrompt(trip)
	raw, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("AI generation failed, using fallback itinerary: %v", err)
		doc = s.engine.FallbackDocument(trip)
		outcome = OutcomeFallback
	} else {
		doc, outcome = s.engine.BuildDocument(raw, trip)
	}

	result := &response_models.GeneratedItinerary{
		UserID:   userID,
		Source:   outcome.String(),
		Document: doc,
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		userUUID = uuid.New()
		result.UserID = userUUID.String()
	}

	documentJSON, err := json.Marshal(doc)
	if err != nil {
		log.Printf("Warning: failed to marshal itinerary document: %v", err)
		return result, nil
	}

	row := &db_models.Itinerary{
		UserID:               userUUID,
		Destination:          trip.Destination,
		StartDate:            trip.StartDate,
		EndDate:              trip.EndDate,
		Travelers:            req.Travelers,
		Budget:               trip.Budget,
		VegetarianPreference: trip.Vegetarian,
		SpecialRequirements:  req.SpecialRequirements,
		Source:               outcome.String(),
		Document:             documentJSON,
	}

	if err := s.itineraryRepo.SaveItinerary(ctx, row, doc); err != nil {
		log.Printf("Warning: failed to save itinerary to database: %v", err)
		return result, nil
	}

	result.ID = row.ID.String()
	result.DatabaseSaved = true
	result.CreatedAt = row.CreatedAt
	return result, nil
}

func (s *ItineraryService) GetListOfItineraries(ctx context.Context, page int, pageSize int, userID string) ([]response_models.ItinerarySummary, error) {
	rows, err := s.itineraryRepo.GetListOfItinerariesByUserId(ctx, page, pageSize, userID)
	if err != nil {
		if err == utils.ErrInvalidInput {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.ItinerarySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toItinerarySummary(row))
	}
	return summaries, nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, itineraryID string) (*response_models.StoredItinerary, error) {
	row, err := s.itineraryRepo.GetItineraryById(ctx, itineraryID)
	if err != nil {
		if err == utils.ErrItineraryNotFound {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	stored := &response_models.StoredItinerary{
		ItinerarySummary: toItinerarySummary(*row),
	}
	if err := json.Unmarshal(row.Document, &stored.Document); err != nil {
		log.Printf("Warning: stored document for %s is unreadable: %v", row.ID, err)
	}
	return stored, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, itineraryID string) error {
	err := s.itineraryRepo.DeleteItinerary(ctx, itineraryID)
	if err != nil {
		if err == utils.ErrItineraryNotFound {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func toItinerarySummary(row db_models.Itinerary) response_models.ItinerarySummary {
	return response_models.ItinerarySummary{
		ID:          row.ID.String(),
		Destination: row.Destination,
		StartDate:   row.StartDate.Format("2006-01-02"),
		EndDate:     row.EndDate.Format("2006-01-02"),
		Travelers:   row.Travelers,
		Source:      row.Source,
		CreatedAt:   row.CreatedAt,
	}
}
