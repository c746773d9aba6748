package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary *db_models.Itinerary, doc response_models.ItineraryDocument) error
	GetListOfItinerariesByUserId(ctx context.Context, page int, pageSize int, userID string) ([]db_models.Itinerary, error)
	GetItineraryById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID string) error
	Ping(ctx context.Context) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// SaveItinerary commits the parent row on its own before touching the
// flattened activity/meal rows. The parent row with the full JSONB document
// is the source of truth: a bad child row is logged and absorbed, never
// allowed to undo the parent. Sharing one transaction would not work here,
// since any child insert error aborts a Postgres transaction and the commit
// would lose the parent as well.
func (r *itineraryRepository) SaveItinerary(ctx context.Context, itinerary *db_models.Itinerary, doc response_models.ItineraryDocument) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return err
	}

	activities, meals := flattenDocument(itinerary.ID, doc)
	if len(activities) > 0 {
		if err := r.db.WithContext(ctx).Create(&activities).Error; err != nil {
			log.Printf("Warning: failed to save activity rows for %s: %v", itinerary.ID, err)
		}
	}
	if len(meals) > 0 {
		if err := r.db.WithContext(ctx).Create(&meals).Error; err != nil {
			log.Printf("Warning: failed to save meal rows for %s: %v", itinerary.ID, err)
		}
	}
	return nil
}

// flattenDocument maps each day's activities and meals to child rows, with
// cost and time fields pushed through the normalizers.
func flattenDocument(itineraryID uuid.UUID, doc response_models.ItineraryDocument) ([]db_models.ItineraryActivity, []db_models.ItineraryMeal) {
	var activities []db_models.ItineraryActivity
	var meals []db_models.ItineraryMeal

	for _, day := range doc.DailyItinerary {
		for _, activity := range day.Activities {
			row := db_models.ItineraryActivity{
				ItineraryID:  itineraryID,
				DayNumber:    day.Day,
				ActivityType: activity.Type,
				Title:        activity.Activity,
				Description:  activity.Description,
				Location:     activity.Location,
				Highlights:   activity.Highlights,
			}
			if cost, ok := utils.ExtractCost(activity.EstimatedCost); ok {
				row.EstimatedCost = &cost
			}
			if start, ok := utils.ExtractTime(activity.Time); ok {
				row.StartTime = &start
			}
			activities = append(activities, row)
		}

		for _, meal := range day.Meals {
			row := db_models.ItineraryMeal{
				ItineraryID:        itineraryID,
				DayNumber:          day.Day,
				MealType:           meal.MealType,
				Restaurant:         meal.Restaurant,
				Cuisine:            meal.Cuisine,
				Location:           meal.Location,
				Specialties:        meal.Specialties,
				VegetarianFriendly: meal.VegetarianFriendly,
			}
			if cost, ok := utils.ExtractCost(meal.EstimatedCost); ok {
				row.EstimatedCost = &cost
			}
			if mealTime, ok := utils.ExtractTime(meal.Time); ok {
				row.MealTime = &mealTime
			}
			meals = append(meals, row)
		}
	}

	return activities, meals
}

func (r *itineraryRepository) GetListOfItinerariesByUserId(ctx context.Context, page int, pageSize int, userID string) ([]db_models.Itinerary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var itineraries []db_models.Itinerary
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *itineraryRepository) GetItineraryById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error) {
	itineraryUUID, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	var itinerary db_models.Itinerary
	err = r.db.WithContext(ctx).
		Where("id = ?", itineraryUUID).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) DeleteItinerary(ctx context.Context, itineraryID string) error {
	itineraryUUID, err := uuid.Parse(itineraryID)
	if err != nil {
		return utils.ErrItineraryNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", itineraryUUID).Delete(&db_models.ItineraryActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryUUID).Delete(&db_models.ItineraryMeal{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", itineraryUUID).Delete(&db_models.Itinerary{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrItineraryNotFound
		}
		return nil
	})
}

func (r *itineraryRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
