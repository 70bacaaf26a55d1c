package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

const (
	collectionHoldings      = "holdings"
	collectionHoldingEvents = "holding_events"
)

type HoldingRepository struct {
	col *mongo.Collection
}

func NewHoldingRepository(db *mongo.Database) *HoldingRepository {
	return &HoldingRepository{col: db.Collection(collectionHoldings)}
}

type holdingDoc struct {
	ID             string               `bson:"_id"`
	UserID         string               `bson:"user_id"`
	InvestmentID   string               `bson:"investment_id"`
	AmountInvested primitive.Decimal128 `bson:"amount_invested"`
	Units          primitive.Decimal128 `bson:"units"`
	PurchaseDate   time.Time            `bson:"purchase_date"`
	CurrentValue   primitive.Decimal128 `bson:"current_value"`
	Status         string               `bson:"status"`
	IsActive       bool                 `bson:"is_active"`
	CreatedAt      time.Time            `bson:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

func toHoldingDoc(h *domain.Holding) (holdingDoc, error) {
	amount, err := toDecimal128(h.AmountInvested)
	if err != nil {
		return holdingDoc{}, err
	}
	units, err := toDecimal128(h.Units)
	if err != nil {
		return holdingDoc{}, err
	}
	current, err := toDecimal128(h.CurrentValue)
	if err != nil {
		return holdingDoc{}, err
	}
	return holdingDoc{
		ID:             h.ID,
		UserID:         h.UserID,
		InvestmentID:   h.InvestmentID,
		AmountInvested: amount,
		Units:          units,
		PurchaseDate:   h.PurchaseDate.UTC(),
		CurrentValue:   current,
		Status:         string(h.Status),
		IsActive:       h.IsActive,
		CreatedAt:      h.CreatedAt.UTC(),
		UpdatedAt:      h.UpdatedAt.UTC(),
	}, nil
}

func (d holdingDoc) toDomain() (*domain.Holding, error) {
	amount, err := fromDecimal128(d.AmountInvested)
	if err != nil {
		return nil, err
	}
	units, err := fromDecimal128(d.Units)
	if err != nil {
		return nil, err
	}
	current, err := fromDecimal128(d.CurrentValue)
	if err != nil {
		return nil, err
	}
	return &domain.Holding{
		ID:             d.ID,
		UserID:         d.UserID,
		InvestmentID:   d.InvestmentID,
		AmountInvested: amount,
		Units:          units,
		PurchaseDate:   d.PurchaseDate.UTC(),
		CurrentValue:   current,
		Status:         domain.HoldingStatus(d.Status),
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}, nil
}

func (r *HoldingRepository) Create(ctx context.Context, h *domain.Holding) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toHoldingDoc(h)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}
	return nil
}

func (r *HoldingRepository) FindByID(ctx context.Context, id string) (*domain.Holding, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc holdingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHoldingNotFound
		}
		return nil, fmt.Errorf("find holding: %w", err)
	}
	return doc.toDomain()
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Holding, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}

	var docs []holdingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode holdings: %w", err)
	}

	out := make([]*domain.Holding, 0, len(docs))
	for _, d := range docs {
		h, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *HoldingRepository) Update(ctx context.Context, h *domain.Holding) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toHoldingDoc(h)
	if err != nil {
		return err
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": h.ID}, doc)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHoldingNotFound
	}
	return nil
}

// HoldingEventRepository writes the holding audit trail.
type HoldingEventRepository struct {
	col *mongo.Collection
}

func NewHoldingEventRepository(db *mongo.Database) *HoldingEventRepository {
	return &HoldingEventRepository{col: db.Collection(collectionHoldingEvents)}
}

// Insert persists an event to the holding_events collection.
func (r *HoldingEventRepository) Insert(ctx context.Context, event *domain.HoldingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"holding_id":  event.HoldingID,
		"user_id":     event.UserID,
		"to_status":   string(event.ToStatus),
		"actor_id":    event.ActorID,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.FromStatus != "" {
		doc["from_status"] = string(event.FromStatus)
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert holding event: %w", err)
	}
	return nil
}
