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

const collectionInvestments = "investments"

type InvestmentRepository struct {
	col *mongo.Collection
}

func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{col: db.Collection(collectionInvestments)}
}

type investmentDoc struct {
	ID                   string               `bson:"_id"`
	Name                 string               `bson:"name"`
	Type                 string               `bson:"type"`
	BaseValue            primitive.Decimal128 `bson:"base_value"`
	ExpectedYieldPercent primitive.Decimal128 `bson:"expected_yield_percent"`
	RiskLevel            string               `bson:"risk_level"`
	Description          string               `bson:"description,omitempty"`
	IsActive             bool                 `bson:"is_active"`
	CreatedAt            time.Time            `bson:"created_at"`
	UpdatedAt            time.Time            `bson:"updated_at"`
}

func toInvestmentDoc(inv *domain.Investment) (investmentDoc, error) {
	base, err := toDecimal128(inv.BaseValue)
	if err != nil {
		return investmentDoc{}, err
	}
	yield, err := toDecimal128(inv.ExpectedYieldPercent)
	if err != nil {
		return investmentDoc{}, err
	}
	return investmentDoc{
		ID:                   inv.ID,
		Name:                 inv.Name,
		Type:                 inv.Type,
		BaseValue:            base,
		ExpectedYieldPercent: yield,
		RiskLevel:            string(inv.RiskLevel),
		Description:          inv.Description,
		IsActive:             inv.IsActive,
		CreatedAt:            inv.CreatedAt.UTC(),
		UpdatedAt:            inv.UpdatedAt.UTC(),
	}, nil
}

func (d investmentDoc) toDomain() (*domain.Investment, error) {
	base, err := fromDecimal128(d.BaseValue)
	if err != nil {
		return nil, err
	}
	yield, err := fromDecimal128(d.ExpectedYieldPercent)
	if err != nil {
		return nil, err
	}
	return &domain.Investment{
		ID:                   d.ID,
		Name:                 d.Name,
		Type:                 d.Type,
		BaseValue:            base,
		ExpectedYieldPercent: yield,
		RiskLevel:            domain.RiskLevel(d.RiskLevel),
		Description:          d.Description,
		IsActive:             d.IsActive,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}, nil
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toInvestmentDoc(inv)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc investmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment: %w", err)
	}
	return doc.toDomain()
}

func (r *InvestmentRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Investment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}

	var docs []investmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode investments: %w", err)
	}

	out := make([]*domain.Investment, 0, len(docs))
	for _, d := range docs {
		inv, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *domain.Investment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toInvestmentDoc(inv)
	if err != nil {
		return err
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": inv.ID}, doc)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count investments: %w", err)
	}
	return n, nil
}
