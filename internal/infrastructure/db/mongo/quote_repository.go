package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

const collectionQuotes = "fuel_quotes"

type QuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes)}
}

type quoteDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	AccountID        primitive.ObjectID `bson:"account_id"`
	GallonsRequested float64            `bson:"gallons_requested"`
	DeliveryAddress  string             `bson:"delivery_address"`
	DeliveryDate     string             `bson:"delivery_date"`
	SuggestedPrice   float64            `bson:"suggested_price"`
	TotalAmountDue   float64            `bson:"total_amount_due"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (r *QuoteRepository) Append(ctx context.Context, quote *domain.FuelQuote) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	accountID, err := primitive.ObjectIDFromHex(quote.AccountID)
	if err != nil {
		return "", fmt.Errorf("append quote: invalid account id %q", quote.AccountID)
	}

	doc := quoteDoc{
		AccountID:        accountID,
		GallonsRequested: quote.GallonsRequested,
		DeliveryAddress:  quote.DeliveryAddress,
		DeliveryDate:     quote.DeliveryDate,
		SuggestedPrice:   quote.SuggestedPrice,
		TotalAmountDue:   quote.TotalAmountDue,
		CreatedAt:        quote.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("append quote: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// ListByAccount returns the account's quotes sorted by insertion time. The
// account_id filter is the authorization boundary: it is applied on every
// query, so no call path can observe another account's rows.
func (r *QuoteRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.FuelQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"account_id": id}, opts)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []quoteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]domain.FuelQuote, 0, len(docs))
	for _, d := range docs {
		quotes = append(quotes, domain.FuelQuote{
			ID:               d.ID.Hex(),
			AccountID:        d.AccountID.Hex(),
			GallonsRequested: d.GallonsRequested,
			DeliveryAddress:  d.DeliveryAddress,
			DeliveryDate:     d.DeliveryDate,
			SuggestedPrice:   d.SuggestedPrice,
			TotalAmountDue:   d.TotalAmountDue,
			CreatedAt:        d.CreatedAt,
		})
	}
	return quotes, nil
}

// EnsureIndexes creates the compound index backing per-account ordered reads.
func (r *QuoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
