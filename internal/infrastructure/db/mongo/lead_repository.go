package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

const (
	collectionLeads    = "demo_requests"
	collectionCounters = "counters"
	leadCounterKey     = "demo_requests"
)

type LeadRepository struct {
	leads    *mongo.Collection
	counters *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		leads:    db.Collection(collectionLeads),
		counters: db.Collection(collectionCounters),
	}
}

// nextID atomically increments the lead counter document and returns the new
// value, preserving the strictly-increasing id contract across processes.
func (r *LeadRepository) nextID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": leadCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// Create assigns the next id from the counter document and inserts the lead.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	lead.ID = id

	_, err = r.leads.InsertOne(ctx, lead)
	return err
}

// Delete removes a lead by id. Used only to compensate a failed relay.
func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.leads.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

// List returns all leads ordered by created_at descending, then id descending.
func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "id", Value: -1},
	})
	cur, err := r.leads.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var leads []*domain.Lead
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	return leads, nil
}

// EnsureIndexes creates the indexes the lead collection relies on.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.leads.Indexes().CreateMany(ctx, indexes)
	return err
}
