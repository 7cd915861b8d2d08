package repository

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// projectDocument is the stored shape of a Project. The driver assigns _id
// when it is left zero.
type projectDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *projectDocument) toProject() *project.Project {
	return &project.Project{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// MongoRepo implements Repository on a MongoDB collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: 1}}}
	if _, err := col.Indexes().CreateOne(ctx, idxModel); err != nil {
		logger.Warnf("projects: create createdAt index: %v", err)
	}
	return &MongoRepo{col: col}
}

// objectID parses a client supplied id. A malformed id cannot exist in the
// store, so it reports ErrNotFound.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (m *MongoRepo) All(ctx context.Context) iter.Seq2[*project.Project, error] {
	return func(yield func(*project.Project, error) bool) {
		cur, err := m.col.Find(ctx, bson.M{})
		if err != nil {
			yield(nil, err)
			return
		}
		defer cur.Close(context.WithoutCancel(ctx))
		for cur.Next(ctx) {
			var d projectDocument
			if err := cur.Decode(&d); err != nil {
				yield(nil, err)
				return
			}
			if !yield(d.toProject(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, err)
		}
	}
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*project.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d projectDocument
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d.toProject(), nil
}

func (m *MongoRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	d := projectDocument{
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	res, err := m.col.InsertOne(ctx, d)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return d.toProject(), nil
}

// Update applies a single $set so CreatedAt and _id are never rewritten. Two
// concurrent updates still race: the last writer wins.
func (m *MongoRepo) Update(ctx context.Context, id, name, description string) (*project.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"$set": bson.M{"name": name, "description": description}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d projectDocument
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, set, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d.toProject(), nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}
