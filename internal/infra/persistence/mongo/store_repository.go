package mongo

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"
	"storehub/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ repository.StoreRepository = (*storeRepository)(nil)

type storeRepository struct {
	col *mongod.Collection
}

// NewStoreRepository returns a StoreRepository over the stores collection.
func NewStoreRepository(db *mongod.Database) repository.StoreRepository {
	return &storeRepository{col: db.Collection(colStores)}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	t := now()
	store.CreatedAt = t
	store.UpdatedAt = t

	if _, err := r.col.InsertOne(ctx, storeToDoc(store)); err != nil {
		return errors.Wrap(err, "failed to create store")
	}

	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var doc storeDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return storeFromDoc(&doc), nil
}

func (r *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

func (r *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	f := bson.M{}
	if filter.Status != "" {
		f["status"] = filter.Status.String()
	}
	if filter.VendorID != uuid.Nil {
		f["vendor_id"] = filter.VendorID.String()
	}
	if filter.Keyword != "" {
		re := keywordRegex(filter.Keyword)
		if filter.NameOnly {
			f["name"] = re
		} else {
			f["$or"] = bson.A{
				bson.M{"name": re},
				bson.M{"category": re},
				bson.M{"address.area": re},
				bson.M{"address.city": re},
				bson.M{"address.district": re},
			}
		}
	}

	return r.find(ctx, f, options.Find().SetSort(bson.D{
		{Key: "rating", Value: -1},
		{Key: "created_at", Value: -1},
	}))
}

func (r *storeRepository) find(ctx context.Context, filter bson.M, opts ...options.Lister[options.FindOptions]) ([]*entity.Store, error) {
	cursor, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	var docs []storeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode stores")
	}

	result := make([]*entity.Store, len(docs))
	for i := range docs {
		result[i] = storeFromDoc(&docs[i])
	}

	return result, nil
}

func (r *storeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.StoreStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id.String(), "status": from.String()},
		bson.M{"$set": bson.M{"status": to.String(), "updated_at": now()}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update store status")
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: tell a missing store apart from a status race.
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to check store existence")
	}
	if count == 0 {
		return repository.ErrStoreNotFound
	}

	return repository.ErrStatusConflict
}

func (r *storeRepository) SaveReviews(ctx context.Context, store *entity.Store) error {
	store.UpdatedAt = now()
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": store.ID.String()},
		bson.M{"$set": bson.M{
			"reviews":      reviewsToDocs(store.Reviews),
			"rating":       store.Rating,
			"review_count": store.ReviewCount,
			"updated_at":   store.UpdatedAt,
		}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to save reviews")
	}
	if res.MatchedCount == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return errors.Wrap(err, "failed to delete store")
	}

	return nil
}

func (r *storeRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete stores")
	}

	return res.DeletedCount, nil
}
