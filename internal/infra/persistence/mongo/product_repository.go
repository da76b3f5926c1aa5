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

var _ repository.ProductRepository = (*productRepository)(nil)

type productRepository struct {
	col *mongod.Collection
}

// NewProductRepository returns a ProductRepository over the products collection.
func NewProductRepository(db *mongod.Database) repository.ProductRepository {
	return &productRepository{col: db.Collection(colProducts)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	t := now()
	product.CreatedAt = t
	product.UpdatedAt = t

	if _, err := r.col.InsertOne(ctx, productToDoc(product)); err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return productFromDoc(&doc), nil
}

func (r *productRepository) ListByStore(ctx context.Context, storeID uuid.UUID, keyword string) ([]*entity.Product, error) {
	f := bson.M{"store_id": storeID.String()}
	if keyword != "" {
		f["name"] = keywordRegex(keyword)
	}

	return r.find(ctx, f)
}

func (r *productRepository) ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Product, error) {
	if len(storeIDs) == 0 {
		return []*entity.Product{}, nil
	}

	return r.find(ctx, bson.M{"store_id": bson.M{"$in": idStrings(storeIDs)}})
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]*entity.Product, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	result := make([]*entity.Product, len(docs))
	for i := range docs {
		result[i] = productFromDoc(&docs[i])
	}

	return result, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (r *productRepository) DeleteByStores(ctx context.Context, storeIDs []uuid.UUID) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	res, err := r.col.DeleteMany(ctx, bson.M{"store_id": bson.M{"$in": idStrings(storeIDs)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete products")
	}

	return res.DeletedCount, nil
}
