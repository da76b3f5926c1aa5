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

var _ repository.AccountRepository = (*accountRepository)(nil)

type accountRepository struct {
	col *mongod.Collection
}

// NewAccountRepository returns an AccountRepository over the accounts collection.
func NewAccountRepository(db *mongod.Database) repository.AccountRepository {
	return &accountRepository{col: db.Collection(colAccounts)}
}

func (r *accountRepository) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var doc accountDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return accountFromDoc(&doc), nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	t := now()
	account.CreatedAt = t
	account.UpdatedAt = t

	if _, err := r.col.InsertOne(ctx, accountToDoc(account)); err != nil {
		if mongod.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

func (r *accountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	cursor, err := r.col.Find(ctx,
		bson.M{"role": role.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	var docs []accountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts")
	}

	result := make([]*entity.Account, len(docs))
	for i := range docs {
		result[i] = accountFromDoc(&docs[i])
	}

	return result, nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

func (r *accountRepository) updateFavorites(ctx context.Context, accountID uuid.UUID, op string, storeID uuid.UUID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": accountID.String()},
		bson.M{
			op:     bson.M{"favorites": storeID.String()},
			"$set": bson.M{"updated_at": now()},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to apply %s on favorites", op)
	}
	if res.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) AddFavorite(ctx context.Context, accountID, storeID uuid.UUID) error {
	return r.updateFavorites(ctx, accountID, "$addToSet", storeID)
}

func (r *accountRepository) RemoveFavorite(ctx context.Context, accountID, storeID uuid.UUID) error {
	return r.updateFavorites(ctx, accountID, "$pull", storeID)
}

func (r *accountRepository) RemoveFavoritesEverywhere(ctx context.Context, storeIDs []uuid.UUID) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	ids := idStrings(storeIDs)
	res, err := r.col.UpdateMany(ctx,
		bson.M{"favorites": bson.M{"$in": ids}},
		bson.M{
			"$pull": bson.M{"favorites": bson.M{"$in": ids}},
			"$set":  bson.M{"updated_at": now()},
		},
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to scrub favorites")
	}

	return res.ModifiedCount, nil
}
