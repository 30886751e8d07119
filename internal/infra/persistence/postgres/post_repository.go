package postgres

import (
	"context"

	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	"chirp/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. The foreign key on user_id rejects posts
// whose owner no longer exists.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// ListByOwner returns the owner's posts in insertion order: creation
// time ascending with the ID as tiebreak, which keeps the ordering
// stable across calls.
func (repo *postRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&postMs).Error

	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts by owner")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Delete removes the post with a single conditional DELETE matching both
// id and owner, so the ownership predicate is evaluated atomically with
// the deletion. "Not found" and "not yours" are indistinguishable: both
// delete zero rows.
func (repo *postRepository) Delete(ctx context.Context, postID, ownerID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", postID, ownerID).
		Delete(&model.PostModel{})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Text:      data.Text,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:     data.ID,
		Text:   data.Text,
		UserID: data.UserID,
	}
}
