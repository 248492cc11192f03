package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/micropost/micropost/internal/core/domain"
)

const archiveCollection = "post_archive"

// ArchiveRepository mirrors published posts into a MongoDB collection for
// durable audit and export. Redis remains the source of truth for serving;
// the archive is write-through only and never read on the request path.
type ArchiveRepository struct {
	coll *mongo.Collection
}

// NewArchiveRepository creates an ArchiveRepository on the post_archive
// collection.
func NewArchiveRepository(db *mongo.Database) *ArchiveRepository {
	return &ArchiveRepository{coll: db.Collection(archiveCollection)}
}

// Insert stores one archived post document.
func (r *ArchiveRepository) Insert(ctx context.Context, post *domain.Post) error {
	doc := bson.M{
		"post_id":     post.ID,
		"author_id":   post.AuthorID,
		"author_name": post.AuthorName,
		"message":     post.Message,
		"created_at":  post.CreatedAt.UTC(),
		"archived_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("archive post %d: %w", post.ID, err)
	}
	return nil
}
