package repos

import (
	"context"

	"mercadito/internal/domain"
	"mercadito/internal/store"
)

type CommentRepo struct {
	Repo[domain.Comment]
}

func NewCommentRepo(col store.Collection) *CommentRepo {
	return &CommentRepo{Repo[domain.Comment]{col: col}}
}

func (r *CommentRepo) ForProduct(ctx context.Context, productID any) ([]domain.Comment, error) {
	return r.FindBy(ctx, store.Filters{"productId": productID})
}
