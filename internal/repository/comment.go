package repository

import (
	"fmt"
	"time"

	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/utils"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 发表评论，正文为空或超长时返回 ErrValidation
// 时间取当前时刻，秒级精度；作者名按值落库
func (r *CommentRepository) Create(authorName, body string) (*model.Comment, error) {
	comment := &model.Comment{
		AuthorName: authorName,
		CreatedAt:  time.Now().Truncate(time.Second),
		Body:       body,
	}

	if err := utils.Validate.Struct(comment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := r.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return comment, nil
}

// List 按发表顺序返回全部评论
func (r *CommentRepository) List() ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := r.db.Order("id ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return comments, nil
}

// ClearAll 清空全部评论，返回删除条数；空表返回 0，不视为错误
func (r *CommentRepository) ClearAll() (int64, error) {
	res := r.db.Exec("DELETE FROM comments")
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, res.Error)
	}
	return res.RowsAffected, nil
}

// Count 获取评论总数
func (r *CommentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return count, nil
}
