package model

import (
	"time"
)

// Comment 评论模型
// 作者名在发表时按值存储，后续改名不影响历史评论
type Comment struct {
	ID         int       `json:"id" db:"id" gorm:"primaryKey"`
	AuthorName string    `json:"author_name" db:"author_name" gorm:"size:150;not null" validate:"required,max=150"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	Body       string    `json:"body" db:"body" gorm:"size:200;not null" validate:"required,max=200"`
}
