package model

import (
	"time"
)

// Movie 电影模型（标题即主键，创建后不可修改）
type Movie struct {
	Title       string    `json:"title" db:"title" gorm:"size:100;primaryKey" validate:"required,max=100"`
	Author      string    `json:"author" db:"author" gorm:"size:80;not null" validate:"required,max=80"`
	Genre       string    `json:"genre" db:"genre" gorm:"size:30;not null" validate:"required,max=30"`
	Duration    string    `json:"duration" db:"duration" gorm:"size:30;not null" validate:"required,max=30"`
	ReleaseDate string    `json:"release_date" db:"release_date" gorm:"size:100;not null" validate:"required,max=100"`
	Budget      string    `json:"budget" db:"budget" gorm:"size:100;not null" validate:"required,max=100"`
	Description string    `json:"description" db:"description" gorm:"size:200;not null" validate:"required,max=200"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
