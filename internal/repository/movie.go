package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/utils"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// MovieUpdate 编辑电影时可替换的字段（标题不在其中，主键不可变）
type MovieUpdate struct {
	Author      string `json:"author" validate:"required,max=80"`
	Genre       string `json:"genre" validate:"required,max=30"`
	Duration    string `json:"duration" validate:"required,max=30"`
	ReleaseDate string `json:"release_date" validate:"required,max=100"`
	Budget      string `json:"budget" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=200"`
}

// Create 录入电影，标题重复时返回 ErrDuplicateTitle
func (r *MovieRepository) Create(movie *model.Movie) error {
	if err := utils.Validate.Struct(movie); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	movie.CreatedAt = time.Now()
	if err := r.db.Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}

// List 按录入顺序返回全部电影
func (r *MovieRepository) List() ([]*model.Movie, error) {
	var movies []*model.Movie
	if err := r.db.Order("created_at ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return movies, nil
}

// FindByTitle 根据标题查找电影
func (r *MovieRepository) FindByTitle(title string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Where("title = ?", title).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &movie, nil
}

// Update 替换指定标题电影的可变字段，查找和写入在同一事务内
func (r *MovieRepository) Update(title string, fields MovieUpdate) (*model.Movie, error) {
	if err := utils.Validate.Struct(fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var movie model.Movie
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title = ?", title).First(&movie).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}

		movie.Author = fields.Author
		movie.Genre = fields.Genre
		movie.Duration = fields.Duration
		movie.ReleaseDate = fields.ReleaseDate
		movie.Budget = fields.Budget
		movie.Description = fields.Description

		if err := tx.Save(&movie).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Count 获取电影总数
func (r *MovieRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Movie{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return count, nil
}

// Delete 删除电影，标题不存在时返回 ErrNotFound
func (r *MovieRepository) Delete(title string) error {
	res := r.db.Where("title = ?", title).Delete(&model.Movie{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
