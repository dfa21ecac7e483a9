package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 校验在落库之前完成，这些用例不需要数据库连接

func TestCommentRepository_CreateValidation(t *testing.T) {
	repo := NewCommentRepository(nil)

	tests := []struct {
		name   string
		author string
		body   string
	}{
		{name: "empty body", author: "Ana", body: ""},
		{name: "body too long", author: "Ana", body: strings.Repeat("喵", 201)},
		{name: "empty author", author: "", body: "great movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment, err := repo.Create(tt.author, tt.body)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, comment)
		})
	}
}
