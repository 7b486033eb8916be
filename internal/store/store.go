// Package store exposes typed accessors over the four relations. It is the
// only package that talks to the database; uniqueness and not-found
// conditions are translated to apperr kinds at this boundary.
package store

import (
	"errors"
	"fmt"

	"quibble/internal/apperr"
	"quibble/internal/models"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps gorm errors onto the service taxonomy.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, apperr.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// Users

func (s *Store) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error, "create user")
}

func (s *Store) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get user")
	}
	return &u, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("name ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "list users")
	}
	return users, nil
}

func (s *Store) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, translate(err, "count users")
	}
	return count, nil
}

// Posts

func (s *Store) CreatePost(p *models.Post) error {
	return translate(s.db.Create(p).Error, "create post")
}

func (s *Store) GetPost(id string) (*models.Post, error) {
	var p models.Post
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get post")
	}
	return &p, nil
}

func (s *Store) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translate(err, "list posts")
	}
	return posts, nil
}
