package services

import (
	"fmt"
	"strings"
	"testing"

	"quibble/internal/db"
	"quibble/internal/models"
	"quibble/internal/store"
	"quibble/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	gdb      *gorm.DB
	store    *store.Store
	threads  *ThreadService
	comments *CommentService
	likes    *LikeService
}

func newTestEnv(t *testing.T, policy DeletePolicy) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cache, err := utils.NewCache(16)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	st := store.New(gdb)
	threads := NewThreadService(st, cache)
	return &testEnv{
		gdb:      gdb,
		store:    st,
		threads:  threads,
		comments: NewCommentService(st, threads, policy),
		likes:    NewLikeService(st, threads),
	}
}

func (e *testEnv) user(t *testing.T, name string) models.User {
	t.Helper()
	u := models.User{Name: name}
	if err := e.store.CreateUser(&u); err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return u
}

func (e *testEnv) post(t *testing.T, title string) models.Post {
	t.Helper()
	p := models.Post{Title: title, Body: "body of " + title}
	if err := e.store.CreatePost(&p); err != nil {
		t.Fatalf("failed to create post %s: %v", title, err)
	}
	return p
}
