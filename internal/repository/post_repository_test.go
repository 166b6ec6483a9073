package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/biji-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestRepo(t *testing.T) PostRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}); err != nil {
		t.Fatalf("auto migrate post failed: %v", err)
	}
	return NewPostRepository(db)
}

func TestGetBySlugMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	post, err := repo.GetBySlug("missing")
	if err != nil {
		t.Fatalf("get missing should not error, got %v", err)
	}
	if post != nil {
		t.Fatalf("missing slug should return nil, got %+v", post)
	}
}

func TestSlugUniqueIndexRejectsDuplicate(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Create(&models.Post{Title: "a", Slug: "dup"}); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if err := repo.Create(&models.Post{Title: "b", Slug: "dup"}); err == nil {
		t.Fatalf("duplicate slug insert should fail")
	}
}

func TestCountBySlugExcludesGivenPost(t *testing.T) {
	repo := newTestRepo(t)

	post := &models.Post{Title: "self", Slug: "self"}
	if err := repo.Create(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	count, err := repo.CountBySlug("self", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count without exclusion want 1 got %d", count)
	}

	count, err = repo.CountBySlug("self", &post.ID)
	if err != nil {
		t.Fatalf("count with exclusion failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}

func TestExistsBySlug(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Create(&models.Post{Title: "x", Slug: "taken"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken, err := repo.ExistsBySlug("taken")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !taken {
		t.Fatalf("taken slug should exist")
	}
	free, err := repo.ExistsBySlug("free")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if free {
		t.Fatalf("free slug should not exist")
	}
}

func TestDeleteIsHard(t *testing.T) {
	repo := newTestRepo(t)

	post := &models.Post{Title: "gone", Slug: "gone"}
	if err := repo.Create(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("hard-deleted post should be gone")
	}
	// slug 可以立即复用
	if err := repo.Create(&models.Post{Title: "again", Slug: "gone"}); err != nil {
		t.Fatalf("reuse freed slug failed: %v", err)
	}
}
