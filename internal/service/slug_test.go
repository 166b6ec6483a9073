package service

import (
	"context"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"basic", "My First Post!", "my-first-post"},
		{"already clean", "hello-world", "hello-world"},
		{"whitespace runs", "a   b\t\tc", "a-b-c"},
		{"hyphen runs", "a --- b", "a-b"},
		{"leading trailing", "  -hello-  ", "hello"},
		{"symbols stripped", "C++ & Go: 2026?", "c-go-2026"},
		{"unicode letters kept", "你好 世界", "你好-世界"},
		{"digits", "Top 10 Tips", "top-10-tips"},
		{"symbols only", "!!!???", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Fatalf("Slugify(%q) want %q got %q", tc.title, tc.want, got)
			}
		})
	}
}

func TestCreateSlugProbesSequence(t *testing.T) {
	svc := newTestPostService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, PostInput{Title: "Hello World"})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if first.Slug != "hello-world" {
		t.Fatalf("first slug want hello-world got %s", first.Slug)
	}

	second, err := svc.Create(ctx, PostInput{Title: "Hello World"})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	if second.Slug != "hello-world-1" {
		t.Fatalf("second slug want hello-world-1 got %s", second.Slug)
	}

	third, err := svc.Create(ctx, PostInput{Title: "Hello, World?"})
	if err != nil {
		t.Fatalf("create third failed: %v", err)
	}
	if third.Slug != "hello-world-2" {
		t.Fatalf("third slug want hello-world-2 got %s", third.Slug)
	}
}

func TestCreateSlugSymbolOnlyTitleFallsBack(t *testing.T) {
	svc := newTestPostService(t)

	post, err := svc.Create(context.Background(), PostInput{Title: "!!!"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Slug == "" {
		t.Fatalf("slug should never be empty")
	}
}

func TestEditSlugKeepsBaseWhenTitleUnchanged(t *testing.T) {
	svc := newTestPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, PostInput{Title: "Stable Title"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, post.Slug, PostInput{Title: "Stable Title", Description: "edited"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "stable-title" {
		t.Fatalf("slug should stay stable-title, got %s", updated.Slug)
	}
}

func TestEditSlugCollisionGetsTimestampSuffix(t *testing.T) {
	svc := newTestPostService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, PostInput{Title: "Taken Title"}); err != nil {
		t.Fatalf("create taken failed: %v", err)
	}
	other, err := svc.Create(ctx, PostInput{Title: "Other Title"})
	if err != nil {
		t.Fatalf("create other failed: %v", err)
	}

	updated, err := svc.Update(ctx, other.Slug, PostInput{Title: "Taken Title"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug == "taken-title" {
		t.Fatalf("edit must not steal an occupied slug")
	}
	if !strings.HasPrefix(updated.Slug, "taken-title-") {
		t.Fatalf("edit collision slug want taken-title-<ts> got %s", updated.Slug)
	}
}
