package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestCreateUser(t *testing.T) {
	users := NewUserService(newTestDB(t))

	user, err := users.Create("alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "alice@example.com" || user.Name != "Alice" {
		t.Fatalf("unexpected user %+v", user)
	}

	got, err := users.Get(user.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("expected %s, got %s", user.Email, got.Email)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	users := NewUserService(newTestDB(t))

	for _, email := range []string{"", "not-an-email", "missing@tld@twice"} {
		_, err := users.Create(email, "Bob")
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("email %q: expected ValidationError, got %v", email, err)
		}
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	users := NewUserService(newTestDB(t))
	mustCreateUser(t, users, "dup@example.com", "First")

	_, err := users.Create("dup@example.com", "Second")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	users := NewUserService(newTestDB(t))

	_, err := users.Get("no-such-id")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListUsersPagination(t *testing.T) {
	users := NewUserService(newTestDB(t))
	for i := 0; i < 5; i++ {
		mustCreateUser(t, users, fmt.Sprintf("user%d@example.com", i), fmt.Sprintf("User %d", i))
	}

	var collected []string
	token := ""
	pages := 0
	for {
		page, next, err := users.List(token, 2)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		pages++
		for _, u := range page {
			collected = append(collected, u.ID)
		}
		if next == "" {
			break
		}
		token = next
	}

	if pages != 3 {
		t.Fatalf("expected 3 pages, got %d", pages)
	}
	if len(collected) != 5 {
		t.Fatalf("expected 5 users across pages, got %d", len(collected))
	}
	seen := make(map[string]bool)
	for _, id := range collected {
		if seen[id] {
			t.Fatalf("user %s appeared on two pages", id)
		}
		seen[id] = true
	}

	// Walking page by page must match a single full listing.
	full, next, err := users.List("", 100)
	if err != nil {
		t.Fatalf("full List failed: %v", err)
	}
	if next != "" {
		t.Fatalf("expected no next token for full listing")
	}
	for i, u := range full {
		if u.ID != collected[i] {
			t.Fatalf("order diverged at %d: %s vs %s", i, u.ID, collected[i])
		}
	}
}

func TestListUsersInvalidToken(t *testing.T) {
	users := NewUserService(newTestDB(t))

	_, _, err := users.List("garbage-token", 10)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
