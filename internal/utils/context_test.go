// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/biz-records/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for string value")
	}
}

func TestWithUser_RoundTrip(t *testing.T) {
	user := models.User{ID: 7, Username: "testUser", IsActive: true}

	ctx := WithUser(context.Background(), user)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if got.Username != "testUser" {
		t.Errorf("expected username 'testUser', got '%s'", got.Username)
	}

	id, ok := GetUserIDFromContext(ctx)
	if !ok || id != 7 {
		t.Errorf("expected user id 7, got %d (ok=%v)", id, ok)
	}
}
