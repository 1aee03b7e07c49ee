// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSubjectIDCtxKey(t *testing.T) {
	if SubjectIDCtxKey.String() != "subjectID" {
		t.Errorf("expected 'subjectID', got '%s'", SubjectIDCtxKey.String())
	}
}

func TestGetSubjectIDFromContext_Success(t *testing.T) {
	ctx := WithSubjectID(context.Background(), "subject-42")

	subjectID, ok := GetSubjectIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subjectID != "subject-42" {
		t.Errorf("expected subjectID=subject-42, got %s", subjectID)
	}
}

func TestGetSubjectIDFromContext_Missing(t *testing.T) {
	subjectID, ok := GetSubjectIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if subjectID != "" {
		t.Errorf("expected empty subjectID, got %s", subjectID)
	}
}

func TestGetSubjectIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectIDCtxKey, int64(42))

	if _, ok := GetSubjectIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSubjectIDFromContext_Empty(t *testing.T) {
	ctx := WithSubjectID(context.Background(), "")

	if _, ok := GetSubjectIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty subject, got true")
	}
}

func TestGetSubjectIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "subject-99")

	if _, ok := GetSubjectIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
