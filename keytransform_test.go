package bptree

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestKeyTransformFunc(t *testing.T) {
	lower := KeyTransformFunc[string, string](strings.ToLower)
	if got := lower.Transform("HELLO"); got != "hello" {
		t.Errorf("Transform(HELLO) = %q, want %q", got, "hello")
	}
}

func TestNewWithTransformCaseInsensitiveKeys(t *testing.T) {
	tree, err := NewWithTransform[string, string, int](KeyTransformFunc[string, string](strings.ToLower), WithOrder(4))
	if err != nil {
		t.Fatalf("NewWithTransform: %v", err)
	}

	if err := tree.Insert("Hello", 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tree.Insert("HELLO", 2); err == nil {
		t.Fatal("expected ErrDuplicateKey: Hello and HELLO collapse to the same stored key")
	}

	got, err := tree.Search("hello")
	if err != nil || got != 1 {
		t.Errorf("Search(hello) = %d, %v; want 1, nil", got, err)
	}
}

func TestMockKeyTransformer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockKeyTransformer[string, int](ctrl)
	mock.EXPECT().Transform("a").Return(1)
	mock.EXPECT().Transform("b").Return(2)

	tree, err := NewWithTransform[string, int, string](mock, WithOrder(4))
	if err != nil {
		t.Fatalf("NewWithTransform: %v", err)
	}

	if err := tree.Insert("a", "first"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tree.Insert("b", "second"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if tree.Size() != 2 {
		t.Errorf("Size(): expected 2, got %d", tree.Size())
	}
}
