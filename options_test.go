package bptree

import (
	"errors"
	"testing"
)

func TestNewDefaultOrder(t *testing.T) {
	tree, err := New[int, string]()
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	if tree.order != DefaultOrder {
		t.Errorf("order: expected %d, got %d", DefaultOrder, tree.order)
	}
}

func TestWithOrderRejectsBelowMinimum(t *testing.T) {
	if _, err := New[int, string](WithOrder(2)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("WithOrder(2): expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestWithOrderAccepted(t *testing.T) {
	tree, err := New[int, string](WithOrder(minOrder))
	if err != nil {
		t.Fatalf("WithOrder(%d): %v", minOrder, err)
	}
	if tree.order != minOrder {
		t.Errorf("order: expected %d, got %d", minOrder, tree.order)
	}
}

func TestNewWithTransformRejectsNilTransform(t *testing.T) {
	if _, err := NewWithTransform[string, int, int](nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewWithTransform(nil): expected ErrInvalidConfiguration, got %v", err)
	}
}
