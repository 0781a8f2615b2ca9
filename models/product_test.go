package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	orig := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		price    float64
		original *float64
		want     int
	}{
		{"no original price", 100, nil, 0},
		{"original below price", 100, orig(80), 0},
		{"original equals price", 100, orig(100), 0},
		{"half off", 100, orig(200), 50},
		{"rounds to nearest", 299.90, orig(349.90), 14},
		{"rounds up", 66, orig(100), 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestHasDiscount(t *testing.T) {
	orig := 150.0

	assert.False(t, (&Product{Price: 100}).HasDiscount())
	assert.True(t, (&Product{Price: 100, OriginalPrice: &orig}).HasDiscount())
}

func TestPlatformIsValid(t *testing.T) {
	assert.True(t, PlatformPS5.IsValid())
	assert.True(t, Platform("Xbox Series X/S").IsValid())
	assert.False(t, Platform("Switch").IsValid())
	assert.False(t, Platform("").IsValid())
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryRacing.IsValid())
	assert.False(t, Category("Puzzle").IsValid())
}
