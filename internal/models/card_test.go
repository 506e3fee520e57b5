package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityWeight(t *testing.T) {
	assert.Equal(t, 5, RarityGold.Weight())
	assert.Equal(t, 3, RaritySilver.Weight())
	assert.Equal(t, 1, RarityBronze.Weight())

	// Unrecognized tiers count as 1 instead of failing.
	assert.Equal(t, 1, Rarity("platinum").Weight())
	assert.Equal(t, 1, Rarity("").Weight())
}

func TestRarityValid(t *testing.T) {
	assert.True(t, RarityBronze.Valid())
	assert.True(t, RaritySilver.Valid())
	assert.True(t, RarityGold.Valid())
	assert.False(t, Rarity("platinum").Valid())
}

func TestConditionValid(t *testing.T) {
	for _, c := range []Condition{ConditionMint, ConditionGood, ConditionFair, ConditionPoor} {
		assert.True(t, c.Valid())
	}
	assert.False(t, Condition("destroyed").Valid())
}
