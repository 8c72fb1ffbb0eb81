package shelter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	pets, err := DefaultRoster()
	require.NoError(t, err)
	require.Len(t, pets, 8)

	dogs, cats := 0, 0
	for _, p := range pets {
		switch p.Type {
		case "dog":
			dogs++
		case "cat":
			cats++
		default:
			t.Fatalf("unexpected pet type %q", p.Type)
		}
		assert.True(t, p.Available, "seed pet %s must start available", p.Name)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Breed)
	}
	assert.Equal(t, 4, dogs)
	assert.Equal(t, 4, cats)
}

func TestNewSeeded(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	assert.Equal(t, 8, s.Len())
	assert.Len(t, s.ListAvailable(), 8)
}

func TestNewSeeded_DogOrder(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	got := s.Search("dog", "")
	assert.Equal(t, []string{"Luna", "Teddy", "Charlie", "Aster"}, names(got))
}

func TestNewSeeded_AdoptionExcludesFromSearch(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	require.True(t, s.Adopt("Luna"))
	got := s.Search("dog", "")
	assert.Equal(t, []string{"Teddy", "Charlie", "Aster"}, names(got))
}

func TestNewSeeded_AdoptUnknownLeavesRosterUnchanged(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	before := len(s.ListAvailable())
	assert.False(t, s.Adopt("Nonexistent"))
	assert.Equal(t, before, len(s.ListAvailable()))
}
