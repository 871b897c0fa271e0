package visitor

import (
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCensusVisitor(t *testing.T) {
	zoo := NewZoo()
	defer zoo.Close()
	require.NoError(t, zoo.AddAnimal(NewLion("Simba")))
	require.NoError(t, zoo.AddAnimal(NewTiger("Shere Khan")))
	require.NoError(t, zoo.AddAnimal(NewLion("Mufasa")))

	census := NewCensusVisitor()
	zoo.Accept(census)

	assert.Equal(t, Census{
		Lions:  []string{"Simba", "Mufasa"},
		Tigers: []string{"Shere Khan"},
		Total:  3,
	}, census.Census())

	data, err := census.JSON()
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(data), `{
		"lions": ["Simba", "Mufasa"],
		"tigers": ["Shere Khan"],
		"total": 3
	}`)
}

func TestCensusVisitor_Empty(t *testing.T) {
	census := NewCensusVisitor()
	expected := string(errorx.Ignore(jsoniter.Marshal(Census{Lions: []string{}, Tigers: []string{}})))
	actual := string(errorx.Ignore(census.JSON()))
	assert.JSONEq(t, expected, actual)
}

func TestCensusVisitor_CopyIsDetached(t *testing.T) {
	census := NewCensusVisitor()
	NewLion("Simba").Accept(census)
	snapshot := census.Census()
	snapshot.Lions[0] = "Scar"
	assert.Equal(t, []string{"Simba"}, census.Census().Lions)
}
