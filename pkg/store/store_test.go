package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/store"
)

func TestRegisterGetDelete(t *testing.T) {
	s := store.New()

	id, err := s.Register("identity", "round-tripped", `[{"name":"identity"}]`)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	g, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "identity", g.Name)
	assert.Equal(t, `[{"name":"identity"}]`, g.Document)

	require.NoError(t, s.Delete(id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegister_RequiresNameAndDocument(t *testing.T) {
	s := store.New()

	_, err := s.Register("", "", "doc")
	assert.ErrorIs(t, err, store.ErrNameRequired)

	_, err = s.Register("name", "", "")
	assert.ErrorIs(t, err, store.ErrDocumentRequired)
}

func TestList_ReturnsSummariesWithoutDocumentBody(t *testing.T) {
	s := store.New()
	_, err := s.Register("a", "", "doc-a")
	require.NoError(t, err)
	_, err = s.Register("b", "", "doc-b")
	require.NoError(t, err)

	summaries := s.List()
	assert.Len(t, summaries, 2)
	names := []string{summaries[0].Name, summaries[1].Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestGet_UnknownIDFails(t *testing.T) {
	s := store.New()
	_, err := s.Get("does-not-exist")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
