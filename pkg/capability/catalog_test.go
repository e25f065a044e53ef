package capability

import (
	"context"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactor/pkg/api"
)

type staticLister []api.HandlerInfo

func (l staticLister) List() []api.HandlerInfo { return l }

func decodeListing(t *testing.T, payload string) map[string][]api.HandlerInfo {
	t.Helper()
	var listing map[string][]api.HandlerInfo
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(payload, &listing))
	return listing
}

func TestCatalog_ListsBothFamilies(t *testing.T) {
	c := NewCatalog(
		staticLister{{Name: "echo", Description: "Echo tool"}, {Name: "clock", Description: "Time tool"}},
		staticLister{{Name: "catalog", Description: "Handler discovery"}},
	)

	payload, err := c.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	assert.Len(t, listing["tools"], 2)
	assert.Len(t, listing["capabilities"], 1)
	assert.Equal(t, "echo", listing["tools"][0].Name)
}

func TestCatalog_QueryFiltersByNameAndDescription(t *testing.T) {
	c := NewCatalog(
		staticLister{{Name: "echo", Description: "Echo tool"}, {Name: "clock", Description: "Reports the time"}},
		staticLister{{Name: "catalog", Description: "Handler discovery"}},
	)

	payload, err := c.Execute(context.Background(), map[string]any{"query": "time"})
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	require.Len(t, listing["tools"], 1)
	assert.Equal(t, "clock", listing["tools"][0].Name)
	assert.Empty(t, listing["capabilities"])
}

func TestCatalog_QueryIsCaseInsensitive(t *testing.T) {
	c := NewCatalog(
		staticLister{{Name: "WordStats", Description: "Counts words"}},
		staticLister{},
	)

	payload, err := c.Execute(context.Background(), map[string]any{"query": "wordstats"})
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	assert.Len(t, listing["tools"], 1)
}
