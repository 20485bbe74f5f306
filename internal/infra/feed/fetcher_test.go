package feed

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `
shop: Connect
categories:
  - id: 224
    name: Smartphones
  - id: 15
    name: Accessories
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 512GB
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Display, inch": "6.5"
      "Internal, GB": "512"
      "Color": gold
`

func TestParsePriceFeed_Success(t *testing.T) {
	feed, err := parsePriceFeed([]byte(sampleFeed))

	require.NoError(t, err)
	assert.Equal(t, "Connect", feed.Shop)
	require.Len(t, feed.Categories, 2)
	assert.Equal(t, int64(224), feed.Categories[0].ID)
	assert.Equal(t, "Smartphones", feed.Categories[0].Name)

	require.Len(t, feed.Goods, 1)
	good := feed.Goods[0]
	assert.Equal(t, int64(4216292), good.ID)
	assert.Equal(t, int64(224), good.Category)
	assert.Equal(t, "apple/iphone/xs-max", good.Model)
	assert.Equal(t, 14, good.Quantity)
	assert.InDelta(t, 110000, good.Price, 0.001)
	assert.Equal(t, "gold", good.Parameters["Color"])
}

func TestParsePriceFeed_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{
			name:    "missing shop",
			body:    "categories: []\ngoods: []\n",
			details: "missing required key: shop",
		},
		{
			name:    "empty shop",
			body:    "shop: \"\"\ncategories: []\ngoods: []\n",
			details: "missing required key: shop",
		},
		{
			name:    "missing categories",
			body:    "shop: Connect\ngoods: []\n",
			details: "missing required key: categories",
		},
		{
			name:    "missing goods",
			body:    "shop: Connect\ncategories: []\n",
			details: "missing required key: goods",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := parsePriceFeed([]byte(tt.body))

			require.Error(t, err)
			assert.Nil(t, feed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrFeedInvalid.ErrorCode(), appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestParsePriceFeed_MalformedYAML(t *testing.T) {
	feed, err := parsePriceFeed([]byte("shop: [unclosed"))

	require.Error(t, err)
	assert.Nil(t, feed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrFeedInvalid.ErrorCode(), appErr.ErrorCode())
}

// Empty lists are valid; a shop may legitimately publish a feed that
// clears its catalog.
func TestParsePriceFeed_EmptyLists(t *testing.T) {
	feed, err := parsePriceFeed([]byte("shop: Connect\ncategories: []\ngoods: []\n"))

	require.NoError(t, err)
	assert.Equal(t, "Connect", feed.Shop)
	assert.Empty(t, feed.Categories)
	assert.Empty(t, feed.Goods)
}
