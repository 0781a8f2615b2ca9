package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

func newProduct(title string, price float64) *models.Product {
	return &models.Product{
		ID:    uuid.Must(uuid.NewV7()),
		Title: title,
		Price: price,
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()
	game := newProduct("Galaxy Strike", 199.90)

	c.AddItem(game)
	c.AddItem(game)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	game := newProduct("Galaxy Strike", 199.90)
	c.AddItem(game)

	c.UpdateQuantity(game.ID, 0)

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	game := newProduct("Galaxy Strike", 199.90)
	c.AddItem(game)

	c.UpdateQuantity(game.ID, -3)

	assert.Empty(t, c.Items())
}

func TestUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(newProduct("Galaxy Strike", 199.90))

	c.UpdateQuantity(uuid.Must(uuid.NewV7()), 5)

	assert.Equal(t, 1, c.ItemCount())
}

func TestTotalSumsPriceTimesQuantity(t *testing.T) {
	c := New()
	racing := newProduct("Turbo Racing", 100)
	rpg := newProduct("Dungeon of Echoes", 250)

	c.AddItem(racing)
	c.AddItem(rpg)
	c.UpdateQuantity(racing.ID, 3)

	assert.InDelta(t, 550, c.Total(), 0.001)
	assert.Equal(t, 4, c.ItemCount())
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	c := New()
	racing := newProduct("Turbo Racing", 100)
	rpg := newProduct("Dungeon of Echoes", 250)
	c.AddItem(racing)
	c.AddItem(rpg)
	c.UpdateQuantity(racing.ID, 5)

	c.RemoveItem(racing.ID)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, rpg.ID, items[0].Product.ID)
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	c := New()
	first := newProduct("First", 10)
	second := newProduct("Second", 20)
	third := newProduct("Third", 30)

	c.AddItem(first)
	c.AddItem(second)
	c.AddItem(third)
	// Re-adding must not move the line
	c.AddItem(first)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, first.ID, items[0].Product.ID)
	assert.Equal(t, second.ID, items[1].Product.ID)
	assert.Equal(t, third.ID, items[2].Product.ID)
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(newProduct("Galaxy Strike", 199.90))
	c.AddItem(newProduct("Turbo Racing", 100))

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Zero(t, c.ItemCount())
	assert.Zero(t, c.Total())
}
