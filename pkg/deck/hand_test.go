package deck

import (
	"testing"

	"fivecarddraw/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", h.String())
}

func TestHand_DealHand(t *testing.T) {
	d := NewUnshuffled(nil)

	var h Hand
	assert.Equal(t, 0, len(h))

	h.DealHand(d)
	assert.Equal(t, "2c,3c,4c,5c,6c", h.String())
	assert.Equal(t, 47, d.Remaining())

	h.DealHand(d)
	assert.Equal(t, "7c,8c,9c,10c,11c", h.String())

	for d.Remaining() > 2 {
		d.Deal()
	}

	h.DealHand(d)
	assert.Equal(t, "13s,14s", h.String())
}

func TestHand_SwapCards(t *testing.T) {
	a := assert.New(t)

	d := NewUnshuffled(rng.NewSeeded(1))
	var h Hand
	h.DealHand(d)

	replaced := h.SwapCards([]int{0, 2, 2, 7, -1}, d)
	a.Equal("2c,4c", CardsToString(replaced))
	a.Equal("7c,3c,8c,5c,6c", h.String())

	// swap conservation: the cursor moves by the number of swaps and the undealt
	// region keeps its size because the discards are put back into it
	a.Equal(7, d.Dealt())
	a.Equal(47, d.Remaining())
	a.Equal(54, d.Len())
	a.Contains(d.Undealt(), CardFromString("2c"))
	a.Contains(d.Undealt(), CardFromString("4c"))
}

func TestHand_SwapCards_Conservation(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		d := New(rng.NewSeeded(seed))
		var h, other Hand
		h.DealHand(d)
		other.DealHand(d)
		before := d.Remaining()

		replaced := h.SwapCards([]int{4, 1, 3}, d)
		assert.Equal(t, 3, len(replaced))
		assert.Equal(t, before, d.Remaining())

		// the cards in play are still the 52 distinct cards
		inPlay := append(append(d.Undealt(), h...), other...)
		assertFullDeck(t, inPlay)
	}
}

func TestHand_SwapCards_EmptyDeck(t *testing.T) {
	d := NewUnshuffled(nil)
	var h Hand
	h.DealHand(d)
	for d.Remaining() > 1 {
		d.Deal()
	}

	replaced := h.SwapCards([]int{0, 1, 2}, d)
	assert.Equal(t, 1, len(replaced))
	assert.Equal(t, "14s,3c,4c,5c,6c", h.String())
	assert.Equal(t, []Card{CardFromString("2c")}, d.Undealt())
}

func TestHand_SetNumbers(t *testing.T) {
	var h Hand
	h.SetNumbers([]int{412, 209, 114, 302, 110})
	assert.Equal(t, "12s,9d,14c,2h,10c", h.String())
	assert.Equal(t, []int{412, 209, 114, 302, 110}, h.Numbers())
}

func TestHand_SortByRank(t *testing.T) {
	h := Hand(CardsFromString("14c,2d,10h,2c,5s"))
	h.SortByRank()
	assert.Equal(t, "2c,2d,5s,10h,14c", h.String())
}

func TestHand_SortByGroup(t *testing.T) {
	h := Hand(CardsFromString("3c,9d,3s,9h,3h"))
	h.SortByGroup()
	assert.Equal(t, "3c,3s,3h,9d,9h", h.String())

	h = Hand(CardsFromString("2c,14d,5s,5h,10c"))
	h.SortByGroup()
	assert.Equal(t, "5s,5h,14d,10c,2c", h.String())
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("2c,3c"))
	h2 := h.Clone()
	h2[0] = CardFromString("14s")
	assert.Equal(t, "2c,3c", h.String())
}
