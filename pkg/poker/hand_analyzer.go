package poker

import (
	"sort"

	"fivecarddraw/pkg/deck"
)

// rankGroup is every card of a single rank
type rankGroup struct {
	rank  int
	count int
}

// HandAnalyzer classifies a five-card hand and provides its comparison keys
// The analysis only depends on the ranks and suits of the cards, never on their order.
type HandAnalyzer struct {
	cards    []deck.Card
	ranks    []int
	groups   []rankGroup
	flush    bool
	straight int

	category Category
}

// New will return a new HandAnalyzer instance
func New(cards []deck.Card) *HandAnalyzer {
	newCards := make([]deck.Card, len(cards))
	copy(newCards, cards)

	sort.Sort(sort.Reverse(sortByRank(newCards)))

	h := &HandAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h
}

// analyzeHand collects the flush, straight and rank groups
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.ranks = make([]int, len(h.cards))
	counts := make(map[int]int, len(h.cards))
	for i, card := range h.cards {
		h.ranks[i] = card.Rank
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})
	h.groups = groups

	if len(h.cards) == 0 {
		return
	}

	h.flush = true
	for _, card := range h.cards {
		if card.Suit != h.cards[0].Suit {
			h.flush = false
			break
		}
	}

	h.straight = straightHigh(h.ranks)
}

// calculateCategory walks the ladder from the strongest category down
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	if len(h.cards) != deck.HandSize {
		h.category = Invalid
		return
	}

	if h.GetRoyalFlush() {
		h.category = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.category = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.category = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.category = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.category = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.category = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.category = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.category = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.category = OnePair
	} else {
		h.category = HighCard
	}
}

// Category returns the category of the hand
func (h *HandAnalyzer) Category() Category {
	return h.category
}

// RankIndex returns the category's position on the ladder, 0 is the strongest
func (h *HandAnalyzer) RankIndex() int {
	return h.category.RankIndex()
}

// Cards returns the cards sorted from highest to lowest rank
func (h *HandAnalyzer) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

// count returns the size of the n-th largest rank group
func (h *HandAnalyzer) count(n int) int {
	if n >= len(h.groups) {
		return 0
	}

	return h.groups[n].count
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.flush && h.straight == deck.Ace
}

// GetStraightFlush will return the high card of a straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if h.count(0) == 4 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetFullHouse will return the rank of the trips and the rank of the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if h.count(0) == 3 && h.count(1) == 2 {
		return []int{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetFlush will return the ranks of the flush from highest to lowest, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush {
		return h.values(), true
	}

	return nil, false
}

// GetStraight will return the high card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if h.count(0) == 3 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetTwoPair will return the ranks of both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if h.count(0) == 2 && h.count(1) == 2 {
		return []int{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetPair will return the rank of the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if h.count(0) == 2 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetHighCard will return every rank from highest to lowest
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	if len(h.ranks) == 0 {
		return nil, false
	}

	return h.values(), true
}

func (h *HandAnalyzer) values() []int {
	ranks := make([]int, len(h.ranks))
	copy(ranks, h.ranks)

	return ranks
}

// PrimaryValue returns the first tie-breaker after the category
// That's the rank of the quads, trips or pair, the higher pair of a two pair, the trips
// of a full house, the high end of a straight, or the highest card otherwise.
func (h *HandAnalyzer) PrimaryValue() int {
	switch h.category {
	case FourOfAKind, ThreeOfAKind, OnePair, TwoPair, FullHouse:
		return h.groups[0].rank
	case RoyalFlush, StraightFlush, Straight:
		return h.straight
	case Flush, HighCard:
		return h.ranks[0]
	default:
		return 0
	}
}

// SecondaryValues returns every rank except the primary value, repeated once per card,
// from highest to lowest
func (h *HandAnalyzer) SecondaryValues() []int {
	primary := h.PrimaryValue()

	values := make([]int, 0, len(h.ranks))
	for _, rank := range h.ranks {
		if rank != primary {
			values = append(values, rank)
		}
	}

	return values
}
