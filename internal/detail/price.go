package detail

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// CoinPrefix precedes every numeric price.
	CoinPrefix = "⏣ "

	NotBuyable  = "Not Buyable"
	NotSellable = "Not Sellable"
)

// BuyPrice is the shop price: the cost rounded up, or NotBuyable when the
// item is not listed in the shop.
func BuyPrice(cost float64, showInShop bool) string {
	if !showInShop {
		return NotBuyable
	}
	return coins(math.Ceil(cost))
}

// SellPrice is the price the shop pays for an item, by type (case-insensitive):
// collectables cannot be sold, loot boxes sell for their raw cost, tools,
// power-ups and item packs for a tenth of the cost rounded up, and everything
// else for the cost rounded up.
func SellPrice(cost float64, itemType string) string {
	switch strings.ToLower(itemType) {
	case "collectable":
		return NotSellable
	case "loot box":
		return CoinPrefix + humanize.Commaf(cost)
	case "tool", "power-up", "item pack":
		return coins(math.Ceil(cost / 10))
	default:
		return coins(math.Ceil(cost))
	}
}

func coins(whole float64) string {
	return CoinPrefix + humanize.Comma(int64(whole))
}
