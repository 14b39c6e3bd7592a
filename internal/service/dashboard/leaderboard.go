package dashboard

import "github.com/Topethedop/stock-dashboard/internal/domain/stock"

// BuildLeaderboard picks the max and min change percent from quotes.
// Ties keep the earliest quote. Both sides are nil for an empty batch.
func BuildLeaderboard(quotes []stock.Quote) stock.Leaderboard {
	var board stock.Leaderboard
	if len(quotes) == 0 {
		return board
	}

	gainer, loser := 0, 0
	for i := 1; i < len(quotes); i++ {
		if quotes[i].ChangePercent > quotes[gainer].ChangePercent {
			gainer = i
		}
		if quotes[i].ChangePercent < quotes[loser].ChangePercent {
			loser = i
		}
	}

	g, l := quotes[gainer], quotes[loser]
	board.TopGainer = &g
	board.TopLoser = &l
	return board
}
