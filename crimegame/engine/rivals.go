package engine

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Rival names are flavor for the locally synthesized leaderboard; there is
// no networking behind it.
var rivalNames = []string{
	"Vinnie Two-Times", "The Accountant", "Mad Dog Marla", "Silk", "El Fantasma",
	"Knuckles O'Brien", "Countess K", "The Plumber", "Shadow Lee", "Big Tony",
}

// LeaderboardEntry is one row of the synthesized rivals board.
type LeaderboardEntry struct {
	Name     string
	NetWorth float64
	IsPlayer bool
}

// Leaderboard synthesizes up to n rivals clustered around the player's net
// worth and returns the board sorted richest first, with the player's own
// row included. Rival wealth is deterministic for one account: the account
// start time seeds the generator, so the board doesn't reshuffle every call.
func (e *Engine) Leaderboard(n int) []LeaderboardEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n > len(rivalNames) {
		n = len(rivalNames)
	}

	rng := rand.New(rand.NewPCG(uint64(e.state.StartTime), 0x1d1ec7e5))
	anchor := math.Max(1000, e.state.NetWorth)

	board := make([]LeaderboardEntry, 0, n+1)
	for i := 0; i < n; i++ {
		// Spread rivals across 0.2x..5x of the player's wealth.
		factor := math.Pow(5, rng.Float64()*2-1)
		board = append(board, LeaderboardEntry{
			Name:     rivalNames[i],
			NetWorth: math.Floor(anchor * factor),
		})
	}
	board = append(board, LeaderboardEntry{
		Name:     "You",
		NetWorth: e.state.NetWorth,
		IsPlayer: true,
	})

	sort.Slice(board, func(i, j int) bool {
		return board[i].NetWorth > board[j].NetWorth
	})
	return board
}
