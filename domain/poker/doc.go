// Package poker implements the card model and hand-existence evaluation used
// by the odds simulator.
//
// # Core Types
//
// Card: a playing card identified by an integer in [0,52), with
// rank = id/4 (two through ace) and suit = id%4 (clubs, diamonds, hearts,
// spades).
//
// HandCategory: a poker hand category carrying its name and an explicit
// cumulative rank (royal flush = 0 ... high card = 9).
//
// Counter: a get-or-zero counter used to tally ranks on the board and in
// each player's seven cards.
//
// # Hand Evaluation
//
// HandExists decides whether a category can be formed from any five of a
// player's seven cards (two pocket cards plus the five community cards), or
// by the board alone. Only the full house is implemented; other categories
// report ErrUnsupported.
package poker
