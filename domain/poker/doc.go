// Package poker implements the hand ranking engine for five-card draw,
// Texas hold'em and Omaha hold'em showdowns.
//
// # Core Types
//
// Card: a playing card with a rank ordinal (A=0 ... 2=12) and a suit.
//
// Candidate: one 5-card combination a player could show, tagged with the
// player's original card block.
//
// Record: the scored classification of a Candidate.
//
// Ranking: the players' best records grouped by equal strength.
//
// # Ranking Flow
//
// GenerateCandidates enumerates the legal combinations of a player (1 for
// five-card draw, 21 for Texas hold'em, 60 for Omaha hold'em). Classify
// scores each of them, Compare orders them strongest first, SelectBest keeps
// the best one per player and GroupTies reverses the order to weakest first
// while keeping players of exactly equal strength together.
//
// # Dealing
//
// PokerDeck deals random tables for any variant, which the command line tool
// uses to produce sample requests.
package poker
