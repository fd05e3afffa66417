// Package poker implements poker hand evaluation for Texas Hold'em: the card
// model, the ranking of five card hands and the selection of the best five
// cards out of a larger set.
//
// # Core Types
//
// Card: An immutable playing card with rank and suit. Rank values run from
// 0 (Two) to 12 (Ace) and are the only strength used for comparisons.
//
// HandCategory: The ten hand classes from HighCard to RoyalFlush.
//
// HandRank: A category plus an ordered tie-break key. Ranks are compared
// lexicographically, category first.
//
// # Evaluation
//
// Classify ranks exactly five cards. Best enumerates every five card subset
// of 5 or more cards (21 subsets for the usual two hole cards plus five
// community cards) and keeps the strongest one. Showdown applies Best to
// each contender and reports every winner, so split pots are visible to the
// caller.
//
// All evaluation functions are pure: they keep no state and never modify
// their input, so they can be called concurrently.
package poker
