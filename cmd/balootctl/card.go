package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

var rankTokens = map[string]baloot.Rank{
	"7": baloot.Seven, "8": baloot.Eight, "9": baloot.Nine, "10": baloot.Ten,
	"J": baloot.Jack, "Q": baloot.Queen, "K": baloot.King, "A": baloot.Ace,
}

var suitTokens = map[string]baloot.Suit{
	"S1": baloot.S1, "S2": baloot.S2, "S3": baloot.S3, "S4": baloot.S4,
}

// parseCard reads the Card.String() format ("AS1", "10S4", "7S2")
// back into a Card, for hand flags passed on the command line.
func parseCard(tok string) (baloot.Card, error) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	for suitStr, suit := range suitTokens {
		if strings.HasSuffix(tok, suitStr) {
			rankStr := strings.TrimSuffix(tok, suitStr)
			rank, ok := rankTokens[rankStr]
			if !ok {
				return baloot.Card{}, fmt.Errorf("unrecognized rank %q in card %q", rankStr, tok)
			}
			return baloot.NewCard(rank, suit), nil
		}
	}
	return baloot.Card{}, fmt.Errorf("card %q has no recognized suit suffix (S1-S4)", tok)
}

// parseHand splits a comma-separated card list ("AS1,10S1,KS2").
func parseHand(csv string) ([]baloot.Card, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	var hand []baloot.Card
	for _, tok := range strings.Split(csv, ",") {
		c, err := parseCard(tok)
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

func parseSuit(tok string) (baloot.Suit, error) {
	suit, ok := suitTokens[strings.ToUpper(strings.TrimSpace(tok))]
	if !ok {
		return baloot.NoSuit, fmt.Errorf("unrecognized suit %q (want S1-S4)", tok)
	}
	return suit, nil
}

func parseDifficulty(tok string) (baloot.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "easy":
		return baloot.Easy, nil
	case "medium":
		return baloot.Medium, nil
	case "hard", "":
		return baloot.Hard, nil
	case "expert":
		return baloot.Expert, nil
	}
	return 0, fmt.Errorf("unrecognized difficulty %q", tok)
}

func parsePersonality(tok string) (baloot.Personality, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "balanced", "":
		return baloot.Balanced, nil
	case "aggressive":
		return baloot.Aggressive, nil
	case "conservative":
		return baloot.Conservative, nil
	case "tricky":
		return baloot.Tricky, nil
	}
	return 0, fmt.Errorf("unrecognized personality %q", tok)
}

func parseMode(tok string) (baloot.Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(tok)) {
	case "SUN", "":
		return baloot.SUN, nil
	case "HOKUM":
		return baloot.HOKUM, nil
	}
	return 0, fmt.Errorf("unrecognized mode %q (want SUN or HOKUM)", tok)
}

func parseSeed(tok string) (int64, error) {
	if strings.TrimSpace(tok) == "" {
		return 0, nil
	}
	return strconv.ParseInt(tok, 10, 64)
}
