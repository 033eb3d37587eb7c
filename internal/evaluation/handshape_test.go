package evaluation

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func TestEvaluateShapeBalanced4332(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1), baloot.NewCard(baloot.Eight, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1), baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S2), baloot.NewCard(baloot.Eight, baloot.S2), baloot.NewCard(baloot.Nine, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3), baloot.NewCard(baloot.Eight, baloot.S3), baloot.NewCard(baloot.Nine, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4), baloot.NewCard(baloot.Eight, baloot.S4),
	}
	shape := EvaluateShape(hand, baloot.HOKUM, baloot.S1)
	if shape.Type != ShapeBalanced {
		t.Fatalf("expected Balanced type for 4-3-3-2, got %v", shape.Type)
	}
	if shape.HokumAdj != -2 {
		t.Errorf("expected HOKUM adj -2 for 4-3-3-2, got %v", shape.HokumAdj)
	}
}

func TestEvaluateShapeVoidSuit(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1), baloot.NewCard(baloot.Eight, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1),
		baloot.NewCard(baloot.Ten, baloot.S1), baloot.NewCard(baloot.Jack, baloot.S1),
		baloot.NewCard(baloot.Queen, baloot.S2), baloot.NewCard(baloot.King, baloot.S2), baloot.NewCard(baloot.Ace, baloot.S3),
	}
	shape := EvaluateShape(hand, baloot.HOKUM, baloot.S1)
	if !shape.HasVoid {
		t.Fatalf("expected a void suit (S4 has zero cards)")
	}
	if shape.Type != ShapeUnbalancedVoid {
		t.Errorf("expected Unbalanced+ type, got %v", shape.Type)
	}
	if shape.HokumAdj != 5 {
		t.Errorf("expected HOKUM adj +5 for void hand, got %v", shape.HokumAdj)
	}
}

func TestEvaluateShapeExtremeSixCardSuit(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1), baloot.NewCard(baloot.Eight, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1),
		baloot.NewCard(baloot.Ten, baloot.S1), baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Queen, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2),
		baloot.NewCard(baloot.Ace, baloot.S3),
	}
	shape := EvaluateShape(hand, baloot.SUN, baloot.NoSuit)
	if shape.Type != ShapeExtreme {
		t.Errorf("expected Extreme type for a 6-card suit, got %v", shape.Type)
	}
	if shape.SunAdj != -4 {
		t.Errorf("expected SUN adj -4, got %v", shape.SunAdj)
	}
}

func TestProjectTricksCountsTrumpJackAndNine(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1), baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2), baloot.NewCard(baloot.Queen, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3), baloot.NewCard(baloot.Eight, baloot.S3), baloot.NewCard(baloot.Seven, baloot.S4),
	}
	proj := ProjectTricks(hand, baloot.HOKUM, baloot.S1)
	if proj.Quick < 3 {
		t.Errorf("expected at least 3 quick tricks with J+9+A of trump, got %v", proj.Quick)
	}
}

func TestScorePressureDesperate(t *testing.T) {
	scores := baloot.TeamScores{MatchPointsUs: 60, MatchPointsThem: 90}
	pressure := EvaluateBidPressure(scores)
	if pressure.Situation != SituationDesperate {
		t.Errorf("expected DESPERATE situation for a 30pt deficit, got %v", pressure.Situation)
	}
	if pressure.ThresholdDelta >= 0 {
		t.Errorf("expected a negative threshold delta while desperate, got %v", pressure.ThresholdDelta)
	}
}

func TestScorePressureMatchPoint(t *testing.T) {
	scores := baloot.TeamScores{MatchPointsUs: 150, MatchPointsThem: 140}
	pressure := EvaluateBidPressure(scores)
	if pressure.Phase != PhaseMatchPoint {
		t.Errorf("expected MATCH_POINT phase at 150, got %v", pressure.Phase)
	}
}
