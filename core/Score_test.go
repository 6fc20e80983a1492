package core

import (
	"reflect"
	"testing"
)

func TestScoreSaturates(t *testing.T) {
	s := Score{Player: MaxScore - 1, Ai: MaxScore}

	s.PlayerPoint()
	s.PlayerPoint()
	s.AiPoint()

	if s.Player != MaxScore || s.Ai != MaxScore {
		t.Errorf("score = %d:%d, want both %d", s.Player, s.Ai, MaxScore)
	}
}

func TestDrawScore(t *testing.T) {
	d := &recordDisplay{}

	DrawScore(d, Score{Player: 7, Ai: 42})

	want := []string{"uint 16 4 007", "uint 272 4 042"}
	if !reflect.DeepEqual(d.ops, want) {
		t.Errorf("ops = %v, want %v", d.ops, want)
	}
}

func TestDrawScoreIsRepeatable(t *testing.T) {
	score := Score{Player: 3, Ai: 11}
	first, second := &recordDisplay{}, &recordDisplay{}

	DrawScore(first, score)
	DrawScore(second, score)

	if !reflect.DeepEqual(first.ops, second.ops) {
		t.Errorf("repeated draw differs: %v vs %v", first.ops, second.ops)
	}
}
