package model

import (
	"reflect"
	"testing"
)

func TestDateSetAddKeepsOrderAndDedups(t *testing.T) {
	var s DateSet
	s = s.Add("2024-01-10")
	s = s.Add("2024-01-05")
	s = s.Add("2024-01-10")
	s = s.Add("2023-12-31")
	want := DateSet{"2023-12-31", "2024-01-05", "2024-01-10"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("got %v, want %v", s, want)
	}
}

func TestDateSetAddDoesNotMutateReceiver(t *testing.T) {
	orig := DateSet{"2024-01-05"}
	_ = orig.Add("2024-01-01")
	if !reflect.DeepEqual(orig, DateSet{"2024-01-05"}) {
		t.Fatalf("receiver mutated: %v", orig)
	}
}

func TestDateSetRemove(t *testing.T) {
	s := DateSet{"2024-01-01", "2024-01-02", "2024-01-03"}
	got := s.Remove("2024-01-02")
	want := DateSet{"2024-01-01", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := s.Remove("2024-02-01"); !reflect.DeepEqual(got, s) {
		t.Fatalf("removing absent date changed set: %v", got)
	}
}

func TestDateSetNormalize(t *testing.T) {
	s := DateSet{"2024-01-03", "2024-01-01", "2024-01-03", "2024-01-01"}
	got := s.Normalize()
	want := DateSet{"2024-01-01", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
