package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add water the plants", TypeAdd},
		{"goto 2024-01-15", TypeGoto},
		{"view week", TypeView},
		{"/theme light", TypeTheme},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddExtractsTime(t *testing.T) {
	cmd, err := Parse("/add call the dentist at 2:30pm")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "call the dentist" {
		t.Fatalf("text = %q", cmd.Add.Text)
	}
	if cmd.Add.Time != "14:30" {
		t.Fatalf("time = %q", cmd.Add.Time)
	}
}

func TestParseGotoRejectsBadDate(t *testing.T) {
	_, err := Parse("goto someday")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/frobnicate now")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/view history")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	called := false
	res, err := Execute(cmd, Handlers{
		View: func(a ViewArgs) (Result, error) {
			called = true
			if a.Name != "history" {
				t.Fatalf("unexpected view: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("theme dark")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
