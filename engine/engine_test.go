package engine

import "testing"

func TestCompileSuccess(t *testing.T) {
	p := Compile("a+b", DefaultConfig())
	if !p.Ok() {
		t.Fatalf("Compile(\"a+b\") failed: %v", p.Errors)
	}
	if p.Automaton == nil {
		t.Fatal("a successful compile must produce an Automaton")
	}
}

func TestCompileSyntaxErrorAbortsBeforeDFA(t *testing.T) {
	p := Compile("a)", DefaultConfig())
	if p.Ok() {
		t.Fatal("a trailing unmatched ')' must not compile")
	}
	if p.Automaton != nil {
		t.Fatal("a failed parse must not proceed to DFA construction")
	}
}

func TestCompileRecordsGroupNamesSorted(t *testing.T) {
	p := Compile("(<b> x)(<a> y)", DefaultConfig())
	if !p.Ok() {
		t.Fatalf("Compile failed: %v", p.Errors)
	}
	want := []string{"a", "b"}
	if len(p.Groups) != len(want) {
		t.Fatalf("Groups = %v, want %v", p.Groups, want)
	}
	for i, name := range want {
		if p.Groups[i] != name {
			t.Fatalf("Groups = %v, want %v", p.Groups, want)
		}
	}
}

func TestCompileBuildsPrefilterForPureLiteralAlternation(t *testing.T) {
	p := Compile("cat|dog", DefaultConfig())
	if !p.Ok() {
		t.Fatalf("Compile failed: %v", p.Errors)
	}
	if p.Prefilter == nil {
		t.Fatal("a pure literal alternation must get a prefilter")
	}
}

func TestCompileOmitsPrefilterForNonLiteralPattern(t *testing.T) {
	p := Compile("a+b", DefaultConfig())
	if !p.Ok() {
		t.Fatalf("Compile failed: %v", p.Errors)
	}
	if p.Prefilter != nil {
		t.Fatal("a pattern that isn't a pure literal alternation must not get a prefilter")
	}
}

func TestConfigValidateRejectsNonPositiveLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDFAStates = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("MaxDFAStates <= 0 must fail Validate")
	}
}

func TestCompileStateLimitExceeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDFAStates = 1
	p := Compile("(a|b){1,10}", cfg)
	if p.Ok() {
		t.Fatal("a pattern exceeding MaxDFAStates must fail to compile")
	}
}
