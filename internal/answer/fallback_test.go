package answer

import "testing"

func TestLoadFallbackTable(t *testing.T) {
	table, err := LoadFallbackTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Size() == 0 {
		t.Fatalf("expected non-empty table")
	}
}

func TestFallbackLookupNormalizesQuestion(t *testing.T) {
	table, err := LoadFallbackTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canned, ok := table.Lookup("What is the capital city of Maharashtra?")
	if !ok || canned != "Mumbai" {
		t.Fatalf("expected Mumbai, got %q (found=%v)", canned, ok)
	}

	// 대소문자/구두점/공백 차이는 조회에 영향이 없다
	canned, ok = table.Lookup("  what IS the capital city of maharashtra ")
	if !ok || canned != "Mumbai" {
		t.Fatalf("expected normalized hit, got %q (found=%v)", canned, ok)
	}
}

func TestFallbackLookupMiss(t *testing.T) {
	table, err := LoadFallbackTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table.Lookup("what color is the sky on mars"); ok {
		t.Fatalf("expected miss")
	}
}
