package util

import (
	"strings"
	"testing"
)

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	if _, err := SanitizeFileName("../etc/passwd"); err == nil {
		t.Fatalf("expected error for traversal")
	}
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestSanitizeFileNameReplacesSeparators(t *testing.T) {
	got, err := SanitizeFileName(`a/b\c.pdf`)
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "a_b_c.pdf" {
		t.Fatalf("expected a_b_c.pdf, got %s", got)
	}
}

func TestResumeObjectNameIsStablePerUser(t *testing.T) {
	first, err := ResumeObjectName("user-1", "resume.pdf")
	if err != nil {
		t.Fatalf("ResumeObjectName: %v", err)
	}
	second, err := ResumeObjectName("user-1", "other-name.PDF")
	if err != nil {
		t.Fatalf("ResumeObjectName: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable name, got %s vs %s", first, second)
	}
	if !strings.HasSuffix(first, ".pdf") {
		t.Fatalf("expected .pdf suffix, got %s", first)
	}
	other, err := ResumeObjectName("user-2", "resume.pdf")
	if err != nil {
		t.Fatalf("ResumeObjectName: %v", err)
	}
	if other == first {
		t.Fatalf("expected distinct names across users")
	}
}
