package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadResume(t *testing.T) {
	resume, err := loadResume("data/resume.json")
	if err != nil {
		t.Fatalf("Failed to load shipped resume: %v", err)
	}

	if resume.Personal.Name != "Shamal Musthafa" {
		t.Errorf("Unexpected name: %q", resume.Personal.Name)
	}
	if len(resume.Experience) == 0 {
		t.Error("Expected experience entries")
	}
	if len(resume.Skills) == 0 {
		t.Error("Expected skill categories")
	}
	if len(resume.Projects) == 0 {
		t.Error("Expected projects")
	}
}

func TestLoadResumeMissingFile(t *testing.T) {
	_, err := loadResume(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestLoadResumeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := loadResume(path)
	if err == nil {
		t.Fatal("Expected error for malformed file")
	}
}

func TestLoadResumeMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.json")
	if err := os.WriteFile(path, []byte(`{"personal":{}}`), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := loadResume(path)
	if err == nil || !strings.Contains(err.Error(), "personal.name") {
		t.Errorf("Expected missing-name error, got %v", err)
	}
}
