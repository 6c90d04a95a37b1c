package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ResumeData mirrors data/resume.json. Loaded once at startup and shared
// read-only across every session and request.
type ResumeData struct {
	Personal       Personal            `json:"personal"`
	Experience     []Experience        `json:"experience"`
	Projects       []Project           `json:"projects"`
	Skills         map[string][]string `json:"skills"`
	Certifications []string            `json:"certifications,omitempty"`
	Education      []Education         `json:"education"`
}

type Personal struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Period      string `json:"period"`
}

// loadResume reads and parses the resume document. The caller treats any
// failure as fatal: the chatbot cannot answer anything without it.
func loadResume(path string) (*ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("resume file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read resume file: %s", path)
	}

	var resume ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, errors.Wrapf(err, "failed to parse resume file: %s", path)
	}

	if resume.Personal.Name == "" {
		return nil, errors.Errorf("resume file %s is missing personal.name", path)
	}

	return &resume, nil
}
