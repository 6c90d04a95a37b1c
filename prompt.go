package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Persona bundles an instruction template with its canned greeting. The
// chat logic never looks inside a persona, so swapping voices is purely a
// configuration change.
type Persona struct {
	Name         string
	Instructions string
	Greeting     string
}

var personas = map[string]Persona{
	"professional": {
		Name:         "professional",
		Instructions: professionalInstructions,
		Greeting:     professionalGreeting,
	},
	"nexus": {
		Name:         "nexus",
		Instructions: nexusInstructions,
		Greeting:     nexusGreeting,
	},
}

// selectPersona resolves a persona by name, falling back to the
// professional voice for unknown or empty values.
func selectPersona(name string) Persona {
	if p, ok := personas[name]; ok {
		return p
	}
	if name != "" {
		log.Printf("Unknown persona %q, using professional", name)
	}
	return personas["professional"]
}

func formatDate(now time.Time) string {
	return now.Format("Monday, January 2, 2006")
}

func formatTime(now time.Time) string {
	return now.Format("3:04 PM MST")
}

// buildSystemPrompt assembles the instruction block a new conversation is
// seeded with: persona text, the wall-clock time the session began, and
// the full resume pretty-printed as JSON.
func buildSystemPrompt(p Persona, resume *ResumeData, now time.Time) string {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		// ResumeData contains only strings, slices, and maps; this
		// cannot fail once the file parsed at startup.
		resumeJSON = []byte("{}")
	}
	return fmt.Sprintf(p.Instructions,
		resume.Personal.Name,
		formatDate(now),
		formatTime(now),
		string(resumeJSON),
	)
}

// bootstrapTurns builds the two-turn seed every new conversation starts
// with. The Gemini chat API has no system role, so the prompt goes in as a
// user turn answered by the persona's canned greeting.
func bootstrapTurns(p Persona, resume *ResumeData, now time.Time) []Turn {
	return []Turn{
		{Role: roleUser, Content: buildSystemPrompt(p, resume, now)},
		{Role: roleModel, Content: fmt.Sprintf(p.Greeting, resume.Personal.Name)},
	}
}
