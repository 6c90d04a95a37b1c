package main

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testResume() *ResumeData {
	return &ResumeData{
		Personal: Personal{
			Name:     "Shamal Musthafa",
			Location: "Kannur, India",
			Email:    "shamalmusthafa59@gmail.com",
		},
		Experience: []Experience{
			{
				Title:            "Data Scientist",
				Company:          "Truwave Software LLC",
				Period:           "August 2023 - Present",
				Responsibilities: []string{"Architected and deployed enterprise chatbots"},
			},
		},
		Projects: []Project{
			{
				Title:        "Chatbot Platform",
				Description:  "Enterprise-grade chatbot",
				Technologies: []string{"Dialogflow", "FastAPI"},
			},
		},
		Skills: map[string][]string{
			"ai_ml": {"Machine Learning", "Generative AI"},
		},
		Education: []Education{
			{
				Degree:      "Master of Science in Data Science",
				Institution: "CHRIST (Deemed to be University)",
				Period:      "2021 - 2023",
			},
		},
	}
}
