package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"google.golang.org/genai"

	"proprospect-backend/models"
)

const defaultScriptModel = "gemini-3-flash-preview"

var (
	clientOnce sync.Once
	client     *genai.Client
)

func scriptClient(ctx context.Context) *genai.Client {
	clientOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return
		}
		c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			log.Printf("script service: could not create genai client: %v", err)
			return
		}
		client = c
	})
	return client
}

// GenerateCallScript asks Gemini for a short cold-call script for the given
// prospect. Failures never surface as errors to the caller: the result is
// always display text, with fixed fallback strings on missing credentials or
// API trouble.
func GenerateCallScript(ctx context.Context, contact models.Contact, property models.Property, agent models.User) string {
	c := scriptClient(ctx)
	if c == nil {
		log.Println("script service: Gemini API key not found")
		return "Error: API Key missing. Please check configuration."
	}

	prompt := fmt.Sprintf(`You are an expert real estate sales coach. Write a short, punchy cold-call script for a real estate agent.

Agent Name: %s

Prospect Name: %s %s
Prospect Age: %d
Property Address: %s, %s

Goal: The agent wants to know if the prospect is interested in selling this property.
Tone: Professional, empathetic, and direct.
Length: Keep it under 50 words.`,
		agent.DisplayName,
		contact.FirstName, contact.LastName,
		contact.Age,
		property.Address, property.City)

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultScriptModel
	}

	resp, err := c.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("script service: generate failed: %v", err)
		return "Failed to generate script due to an error."
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "Could not generate script."
}
