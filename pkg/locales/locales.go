package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Start        Start        `json:"start"`
	MainMenu     MainMenu     `json:"main_menu"`
	Mood         Mood         `json:"mood"`
	Date         Date         `json:"date"`
	Graph        Graph        `json:"graph"`
	Broadcast    Broadcast    `json:"broadcast"`
	Subscription Subscription `json:"subscription"`
	Card         Card         `json:"card"`
}

type Start struct {
	Greeting string `json:"greeting"`
	Menu     string `json:"menu"`
}

type MainMenu struct {
	Buttons struct {
		Graph string `json:"graph"`
		Date  string `json:"date"`
		Mood  string `json:"mood"`
		Back  string `json:"back"`
	} `json:"buttons"`
}

type Mood struct {
	Prompt          string `json:"prompt"`
	KeyboardHint    string `json:"keyboard_hint"`
	AskText         string `json:"ask_text"`
	TooShort        string `json:"too_short"`
	Saving          string `json:"saving"`
	Done            string `json:"done"`
	SavedNoAnalysis string `json:"saved_no_analysis"`
	Error           string `json:"error"`
}

type Date struct {
	Prompt  string `json:"prompt"`
	Invalid string `json:"invalid"`
	Header  string `json:"header"`
	Entry   string `json:"entry"`
	Empty   string `json:"empty"`
}

type Graph struct {
	Caption string `json:"caption"`
	Empty   string `json:"empty"`
	Error   string `json:"error"`
}

type Broadcast struct {
	Reminder string `json:"reminder"`
}

type Subscription struct {
	Required string `json:"required"`
	Buttons  struct {
		Subscribe string `json:"subscribe"`
		Check     string `json:"check"`
	} `json:"buttons"`
}

type Card struct {
	TrendLabel string `json:"trend_label"`
	QuoteLabel string `json:"quote_label"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
