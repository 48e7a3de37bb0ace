package domain

import (
	"fmt"
	"strings"
)

type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneHumorous     Tone = "humorous"
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
)

// Tones lists every supported brand tone in menu order.
var Tones = []Tone{ToneFriendly, ToneProfessional, ToneHumorous, ToneFormal, ToneCasual}

func ParseTone(raw string) (Tone, error) {
	tone := Tone(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Tones {
		if tone == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unsupported tone %q", raw)
}

// BrandProfile is the user-supplied brand description driving generation.
// Products holds the raw delimited form input; ProductList yields the
// normalized list sent to the backend.
type BrandProfile struct {
	BrandName string
	Industry  string
	Audience  string
	Tone      Tone
	Goals     string
	Products  string
}

func DefaultProfile() BrandProfile {
	return BrandProfile{Tone: ToneFriendly}
}

// ProductList splits the raw products input on commas, trims each entry and
// drops empty ones, preserving order.
func (p BrandProfile) ProductList() []string {
	parts := strings.Split(p.Products, ",")
	products := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		products = append(products, trimmed)
	}
	return products
}

func (p BrandProfile) Validate() error {
	if strings.TrimSpace(p.BrandName) == "" {
		return ErrBrandNameRequired
	}
	if _, err := ParseTone(string(p.Tone)); err != nil {
		return err
	}
	return nil
}
