package domain

import (
	"fmt"
	"strings"
)

type ArtifactKind string

const (
	ArtifactWeeklyPosts       ArtifactKind = "weekly_posts"
	ArtifactCleanedPosts      ArtifactKind = "cleaned_posts"
	ArtifactAdCopies          ArtifactKind = "ad_copies"
	ArtifactVisualBriefs      ArtifactKind = "visual_briefs"
	ArtifactHashtags          ArtifactKind = "hashtags"
	ArtifactPlatformSplit     ArtifactKind = "platform_split"
	ArtifactWhatsAppBroadcast ArtifactKind = "whatsapp_broadcast"
)

// ArtifactKinds is the closed set of artifact kinds in declaration order.
// Every listing of artifacts anywhere in the client follows this order.
var ArtifactKinds = []ArtifactKind{
	ArtifactWeeklyPosts,
	ArtifactCleanedPosts,
	ArtifactAdCopies,
	ArtifactVisualBriefs,
	ArtifactHashtags,
	ArtifactPlatformSplit,
	ArtifactWhatsAppBroadcast,
}

func ParseArtifactKind(raw string) (ArtifactKind, error) {
	kind := ArtifactKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range ArtifactKinds {
		if kind == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown artifact kind %q", raw)
}

// Title renders the kind for display: "weekly_posts" becomes "Weekly Posts".
func (k ArtifactKind) Title() string {
	words := strings.Split(string(k), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ContentSet is the full bundle of artifacts produced by one generation
// call. It is replaced wholesale on every successful generation, never
// merged.
type ContentSet struct {
	Artifacts map[ArtifactKind]string
}

func (c ContentSet) Empty() bool {
	return len(c.Artifacts) == 0
}

// Kinds returns the artifact kinds present in the set, in declaration order.
func (c ContentSet) Kinds() []ArtifactKind {
	kinds := make([]ArtifactKind, 0, len(c.Artifacts))
	for _, kind := range ArtifactKinds {
		if _, ok := c.Artifacts[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func (c ContentSet) Get(kind ArtifactKind) (string, bool) {
	text, ok := c.Artifacts[kind]
	return text, ok
}

// FirstKind returns the first declared artifact kind present in the set.
func (c ContentSet) FirstKind() (ArtifactKind, bool) {
	for _, kind := range ArtifactKinds {
		if _, ok := c.Artifacts[kind]; ok {
			return kind, true
		}
	}
	return "", false
}
