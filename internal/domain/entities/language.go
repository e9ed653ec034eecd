package entities

// Language is one entry of the language table: a human-readable display name
// mapped to the short code DeepL expects, plus whether DeepL accepts a
// formality flag for it.
type Language struct {
	Name              string
	Key               string
	SupportsFormality bool
}
