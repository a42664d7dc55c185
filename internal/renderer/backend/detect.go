package backend

import "strings"

// DetectColors estimates the color count of the terminal from the
// environment. getenv is usually os.Getenv.
func DetectColors(getenv func(string) string) int {
	if getenv("NO_COLOR") != "" {
		return 0
	}

	term := getenv("TERM")
	if term == "" || term == "dumb" {
		return 0
	}

	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 1 << 24
	}
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return 1 << 24
	}
	if strings.Contains(term, "256color") {
		return 256
	}
	return 8
}
