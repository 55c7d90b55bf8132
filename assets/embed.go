// Package assets embeds the default solver word lists.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed solutions.txt valid.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// SolutionsList returns the embedded puzzle-answer list as written.
func SolutionsList() ([]string, error) {
	return readLines("solutions.txt")
}

// ValidList returns the embedded accepted-guess list as written.
func ValidList() ([]string, error) {
	return readLines("valid.txt")
}
