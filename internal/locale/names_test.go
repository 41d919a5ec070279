package locale

import (
	"planet-positions-service/internal/domain"
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		want     language.Tag
	}{
		{"default", "", "", language.Russian},
		{"explicit english", "en", "", language.English},
		{"explicit regional", "en-GB", "", language.English},
		{"accept header", "", "de-DE,en;q=0.8", language.English},
		{"explicit wins", "ru", "en", language.Russian},
		{"unsupported", "ja", "", language.Russian},
		{"garbage", "???", "", language.Russian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.explicit, tt.accept, language.Russian); got != tt.want {
				t.Fatalf("Resolve(%q, %q) = %v, want %v", tt.explicit, tt.accept, got, tt.want)
			}
		})
	}
}

func TestNamesCoverTables(t *testing.T) {
	for _, n := range []*Names{For(language.Russian), For(language.English)} {
		for _, p := range domain.Planets() {
			if n.Planet(p) == "" {
				t.Errorf("%v: planet %s has no name", n.Tag, p)
			}
		}
		for _, s := range domain.Signs() {
			if n.Sign(s) == "" {
				t.Errorf("%v: sign %s has no name", n.Tag, s)
			}
		}
	}

	ru := For(language.Russian)
	if got := ru.Sign(domain.Aries); got != "Овен" {
		t.Fatalf("ru Aries = %q", got)
	}
	if got := ru.City("moscow"); got != "Москва" {
		t.Fatalf("ru moscow = %q", got)
	}
	if got := ru.City("atlantis"); got != "atlantis" {
		t.Fatalf("unknown city should display its key, got %q", got)
	}
}
