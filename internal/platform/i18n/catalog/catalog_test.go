package catalog

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if got, want := bundle.Locales(), []string{"ar-AE", BaseLocale}; !slices.Equal(got, want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
}

func TestEmbeddedLocalesShareKeysAndVerbs(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	verbs := regexp.MustCompile(`%%|%[a-z]`)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d messages, want %d", locale, len(messages), len(base))
		}
		for key, value := range base {
			translated, ok := messages[key]
			if !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
			want := verbs.FindAllString(value, -1)
			got := verbs.FindAllString(translated, -1)
			sort.Strings(want)
			sort.Strings(got)
			if len(want) != len(got) {
				t.Fatalf("locale %s key %q verbs = %v, want %v", locale, key, got, want)
			}
			for i := range want {
				if want[i] != got[i] {
					t.Fatalf("locale %s key %q verbs = %v, want %v", locale, key, got, want)
				}
			}
		}
	}
}

func TestRegisteredMessagesFormat(t *testing.T) {
	if _, err := LoadEmbedded(); err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	printer := message.NewPrinter(language.MustParse("en-US"))
	if got := printer.Sprintf("web.format.aed", "1,200"); got != "AED 1,200" {
		t.Fatalf("web.format.aed = %q", got)
	}
	if got := printer.Sprintf("trends.axis.price_change"); got != "Price Change (%)" {
		t.Fatalf("trends.axis.price_change = %q", got)
	}
	arabic := message.NewPrinter(language.MustParse("ar-AE"))
	if got := arabic.Sprintf("web.nav.home"); got != "الرئيسية" {
		t.Fatalf("ar-AE web.nav.home = %q", got)
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "search.bad": "nope"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "ar-AE"
namespace: "web"
messages:
  "web.key": "value"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/ar-AE/web.yaml"), `locale: "ar-AE"
namespace: "web"
messages:
  "web.key": "value"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestRegisterFallsBackToBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/fallback.yaml"), `locale: "en-US"
namespace: "fallback"
messages:
  "fallback.only_base": "base"
  "fallback.shared": "shared"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/fr-CA/fallback.yaml"), `locale: "fr-CA"
namespace: "fallback"
messages:
  "fallback.shared": "partagé"
`)

	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got := bundle.LocaleMessages("fr-CA"); len(got) != 1 {
		t.Fatalf("LocaleMessages(fr-CA) = %v, want only its own key", got)
	}
	if err := bundle.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, tag := range []string{"fr-CA", "fr"} {
		printer := message.NewPrinter(language.MustParse(tag))
		if got := printer.Sprintf("fallback.only_base"); got != "base" {
			t.Fatalf("%s fallback.only_base = %q, want base", tag, got)
		}
		if got := printer.Sprintf("fallback.shared"); got != "partagé" {
			t.Fatalf("%s fallback.shared = %q", tag, got)
		}
	}
}

func TestParseCatalogFileRejectsDuplicateKeys(t *testing.T) {
	_, err := parseCatalogFile([]byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"web.key\": \"a\"\n  \"web.key\": \"b\"\n"))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestParseCatalogFileRejectsUnquotedEntries(t *testing.T) {
	_, err := parseCatalogFile([]byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  web.key: value\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
