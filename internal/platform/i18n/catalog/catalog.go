// Package catalog loads the embedded message catalogs and registers them with
// golang.org/x/text/message. Importing the package registers the embedded
// catalogs.
//
// Catalogs live at locales/<locale>/<namespace>.yaml and use a small quoted
// subset of YAML:
//
//	locale: "en-US"
//	namespace: "search"
//	messages:
//	  "search.heading": "Properties %s"
//
// Every key must start with its file's namespace.
package catalog

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale supplies every key. Other locales fall back to it.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embedded embed.FS

func init() {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
}

// Bundle maps locale -> key -> message.
type Bundle struct {
	messages map[string]map[string]string
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads every locales/*/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(files)

	b := &Bundle{messages: map[string]map[string]string{}}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		if err := b.add(name, file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s has no catalogs", BaseLocale)
	}
	return b, nil
}

// Locales returns the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// LocaleMessages returns a copy of the messages defined for locale, without
// base-locale fallback.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, value := range b.messages[strings.TrimSpace(locale)] {
		out[key] = value
	}
	return out
}

// Register installs every locale in the x/text message catalog, under both
// the full tag and its base language. Keys a locale lacks are registered with
// the base-locale text.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.messages[BaseLocale]
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if lang, conf := tag.Base(); conf != language.No {
			if baseTag := language.Make(lang.String()); baseTag != tag {
				tags = append(tags, baseTag)
			}
		}

		own := b.messages[locale]
		for key, fallback := range base {
			value, ok := own[key]
			if !ok {
				value = fallback
			}
			if err := setString(tags, key, value); err != nil {
				return err
			}
		}
		for key, value := range own {
			if _, ok := base[key]; ok {
				continue
			}
			if err := setString(tags, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setString(tags []language.Tag, key, value string) error {
	for _, tag := range tags {
		if err := message.SetString(tag, key, value); err != nil {
			return fmt.Errorf("register %s for %s: %w", key, tag, err)
		}
	}
	return nil
}

func (b *Bundle) add(name string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(name))
	fileNamespace := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if file.locale != dirLocale {
		return fmt.Errorf("locale %q does not match directory %q", file.locale, dirLocale)
	}
	if file.namespace != fileNamespace {
		return fmt.Errorf("namespace %q does not match file name %q", file.namespace, fileNamespace)
	}

	messages, ok := b.messages[file.locale]
	if !ok {
		messages = map[string]string{}
		b.messages[file.locale] = messages
	}
	for key, value := range file.messages {
		if !strings.HasPrefix(key, file.namespace+".") {
			return fmt.Errorf("key %q is outside namespace %q", key, file.namespace)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("duplicate key %q for %s", key, file.locale)
		}
		messages[key] = value
	}
	return nil
}

type catalogFile struct {
	locale    string
	namespace string
	messages  map[string]string
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	file := catalogFile{messages: map[string]string{}}
	inMessages := false
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		switch {
		case strings.HasPrefix(line, "locale:"):
			file.locale, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
		case strings.HasPrefix(line, "namespace:"):
			file.namespace, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
		case line == "messages:":
			inMessages = true
		case inMessages:
			var key, value string
			key, value, err = parseEntry(line)
			if err == nil {
				if _, dup := file.messages[key]; dup {
					err = fmt.Errorf("duplicate key %q", key)
				}
				file.messages[key] = value
			}
		default:
			err = fmt.Errorf("unexpected content")
		}
		if err != nil {
			return catalogFile{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return catalogFile{}, err
	}

	switch {
	case strings.TrimSpace(file.locale) == "":
		return catalogFile{}, fmt.Errorf("missing locale")
	case strings.TrimSpace(file.namespace) == "":
		return catalogFile{}, fmt.Errorf("missing namespace")
	case len(file.messages) == 0:
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return file, nil
}

// parseEntry splits `"key": "value"`. Both sides must be Go-quoted strings.
func parseEntry(line string) (string, string, error) {
	quoted, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", "", fmt.Errorf("key must be quoted")
	}
	key, _ := strconv.Unquote(quoted)
	rest, ok := strings.CutPrefix(strings.TrimSpace(line[len(quoted):]), ":")
	if !ok {
		return "", "", fmt.Errorf("missing ':' after key %q", key)
	}
	value, err := strconv.Unquote(strings.TrimSpace(rest))
	if err != nil {
		return "", "", fmt.Errorf("value for %q must be quoted", key)
	}
	if strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("blank key")
	}
	return key, value, nil
}
