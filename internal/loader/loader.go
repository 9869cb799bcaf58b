// Package loader reads an authored content directory into the in-memory
// graph that validation and projection run over. Layout:
//
//	evidence/*.yaml        one evidence object per file
//	specifications/*.yaml  one specification object per file
//	pages/<locale>/*.yaml  one page per file, discriminated by "type"
//
// Everything is loaded and frozen before any validator runs; load errors
// are I/O or syntax problems, while content problems are left to the
// validators so editors get one complete report.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/i18n"
	"github.com/one-dna/disclose/internal/model"
)

// Site is the loaded, frozen content graph
type Site struct {
	Evidence *catalog.Evidence
	Specs    *catalog.Specifications
	Pages    []model.ContentPage

	byKey map[pageKey]model.ContentPage
}

type pageKey struct {
	locale i18n.Locale
	slug   string
}

// Page looks a page up by its (locale, slug) key
func (s *Site) Page(locale i18n.Locale, slug string) (model.ContentPage, bool) {
	p, ok := s.byKey[pageKey{locale, slug}]
	return p, ok
}

// Load reads a content directory into a frozen Site
func Load(dir string) (*Site, error) {
	site := &Site{
		Evidence: catalog.NewEvidence(),
		Specs:    catalog.NewSpecifications(),
		byKey:    make(map[pageKey]model.ContentPage),
	}

	if err := loadEvidence(filepath.Join(dir, "evidence"), site.Evidence); err != nil {
		return nil, err
	}
	if err := loadSpecifications(filepath.Join(dir, "specifications"), site.Specs); err != nil {
		return nil, err
	}
	if err := loadPages(filepath.Join(dir, "pages"), site); err != nil {
		return nil, err
	}

	site.Evidence.Freeze()
	site.Specs.Freeze()
	return site, nil
}

func loadEvidence(dir string, cat *catalog.Evidence) error {
	return eachYAML(dir, func(path string, data []byte) error {
		var e model.EvidenceObject
		if err := yaml.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := cat.Register(e); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func loadSpecifications(dir string, cat *catalog.Specifications) error {
	return eachYAML(dir, func(path string, data []byte) error {
		var s model.SpecificationObject
		if err := yaml.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := cat.Register(s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func loadPages(dir string, site *Site) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pages dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		if !i18n.IsValidLocale(locale) {
			return fmt.Errorf("pages/%s: %q is not a supported locale", locale, locale)
		}

		err := eachYAML(filepath.Join(dir, locale), func(path string, data []byte) error {
			page, err := DecodePage(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			key := pageKey{i18n.Locale(locale), page.PageSlug()}
			if _, dup := site.byKey[key]; dup {
				return fmt.Errorf("%s: duplicate page for locale %q slug %q", path, locale, page.PageSlug())
			}
			site.byKey[key] = page
			site.Pages = append(site.Pages, page)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodePage decodes one page document, dispatching on the "type" tag.
// Unknown tags are an error: a silently skipped page is a page that
// never gets validated.
func DecodePage(data []byte) (model.ContentPage, error) {
	var envelope struct {
		Type model.PageType `yaml:"type"`
	}
	if err := yaml.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	switch envelope.Type {
	case model.PageCoreKnowledge:
		var p model.CoreKnowledgePage
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case model.PageAudienceGuidance:
		var p model.AudienceGuidancePage
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case model.PageArticle:
		var p model.Article
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case model.PageCountryModule:
		var p model.CountryModule
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "":
		return nil, fmt.Errorf("page document has no type tag")
	default:
		return nil, fmt.Errorf("unknown page type %q", envelope.Type)
	}
}

// eachYAML calls fn for every .yaml/.yml file in dir, in name order.
// A missing directory is not an error: content sets may omit sections.
func eachYAML(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}
	return nil
}
