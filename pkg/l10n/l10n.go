// Package l10n resolves string ids to localized text. Strings live in an INI
// file with one section per locale:
//
//	[en]
//	daily_title = Check in every day
//	[zh-TW]
//	daily_title = 每日簽到
package l10n

import (
	"errors"

	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

type Localizer interface {
	// Returns text of id for the best match of locale. Unknown ids come back as is
	Localize(id, locale string) string
}

type Catalog struct {
	tags    []language.Tag
	strings []map[string]string
	matcher language.Matcher
}

// Load reads a catalog from a file path or raw INI bytes. The first tag in
// defaultLocale order is used when nothing else matches.
func Load(source any, defaultLocale string) (*Catalog, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, errors.New("loading l10n strings error: " + err.Error())
	}
	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, errors.New("parsing default locale error: " + err.Error())
	}
	c := &Catalog{}
	var defStrings map[string]string
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		tag, err := language.Parse(section.Name())
		if err != nil {
			return nil, errors.New("bad locale section " + section.Name() + ": " + err.Error())
		}
		if tag == def {
			defStrings = section.KeysHash()
			continue
		}
		c.tags = append(c.tags, tag)
		c.strings = append(c.strings, section.KeysHash())
	}
	if defStrings == nil {
		defStrings = map[string]string{}
	}
	// the matcher falls back to its first tag
	c.tags = append([]language.Tag{def}, c.tags...)
	c.strings = append([]map[string]string{defStrings}, c.strings...)
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) Localize(id, locale string) string {
	idx := c.match(locale)
	if s, ok := c.strings[idx][id]; ok {
		return s
	}
	if s, ok := c.strings[0][id]; ok {
		return s
	}
	return id
}

// match accepts a single tag or an Accept-Language header value.
func (c *Catalog) match(locale string) int {
	if locale == "" {
		return 0
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return 0
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return 0
	}
	return idx
}
