package lexicon

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a TOML override. The file names a built-in `base` locale
// (pt-BR when omitted); every list it sets replaces the base list, and an
// [areas.<area>] table replaces that whole area table.
//
//	base = "pt-BR"
//	code = "pt-BR-retail"
//	fillers = ["tipo", "né", "tá"]
func LoadFile(path string) (*Locale, error) {
	var head struct {
		Base string `toml:"base"`
		Code string `toml:"code"`
	}
	if _, err := toml.DecodeFile(path, &head); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if head.Base == "" {
		head.Base = DefaultLocale
	}
	base, ok := Lookup(head.Base)
	if !ok {
		return nil, fmt.Errorf("lexicon %s: unknown base locale %q", path, head.Base)
	}

	loc := base.Clone()
	if _, err := toml.DecodeFile(path, loc); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if head.Code == "" {
		loc.Code = base.Code
	}
	return loc, nil
}
