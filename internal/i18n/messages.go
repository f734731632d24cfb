// Package i18n loads the user-facing strings from TOML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "es"

//go:embed locales/*.toml
var catalogs embed.FS

// Messages holds every string shown to the user.
type Messages struct {
	AppTitle      string `toml:"app_title"`
	CountOne      string `toml:"count_one"`
	CountOther    string `toml:"count_other"`
	EmptyList     string `toml:"empty_list"`
	CreatedPrefix string `toml:"created_prefix"`

	TaskAdded     string `toml:"task_added"`
	TaskUpdated   string `toml:"task_updated"`
	TaskDeleted   string `toml:"task_deleted"`
	TaskMissing   string `toml:"task_missing"`
	SaveFailed    string `toml:"save_failed"`
	LoadFailed    string `toml:"load_failed"`
	TitleRequired string `toml:"title_required"`
	Copied        string `toml:"copied"`
	CopyFailed    string `toml:"copy_failed"`
	ThemeChanged  string `toml:"theme_changed"`

	AddHeading             string `toml:"add_heading"`
	EditHeading            string `toml:"edit_heading"`
	TitleLabel             string `toml:"title_label"`
	TitlePlaceholder       string `toml:"title_placeholder"`
	DescriptionLabel       string `toml:"description_label"`
	DescriptionPlaceholder string `toml:"description_placeholder"`
	ConfirmHeading         string `toml:"confirm_heading"`
	ConfirmPrompt          string `toml:"confirm_prompt"`
	ConfirmYes             string `toml:"confirm_yes"`
	ConfirmNo              string `toml:"confirm_no"`

	ActionMarkDone    string `toml:"action_mark_done"`
	ActionMarkPending string `toml:"action_mark_pending"`
	ActionEdit        string `toml:"action_edit"`
	ActionDelete      string `toml:"action_delete"`

	ThemeLight string `toml:"theme_light"`
	ThemeDark  string `toml:"theme_dark"`

	Loading  string `toml:"loading"`
	Exported string `toml:"exported"`

	Keys KeyMessages `toml:"keys"`
	Help HelpMessages `toml:"help"`
}

// KeyMessages are the short labels next to keys in the hint bar.
type KeyMessages struct {
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Top       string `toml:"top"`
	Bottom    string `toml:"bottom"`
	Add       string `toml:"add"`
	Edit      string `toml:"edit"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Copy      string `toml:"copy"`
	Theme     string `toml:"theme"`
	Help      string `toml:"help"`
	Close     string `toml:"close"`
	Quit      string `toml:"quit"`
	Save      string `toml:"save"`
	NextField string `toml:"next_field"`
}

// HelpMessages are the section headings and descriptions of the help screen.
type HelpMessages struct {
	Navigation  string `toml:"navigation"`
	TaskActions string `toml:"task_actions"`
	Dialogs     string `toml:"dialogs"`
	General     string `toml:"general"`

	Move       string `toml:"move"`
	Jump       string `toml:"jump"`
	Add        string `toml:"add"`
	Edit       string `toml:"edit"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Copy       string `toml:"copy"`
	NextField  string `toml:"next_field"`
	Save       string `toml:"save"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Theme      string `toml:"theme"`
	ToggleHelp string `toml:"toggle_help"`
	Quit       string `toml:"quit"`
	CloseHint  string `toml:"close_hint"`
}

// Count renders n with the singular or plural noun, e.g. "1 tarea", "3 tareas".
func (m Messages) Count(n int) string {
	noun := m.CountOther
	if n == 1 {
		noun = m.CountOne
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// ThemeName returns the localized name of a theme value.
func (m Messages) ThemeName(theme string) string {
	if theme == "dark" {
		return m.ThemeDark
	}
	return m.ThemeLight
}

// Locales lists the embedded catalogs.
func Locales() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(out)
	return out
}

// Load returns the embedded catalog for locale.
func Load(locale string) (Messages, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	data, err := catalogs.ReadFile("locales/" + locale + ".toml")
	if err != nil {
		return Messages{}, fmt.Errorf("unknown locale %q (available: %s)", locale, strings.Join(Locales(), ", "))
	}

	var m Messages
	if _, err := toml.Decode(string(data), &m); err != nil {
		return Messages{}, fmt.Errorf("failed to parse %s catalog: %w", locale, err)
	}
	return m, nil
}

// LoadWithOverrides loads locale and then applies the keys present in the
// TOML file at path. An empty path skips the overrides.
func LoadWithOverrides(locale, path string) (Messages, error) {
	m, err := Load(locale)
	if err != nil {
		return Messages{}, err
	}
	if path == "" {
		return m, nil
	}

	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Messages{}, fmt.Errorf("failed to parse messages file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Messages{}, fmt.Errorf("unknown keys in messages file: %s", strings.Join(keys, ", "))
	}
	return m, nil
}

// MustLoad is Load for embedded locales known to exist.
func MustLoad(locale string) Messages {
	m, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return m
}
