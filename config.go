package pawnpad

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
)

type RGBA color.RGBA

// Hex formats the color as #rrggbb.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SyntaxColors maps a token kind name ("keyword", "string", ...) to a color.
type SyntaxColors map[string]RGBA

type Colors struct {
	Background            RGBA
	Foreground            RGBA
	LineNumbersForeground RGBA
	SyntaxColors          SyntaxColors
}

type Theme struct {
	Name   string
	Colors Colors
}

func (t Theme) String() string { return t.Name }

type Config struct {
	Themes                   []Theme
	CurrentTheme             string
	TabSize                  int
	LineNumbers              bool
	GutterWidth              int
	EnableSyntaxHighlighting bool
	// Highlighter is "regex" or "treesitter".
	Highlighter     string
	HistoryLimit    int
	SystemClipboard bool
	// Style is a chroma style name, empty means derive one from the theme.
	Style string
}

func (c *Config) String() string {
	return fmt.Sprintf("theme = %s\ntab_size = %d\nline_numbers = %v\ngutter_width = %d\nsyntax = %v\nhighlighter = %s\nhistory_limit = %d\nclipboard = %v\nstyle = %s",
		c.CurrentTheme, c.TabSize, c.LineNumbers, c.GutterWidth, c.EnableSyntaxHighlighting, c.Highlighter, c.HistoryLimit, c.SystemClipboard, c.Style)
}

func parseHexColor(v string) (out RGBA, err error) {
	if len(v) != 7 {
		return out, errors.New("hex color must be 7 characters")
	}
	if v[0] != '#' {
		return out, errors.New("hex color must start with '#'")
	}
	red, err := strconv.ParseUint(v[1:3], 16, 8)
	if err != nil {
		return out, errors.New("red component invalid")
	}
	green, err := strconv.ParseUint(v[3:5], 16, 8)
	if err != nil {
		return out, errors.New("green component invalid")
	}
	blue, err := strconv.ParseUint(v[5:7], 16, 8)
	if err != nil {
		return out, errors.New("blue component invalid")
	}
	return RGBA{R: uint8(red), G: uint8(green), B: uint8(blue), A: 255}, nil
}

func mustParseHexColor(hex string) RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfig returns a fresh copy of the built-in configuration.
func DefaultConfig() *Config {
	cfg := defaultConfig
	cfg.Themes = make([]Theme, len(defaultConfig.Themes))
	for i, t := range defaultConfig.Themes {
		syntax := SyntaxColors{}
		for k, v := range t.Colors.SyntaxColors {
			syntax[k] = v
		}
		t.Colors.SyntaxColors = syntax
		cfg.Themes[i] = t
	}
	return &cfg
}

var defaultConfig = Config{
	CurrentTheme: "Default",
	Themes: []Theme{
		{
			Name: "Default",
			Colors: Colors{
				Background:            mustParseHexColor("#1e1e1e"),
				Foreground:            mustParseHexColor("#d4d4d4"),
				LineNumbersForeground: mustParseHexColor("#858585"),
				SyntaxColors: SyntaxColors{
					"keyword":      mustParseHexColor("#569cd6"),
					"string":       mustParseHexColor("#ce9178"),
					"comment":      mustParseHexColor("#6a9955"),
					"number":       mustParseHexColor("#b5cea8"),
					"preprocessor": mustParseHexColor("#c586c0"),
					"function":     mustParseHexColor("#dcdcaa"),
				},
			},
		},
	},
	TabSize:                  4,
	LineNumbers:              true,
	GutterWidth:              3,
	EnableSyntaxHighlighting: true,
	Highlighter:              "regex",
	HistoryLimit:             1000,
	SystemClipboard:          false,
}

func (c *Config) CurrentThemeColors() *Colors {
	for i := range c.Themes {
		if c.Themes[i].Name == c.CurrentTheme {
			return &c.Themes[i].Colors
		}
	}
	return &c.Themes[0].Colors
}

func setPositiveInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("%d is not positive", n)
	}
	*dst = n
	return nil
}

func addToConfig(cfg *Config, key string, value string) error {
	var err error
	switch key {
	case "syntax":
		cfg.EnableSyntaxHighlighting = value == "true"
	case "highlighter":
		if value != "regex" && value != "treesitter" {
			return fmt.Errorf("unknown highlighter %q", value)
		}
		cfg.Highlighter = value
	case "theme":
		cfg.CurrentTheme = value
	case "line_numbers":
		cfg.LineNumbers = value == "true"
	case "clipboard":
		cfg.SystemClipboard = value == "system"
	case "style":
		cfg.Style = value
	case "tab_size":
		err = setPositiveInt(&cfg.TabSize, value)
	case "gutter_width":
		err = setPositiveInt(&cfg.GutterWidth, value)
	case "history_limit":
		err = setPositiveInt(&cfg.HistoryLimit, value)
	default:
		if strings.HasPrefix(key, "color.") {
			var c RGBA
			c, err = parseHexColor(value)
			if err == nil {
				cfg.CurrentThemeColors().SyntaxColors[strings.TrimPrefix(key, "color.")] = c
			}
		}
	}
	return err
}

// ReadConfig reads "key value" lines from cfgPath on top of the defaults.
// A missing file yields the defaults; bad lines are logged and skipped.
func ReadConfig(cfgPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	bs, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	for i, line := range strings.Split(string(bs), "\n") {
		line = strings.Trim(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		splitted := strings.SplitN(line, " ", 2)
		if len(splitted) != 2 {
			log.Printf("config: %s:%d: expected key and value", cfgPath, i+1)
			continue
		}
		key := strings.Trim(splitted[0], " \t")
		value := strings.Trim(splitted[1], " \t")
		if err := addToConfig(cfg, key, value); err != nil {
			log.Printf("config: %s:%d: %s: %v", cfgPath, i+1, key, err)
		}
	}

	return cfg, nil
}
