package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/lk16/reversi/internal/othello"
)

var (
	cfgFile = "reversi/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor      int `json:"board"`
	LineColor       int `json:"line"`
	BlackColor      int `json:"black"`
	WhiteColor      int `json:"white"`
	HintColor       int `json:"hint"`
	CursorColorBG   int `json:"cursor_bg"`
	LastPlayedColor int `json:"last_played"`
}

type ConfigSymbols struct {
	BlackDisc rune `json:"black"`
	WhiteDisc rune `json:"white"`
	Empty     rune `json:"empty"`
	Hint      rune `json:"hint"`
}

type Theme struct {
	ShowHints bool          `json:"show_hints"`
	Colors    ConfigColors  `json:"colors"`
	Symbols   ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults for new games.
type GameConfig struct {
	Mode       othello.GameMode   `json:"mode"`
	Difficulty othello.Difficulty `json:"difficulty"`
}

// TUIConfig is the configuration of the terminal client.
type TUIConfig struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

// LoadTUIConfig reads the config file from the XDG config directories.
// Defaults are used when no file exists.
func LoadTUIConfig() (*TUIConfig, error) {
	config := DefaultTUIConfig

	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *TUIConfig) Validate() error {
	symbols := c.Theme.Symbols
	for _, r := range []rune{symbols.BlackDisc, symbols.WhiteDisc, symbols.Empty, symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 0-31 and 127-159 are not allowed"}
		}
	}

	colors := c.Theme.Colors
	for _, color := range []int{
		colors.BoardColor, colors.LineColor, colors.BlackColor, colors.WhiteColor,
		colors.HintColor, colors.CursorColorBG, colors.LastPlayedColor,
	} {
		if color < 0 || color > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is not in the 256 color palette", color)}
		}
	}

	return nil
}

// Save writes the config to the XDG config home.
func (c *TUIConfig) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to find config file location: %w", err)
	}

	return saveCfgFile(absPath, c)
}

func saveCfgFile(filePath string, a any) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err = os.WriteFile(filePath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func readCfgFile(filePath string, a any) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err = json.Unmarshal(content, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err.Error())}
	}

	return nil
}
