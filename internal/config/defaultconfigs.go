package config

import "github.com/lk16/reversi/internal/othello"

var DefaultTUIConfig = TUIConfig{
	Theme: Theme{
		ShowHints: true,
		Colors: ConfigColors{
			BoardColor:      28,
			LineColor:       22,
			BlackColor:      232,
			WhiteColor:      255,
			HintColor:       118,
			CursorColorBG:   4,
			LastPlayedColor: 196,
		},
		Symbols: ConfigSymbols{
			BlackDisc: '●',
			WhiteDisc: '●',
			Empty:     '·',
			Hint:      '•',
		},
	},
	Game: GameConfig{
		Mode:       othello.PlayerVsComputer,
		Difficulty: othello.Easy,
	},
}
