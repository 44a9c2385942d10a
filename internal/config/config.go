// internal/config/config.go
package config

import "image/color"

const (
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	PlayerSize  = 24.0
	PlayerSpeed = 180.0 // пикселей в секунду

	TextCharWidth  = 7 // ширина символа basicfont.Face7x13
	TextLineHeight = 16
)

// Имена состояний, под которыми демо регистрирует их в контейнере.
const (
	StateMenu  = "menu"
	StatePlay  = "play"
	StatePause = "pause"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	// Цвет индикатора для каждого состояния
	StateColors = map[string]color.RGBA{
		StateMenu:  {194, 178, 128, 255},
		StatePlay:  {70, 130, 180, 220},
		StatePause: {220, 60, 60, 220},
	}
)
